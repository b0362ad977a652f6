// Package genai decodes structured JSON out of free-form model output.
package genai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ExtractionError reports that model output could not be decoded into the
// expected shape. Raw holds the complete, unmodified model text so callers
// can surface or log it.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract structured output: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// Decode parses the model's response text into v. If the text contains a
// fenced code block, only the first block's contents are parsed; otherwise
// the whole text is parsed as JSON. Exactly one parse attempt is made on
// the chosen candidate. On failure the returned *ExtractionError carries
// the raw text verbatim.
func Decode(raw string, v any) error {
	candidate := raw
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return &ExtractionError{Raw: raw, Err: fmt.Errorf("empty response")}
	}
	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return &ExtractionError{Raw: raw, Err: err}
	}
	return nil
}
