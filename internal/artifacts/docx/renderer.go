package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Render substitutes slot values into a DOCX template and runs the repair
// pass. Every slot token in the template must resolve; the slot map is
// expected to be total over the layout's slots.
func Render(templateBytes []byte, slots map[string]string) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(templateBytes), int64(len(templateBytes)))
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}

	replacements := make(map[string]string, len(slots))
	for slot, value := range slots {
		replacements[Token(slot)] = value
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	for _, file := range reader.File {
		name := normalizeZipName(file.Name)
		content, err := readZipFile(file)
		if err != nil {
			return nil, err
		}

		if isRenderablePart(name) {
			updated, err := renderPartXML(string(content), replacements)
			if err != nil {
				return nil, fmt.Errorf("render %s: %w", name, err)
			}
			content = []byte(updated)
		}

		if err := writeZipFile(writer, file, content); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

// isRenderablePart reports whether the archive entry carries slot tokens.
// Headers and footers hold contact slots in some templates.
func isRenderablePart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	return strings.HasPrefix(name, "word/header") && strings.HasSuffix(name, ".xml") ||
		strings.HasPrefix(name, "word/footer") && strings.HasSuffix(name, ".xml")
}

func renderPartXML(xmlText string, replacements map[string]string) (string, error) {
	rootStart, rootEnd, err := extractRootTags(xmlText)
	if err != nil {
		return "", err
	}
	root, header, err := parseXMLDocument(xmlText)
	if err != nil {
		return "", err
	}

	replaceTokensInNode(root, replacements)
	Repair(root)

	rendered, err := encodeXMLDocument(header, root, rootStart, rootEnd)
	if err != nil {
		return "", err
	}

	if err := validatePartXML(rendered); err != nil {
		return "", err
	}
	if token := findRemainingToken(rendered); token != "" {
		return "", fmt.Errorf("unresolved template token: %s", token)
	}
	return rendered, nil
}

var tokenPattern = regexp.MustCompile(`{{[^}]+}}`)

func findRemainingToken(xmlText string) string {
	if match := tokenPattern.FindString(xmlText); match != "" {
		return match
	}
	if idx := strings.Index(xmlText, "{{"); idx != -1 {
		end := idx + 40
		if end > len(xmlText) {
			end = len(xmlText)
		}
		return xmlText[idx:end]
	}
	return ""
}

func validatePartXML(xmlText string) error {
	root, _, err := parseXMLDocument(xmlText)
	if err != nil {
		return fmt.Errorf("rendered xml parse failed: %w", err)
	}
	if root == nil {
		return fmt.Errorf("rendered xml has no root element")
	}
	return nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func writeZipFile(writer *zip.Writer, source *zip.File, content []byte) error {
	header := source.FileHeader
	header.Name = normalizeZipName(source.Name)

	dst, err := writer.CreateHeader(&header)
	if err != nil {
		return err
	}
	if _, err := dst.Write(content); err != nil {
		return err
	}
	return nil
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}
