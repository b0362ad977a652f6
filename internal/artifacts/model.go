package artifacts

import (
	"encoding/json"
	"time"

	"jobsearch-backend/internal/artifacts/docx"
)

// Artifact kinds. Each (jobId, kind) pair holds at most one artifact;
// regeneration replaces content in place.
const (
	KindResume      = "resume"
	KindCoverLetter = "cover_letter"
)

// Artifact is a generated document tied to a job.
type Artifact struct {
	ID          string          `json:"id"`
	JobID       string          `json:"jobId"`
	Kind        string          `json:"kind"`
	JobTitle    string          `json:"jobTitle"`
	Company     string          `json:"company"`
	Summary     string          `json:"summary"`
	Body        string          `json:"body"`
	Content     json.RawMessage `json:"content"`
	DocumentKey string          `json:"documentKey,omitempty"`
	RenderError string          `json:"renderError,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ValidKind reports whether the kind names a supported artifact kind.
func ValidKind(kind string) bool {
	return kind == KindResume || kind == KindCoverLetter
}

// ResumeResult is the structured shape the model must produce for resumes.
type ResumeResult struct {
	Summary         string               `json:"summary"`
	Body            string               `json:"body"`
	SkillCategories []docx.SkillCategory `json:"skillCategories"`
	Experiences     []docx.Experience    `json:"experiences"`
	ChangesApplied  []string             `json:"changesApplied,omitempty"`
	Strengths       []string             `json:"strengths,omitempty"`
	Keywords        []string             `json:"keywords,omitempty"`
}

// CoverLetterResult is the structured shape the model must produce for
// cover letters.
type CoverLetterResult struct {
	Body      string   `json:"body"`
	Tone      string   `json:"tone"`
	KeyPoints []string `json:"keyPoints"`
}
