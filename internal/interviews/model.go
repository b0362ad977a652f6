package interviews

import (
	"encoding/json"
	"time"
)

// Message roles within a session transcript.
const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
)

// Message is one turn of a mock interview. Interviewer turns carry the
// question metadata; candidate turns are plain answers.
type Message struct {
	Role         string `json:"role"`
	Content      string `json:"content"`
	QuestionType string `json:"questionType,omitempty"`
	Tip          string `json:"tip,omitempty"`
	Feedback     string `json:"feedback,omitempty"`
}

// Assessment is the holistic end-of-session evaluation.
type Assessment struct {
	OverallScore int      `json:"overallScore"`
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Tips         []string `json:"tips"`
}

// UnmarshalJSON accepts the deprecated "score" field as an alias for
// overallScore. overallScore wins when both are present.
func (a *Assessment) UnmarshalJSON(data []byte) error {
	type plain Assessment
	aux := struct {
		*plain
		Score *int `json:"score"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if a.OverallScore == 0 && aux.Score != nil {
		a.OverallScore = *aux.Score
	}
	return nil
}

// Session is a persisted mock interview. Messages strictly alternate
// starting with an interviewer turn; QuestionCount equals the number of
// interviewer turns issued so far. CompletedAt is nil until the session is
// explicitly ended, after which the session is terminal.
type Session struct {
	ID            string      `json:"id"`
	JobID         string      `json:"jobId"`
	Messages      []Message   `json:"messages"`
	QuestionCount int         `json:"questionCount"`
	Feedback      *Assessment `json:"feedback,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	CompletedAt   *time.Time  `json:"completedAt,omitempty"`
}

// Completed reports whether the session has been ended.
func (s Session) Completed() bool {
	return s.CompletedAt != nil
}
