package interviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobsearch-backend/internal/genai"
	"jobsearch-backend/internal/jobs"
	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/profile"
	"jobsearch-backend/internal/shared/metrics"
	"jobsearch-backend/internal/shared/telemetry"
)

// turnResult is the JSON shape the model returns for each interviewer turn.
type turnResult struct {
	Question     string `json:"question"`
	QuestionType string `json:"questionType"`
	Tip          string `json:"tip"`
	Feedback     string `json:"feedback"`
}

// Service drives mock interview sessions.
type Service struct {
	Repo    SessionsRepo
	Jobs    *jobs.Service
	Profile *profile.Service
	LLM     llm.Client
}

// NewService constructs a Service.
func NewService(repo SessionsRepo, jobsSvc *jobs.Service, profileSvc *profile.Service, client llm.Client) *Service {
	return &Service{Repo: repo, Jobs: jobsSvc, Profile: profileSvc, LLM: client}
}

// Start creates a session for a job and issues the opening question.
func (s *Service) Start(ctx context.Context, jobID string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	job, err := s.Jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Session{}, ErrJobNotFound
		}
		return Session{}, err
	}

	system := s.systemPrompt(ctx, job)
	raw, err := s.LLM.Chat(ctx, system, []llm.Message{
		{Role: llm.RoleUser, Content: "Begin the interview with your opening question."},
	})
	if err != nil {
		return Session{}, err
	}
	var turn turnResult
	if err := genai.Decode(raw, &turn); err != nil {
		return Session{}, err
	}

	session := Session{
		ID:    uuid.NewString(),
		JobID: job.ID,
		Messages: []Message{{
			Role:         RoleInterviewer,
			Content:      turn.Question,
			QuestionType: turn.QuestionType,
			Tip:          turn.Tip,
		}},
		QuestionCount: 1,
		CreatedAt:     time.Now().UTC(),
	}
	metrics.IncInterviewTurn()
	return s.Repo.Create(ctx, session)
}

// Respond appends a candidate answer and the interviewer's follow-up turn.
// Blank answers are rejected before any model call; sessions that have been
// ended reject further answers.
func (s *Service) Respond(ctx context.Context, id, answer string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	if strings.TrimSpace(answer) == "" {
		return Session{}, ErrEmptyAnswer
	}

	session, err := s.get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if session.Completed() {
		return Session{}, ErrSessionComplete
	}

	job, err := s.Jobs.Get(ctx, session.JobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Session{}, ErrJobNotFound
		}
		return Session{}, err
	}

	system := s.systemPrompt(ctx, job)
	raw, err := s.LLM.Chat(ctx, system, modelHistory(session, answer))
	if err != nil {
		return Session{}, err
	}
	var turn turnResult
	if err := genai.Decode(raw, &turn); err != nil {
		return Session{}, err
	}

	session.Messages = append(session.Messages,
		Message{Role: RoleCandidate, Content: answer},
		Message{
			Role:         RoleInterviewer,
			Content:      turn.Question,
			QuestionType: turn.QuestionType,
			Tip:          turn.Tip,
			Feedback:     turn.Feedback,
		},
	)
	session.QuestionCount++
	metrics.IncInterviewTurn()
	return s.Repo.Update(ctx, session)
}

// End requests the holistic assessment and moves the session to its
// terminal state. A session may only be ended once.
func (s *Service) End(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	session, err := s.get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if session.Completed() {
		return Session{}, ErrSessionComplete
	}

	raw, err := s.LLM.Chat(ctx, llm.InterviewAssessmentPrompt, []llm.Message{
		{Role: llm.RoleUser, Content: transcript(session)},
	})
	if err != nil {
		return Session{}, err
	}
	assessment := Assessment{}
	if err := genai.Decode(raw, &assessment); err != nil {
		return Session{}, err
	}
	if assessment.OverallScore < 1 || assessment.OverallScore > 10 {
		// The model occasionally strays outside the instructed range.
		telemetry.Error("interviews.score_out_of_range", map[string]any{
			"session_id": session.ID,
			"score":      assessment.OverallScore,
		})
		assessment.OverallScore = clampScore(assessment.OverallScore)
	}

	now := time.Now().UTC()
	session.Feedback = &assessment
	session.CompletedAt = &now
	return s.Repo.Update(ctx, session)
}

// Get returns a session by ID.
func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	return s.get(ctx, id)
}

// List returns sessions, optionally filtered by job.
func (s *Service) List(ctx context.Context, jobID string) ([]Session, error) {
	return s.Repo.List(ctx, jobID)
}

func (s *Service) get(ctx context.Context, id string) (Session, error) {
	if strings.TrimSpace(id) == "" {
		return Session{}, fmt.Errorf("%w: session id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// systemPrompt fills the interviewer instructions with job and profile
// context. A missing profile is not an error here; the interview degrades
// to job-posting context only.
func (s *Service) systemPrompt(ctx context.Context, job jobs.Job) string {
	profileText := "(no profile saved)"
	if prof, err := s.Profile.Get(ctx); err == nil {
		profileText = prof.PromptText()
	}

	description := job.Description
	if strings.TrimSpace(job.Requirements) != "" {
		description += "\n\nRequirements:\n" + job.Requirements
	}

	replacer := strings.NewReplacer(
		"{{JOB_TITLE}}", job.Title,
		"{{COMPANY}}", job.Company,
		"{{JOB_DESCRIPTION}}", description,
		"{{PROFILE}}", profileText,
	)
	return replacer.Replace(llm.InterviewSystemPrompt)
}

// modelHistory rebuilds the conversation for the model. Interviewer turns
// keep their question-type tag so structure survives across turns.
func modelHistory(session Session, answer string) []llm.Message {
	out := make([]llm.Message, 0, len(session.Messages)+1)
	for _, m := range session.Messages {
		switch m.Role {
		case RoleInterviewer:
			content := m.Content
			if m.QuestionType != "" {
				content = "[" + m.QuestionType + "] " + content
			}
			out = append(out, llm.Message{Role: llm.RoleAssistant, Content: content})
		case RoleCandidate:
			out = append(out, llm.Message{Role: llm.RoleUser, Content: m.Content})
		}
	}
	return append(out, llm.Message{Role: llm.RoleUser, Content: answer})
}

// transcript flattens the session for the assessment call, folding per-turn
// feedback into the text so the final evaluation considers it.
func transcript(session Session) string {
	var b strings.Builder
	b.WriteString("Interview transcript:\n\n")
	for _, m := range session.Messages {
		switch m.Role {
		case RoleInterviewer:
			if m.Feedback != "" {
				fmt.Fprintf(&b, "(feedback on previous answer: %s)\n", m.Feedback)
			}
			label := "Interviewer"
			if m.QuestionType != "" {
				label += " (" + m.QuestionType + ")"
			}
			fmt.Fprintf(&b, "%s: %s\n\n", label, m.Content)
		case RoleCandidate:
			fmt.Fprintf(&b, "Candidate: %s\n\n", m.Content)
		}
	}
	return b.String()
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
