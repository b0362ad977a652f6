package interviews_test

import (
	"context"
	"errors"
	"testing"

	"jobsearch-backend/internal/interviews"
	"jobsearch-backend/internal/jobs"
	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/profile"
)

// scriptedLLM returns queued responses in order, one per call.
type scriptedLLM struct {
	responses []string
	err       error
	calls     int
}

func (s *scriptedLLM) Complete(ctx context.Context, system, payload string) (string, error) {
	return s.next()
}

func (s *scriptedLLM) Chat(ctx context.Context, system string, messages []llm.Message) (string, error) {
	return s.next()
}

func (s *scriptedLLM) next() (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", errors.New("scripted llm exhausted")
	}
	response := s.responses[0]
	s.responses = s.responses[1:]
	return response, nil
}

const (
	openingTurn = `{"question":"Tell me about yourself.","questionType":"background","tip":"Keep it under two minutes.","feedback":""}`
	followUp    = `{"question":"Describe a conflict you resolved.","questionType":"behavioral","tip":"Use a concrete example.","feedback":"Good structure, add more detail on outcomes."}`
	assessment  = `{"overallScore":8,"summary":"Strong showing.","strengths":["clear answers"],"improvements":["quantify impact"],"tips":["prepare metrics"]}`
)

func newInterviewService(t *testing.T, client llm.Client) (*interviews.Service, jobs.Job) {
	t.Helper()
	ctx := context.Background()
	jobsSvc := jobs.NewService(jobs.NewMemoryRepo())
	profileSvc := profile.NewService(profile.NewMemoryRepo())

	job, err := jobsSvc.Create(ctx, jobs.Job{Title: "Platform Engineer", Company: "Acme", Description: "Build things."})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	if _, err := profileSvc.Put(ctx, profile.Profile{Name: "Jordan Lee"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return interviews.NewService(interviews.NewMemoryRepo(), jobsSvc, profileSvc, client), job
}

func TestStartIssuesOpeningQuestion(t *testing.T) {
	ctx := context.Background()
	svc, job := newInterviewService(t, &scriptedLLM{responses: []string{openingTurn}})

	session, err := svc.Start(ctx, job.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.QuestionCount != 1 {
		t.Fatalf("expected questionCount 1, got %d", session.QuestionCount)
	}
	if len(session.Messages) != 1 {
		t.Fatalf("expected one message, got %d", len(session.Messages))
	}
	opening := session.Messages[0]
	if opening.Role != interviews.RoleInterviewer {
		t.Fatalf("expected interviewer opening, got role %q", opening.Role)
	}
	if opening.QuestionType != "background" || opening.Tip == "" {
		t.Fatalf("question metadata not captured: %+v", opening)
	}
	if session.CompletedAt != nil {
		t.Fatal("new session must not be completed")
	}
}

func TestStartMissingJob(t *testing.T) {
	svc, _ := newInterviewService(t, &scriptedLLM{responses: []string{openingTurn}})

	_, err := svc.Start(context.Background(), "absent")
	if !errors.Is(err, interviews.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestRespondEmptyAnswerSkipsModelCall(t *testing.T) {
	ctx := context.Background()
	client := &scriptedLLM{responses: []string{openingTurn}}
	svc, job := newInterviewService(t, client)

	session, err := svc.Start(ctx, job.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	callsAfterStart := client.calls

	if _, err := svc.Respond(ctx, session.ID, "   "); !errors.Is(err, interviews.ErrEmptyAnswer) {
		t.Fatalf("expected ErrEmptyAnswer, got %v", err)
	}
	if client.calls != callsAfterStart {
		t.Fatal("blank answer must be rejected before the model call")
	}
}

func TestQuestionCountTracksResponds(t *testing.T) {
	ctx := context.Background()
	svc, job := newInterviewService(t, &scriptedLLM{responses: []string{openingTurn, followUp, followUp, followUp}})

	session, err := svc.Start(ctx, job.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 3; i++ {
		session, err = svc.Respond(ctx, session.ID, "An answer with substance.")
		if err != nil {
			t.Fatalf("respond %d: %v", i+1, err)
		}
	}
	if session.QuestionCount != 4 {
		t.Fatalf("expected questionCount 4 after 3 answers, got %d", session.QuestionCount)
	}
}

func TestRespondAfterEndFailsAndLeavesMessages(t *testing.T) {
	ctx := context.Background()
	svc, job := newInterviewService(t, &scriptedLLM{responses: []string{openingTurn, followUp, assessment}})

	session, err := svc.Start(ctx, job.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	session, err = svc.Respond(ctx, session.ID, "I led a team of 5 engineers.")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	ended, err := svc.End(ctx, session.ID)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if ended.CompletedAt == nil || ended.Feedback == nil {
		t.Fatalf("expected completed session with feedback: %+v", ended)
	}
	messagesAtEnd := len(ended.Messages)

	if _, err := svc.Respond(ctx, session.ID, "One more answer."); !errors.Is(err, interviews.ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete, got %v", err)
	}
	stored, err := svc.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(stored.Messages) != messagesAtEnd {
		t.Fatalf("message list changed after rejected respond: %d != %d", len(stored.Messages), messagesAtEnd)
	}

	// Ending twice is rejected, not reprocessed.
	if _, err := svc.End(ctx, session.ID); !errors.Is(err, interviews.ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete on second end, got %v", err)
	}
}

func TestFullSessionFlow(t *testing.T) {
	ctx := context.Background()
	svc, job := newInterviewService(t, &scriptedLLM{responses: []string{openingTurn, followUp, followUp, assessment}})

	session, err := svc.Start(ctx, job.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	session, err = svc.Respond(ctx, session.ID, "I led a team of 5 engineers through a migration.")
	if err != nil {
		t.Fatalf("first respond: %v", err)
	}
	session, err = svc.Respond(ctx, session.ID, "I resolved the conflict by getting both sides in a room.")
	if err != nil {
		t.Fatalf("second respond: %v", err)
	}
	session, err = svc.End(ctx, session.ID)
	if err != nil {
		t.Fatalf("end: %v", err)
	}

	if session.QuestionCount != 3 {
		t.Fatalf("expected questionCount 3, got %d", session.QuestionCount)
	}
	if len(session.Messages) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(session.Messages))
	}
	for i, m := range session.Messages {
		want := interviews.RoleInterviewer
		if i%2 == 1 {
			want = interviews.RoleCandidate
		}
		if m.Role != want {
			t.Fatalf("message %d: expected role %q, got %q", i, want, m.Role)
		}
	}
	if session.CompletedAt == nil {
		t.Fatal("expected completedAt set")
	}
	if session.Feedback == nil || session.Feedback.OverallScore < 1 || session.Feedback.OverallScore > 10 {
		t.Fatalf("expected overallScore in [1,10]: %+v", session.Feedback)
	}
}

func TestEndAcceptsDeprecatedScoreAlias(t *testing.T) {
	ctx := context.Background()
	aliased := `{"score":6,"summary":"Decent.","strengths":["calm"],"improvements":["depth"],"tips":["practice"]}`
	svc, job := newInterviewService(t, &scriptedLLM{responses: []string{openingTurn, aliased}})

	session, err := svc.Start(ctx, job.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	session, err = svc.End(ctx, session.ID)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if session.Feedback == nil || session.Feedback.OverallScore != 6 {
		t.Fatalf("expected aliased score 6, got %+v", session.Feedback)
	}
}

func TestRespondUpstreamFailureLeavesSessionUnchanged(t *testing.T) {
	ctx := context.Background()
	client := &scriptedLLM{responses: []string{openingTurn}}
	svc, job := newInterviewService(t, client)

	session, err := svc.Start(ctx, job.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	client.err = llm.ErrUnavailable

	if _, err := svc.Respond(ctx, session.ID, "An answer."); !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	stored, err := svc.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(stored.Messages) != 1 || stored.QuestionCount != 1 {
		t.Fatalf("session mutated by failed turn: %+v", stored)
	}
}
