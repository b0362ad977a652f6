package artifacts_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"jobsearch-backend/internal/artifacts"
	"jobsearch-backend/internal/genai"
	"jobsearch-backend/internal/jobs"
	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/profile"
	"jobsearch-backend/internal/samples"
	"jobsearch-backend/internal/shared/storage/object"
	"jobsearch-backend/internal/shared/storage/object/local"
	"jobsearch-backend/internal/templates"
)

type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Complete(ctx context.Context, system, payload string) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubLLM) Chat(ctx context.Context, system string, messages []llm.Message) (string, error) {
	s.calls++
	return s.response, s.err
}

type env struct {
	svc   *artifacts.Service
	tmpl  *templates.Service
	store object.ObjectStore
	job   jobs.Job
}

const resumeResponse = "```json\n" + `{
  "summary": "Backend engineer with eight years of Go experience.",
  "body": "JORDAN LEE\nBackend engineer with eight years of Go experience.\n\nEXPERIENCE\nSenior Engineer, Prior Corp...",
  "skillCategories": [
    {"name": "Languages", "skills": ["Go", "SQL", "Python"]},
    {"name": "Infrastructure", "skills": ["Postgres", "AWS"]}
  ],
  "experiences": [
    {"title": "Senior Engineer", "company": "Prior Corp", "location": "Remote",
     "dates": "2020 - 2024", "bullets": ["Led the platform rebuild", "Cut p99 latency in half"]}
  ],
  "changesApplied": ["Reordered skills to lead with Go"],
  "strengths": ["Platform experience matches the posting"],
  "keywords": ["Go", "Postgres"]
}` + "\n```"

func templateDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">` + p + `</w:t></w:r></w:p>`)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func newEnv(t *testing.T, client llm.Client) *env {
	t.Helper()
	ctx := context.Background()
	store := local.New(t.TempDir())

	jobsSvc := jobs.NewService(jobs.NewMemoryRepo())
	profileSvc := profile.NewService(profile.NewMemoryRepo())
	samplesSvc := samples.NewService(samples.NewMemoryRepo(), store)
	templatesSvc := templates.NewService(templates.NewMemoryRepo(), store)

	job, err := jobsSvc.Create(ctx, jobs.Job{Title: "Platform Engineer", Company: "Acme", Description: "Build the platform."})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	if _, err := profileSvc.Put(ctx, profile.Profile{Name: "Jordan Lee", Email: "jordan@example.com", Title: "Engineer"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	svc := &artifacts.Service{
		Repo:      artifacts.NewMemoryRepo(),
		Jobs:      jobsSvc,
		Profile:   profileSvc,
		Samples:   samplesSvc,
		Templates: templatesSvc,
		LLM:       client,
		Store:     store,
	}
	return &env{svc: svc, tmpl: templatesSvc, store: store, job: job}
}

func (e *env) uploadResumeTemplate(t *testing.T) {
	t.Helper()
	tmpl := templateDocx(t, "{{NAME}} — {{TITLE}}", "{{SUMMARY}}", "{{CAT1_NAME}}: {{CAT1_SKILL1}} | {{CAT1_SKILL2}}", "{{EXP1_TITLE}} at {{EXP1_COMPANY}}")
	if _, err := e.tmpl.Upload(context.Background(), templates.KindResume, "resume.docx", bytes.NewReader(tmpl)); err != nil {
		t.Fatalf("upload template: %v", err)
	}
}

func TestGenerateResumeRendersAndPersists(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, &stubLLM{response: resumeResponse})
	e.uploadResumeTemplate(t)

	artifact, err := e.svc.Generate(ctx, e.job.ID, artifacts.KindResume)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if artifact.JobID != e.job.ID || artifact.Kind != artifacts.KindResume {
		t.Fatalf("unexpected artifact identity: %+v", artifact)
	}
	if artifact.Summary == "" {
		t.Fatal("expected summary captured")
	}
	if !strings.HasPrefix(artifact.Body, "JORDAN LEE") || artifact.Body == artifact.Summary {
		t.Fatalf("expected body captured distinct from summary, got %q", artifact.Body)
	}
	if artifact.DocumentKey == "" {
		t.Fatalf("expected rendered document, render error: %s", artifact.RenderError)
	}

	var content artifacts.ResumeResult
	if err := json.Unmarshal(artifact.Content, &content); err != nil {
		t.Fatalf("decode stored content: %v", err)
	}
	if len(content.SkillCategories) != 2 {
		t.Fatalf("unexpected stored content: %+v", content)
	}
	if content.Body != artifact.Body {
		t.Fatalf("stored content body mismatch: %q", content.Body)
	}
	if len(content.ChangesApplied) != 1 || len(content.Strengths) != 1 || len(content.Keywords) != 2 {
		t.Fatalf("tailoring notes not preserved: %+v", content)
	}

	body, err := e.store.Open(ctx, artifact.DocumentKey)
	if err != nil {
		t.Fatalf("open rendered document: %v", err)
	}
	body.Close()
}

func TestGenerateUpsertPreservesIdentity(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, &stubLLM{response: resumeResponse})
	e.uploadResumeTemplate(t)

	first, err := e.svc.Generate(ctx, e.job.ID, artifacts.KindResume)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := e.svc.Generate(ctx, e.job.ID, artifacts.KindResume)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected stable artifact id across regeneration, got %q then %q", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("expected createdAt preserved across regeneration")
	}
	if !second.UpdatedAt.After(first.UpdatedAt) && !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Fatal("expected updatedAt refreshed")
	}

	all, err := e.svc.List(ctx, e.job.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected a single artifact per (job, kind), got %d", len(all))
	}
}

func TestGenerateResumeBodyFallsBackToSummary(t *testing.T) {
	ctx := context.Background()
	response := `{"summary":"Backend engineer.","skillCategories":[],"experiences":[{"title":"Engineer","company":"Prior Corp","bullets":["Shipped things"]}]}`
	e := newEnv(t, &stubLLM{response: response})

	artifact, err := e.svc.Generate(ctx, e.job.ID, artifacts.KindResume)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if artifact.Body != "Backend engineer." {
		t.Fatalf("expected body to fall back to summary, got %q", artifact.Body)
	}
}

func TestGenerateWithoutTemplateIsNonFatal(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, &stubLLM{response: resumeResponse})

	artifact, err := e.svc.Generate(ctx, e.job.ID, artifacts.KindResume)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if artifact.DocumentKey != "" {
		t.Fatal("expected no document key without a template")
	}
	if artifact.RenderError == "" {
		t.Fatal("expected render error recorded")
	}

	// The artifact is still persisted and retrievable.
	got, err := e.svc.Get(ctx, artifact.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Summary != artifact.Summary {
		t.Fatalf("unexpected stored artifact: %+v", got)
	}
}

func TestGenerateUpstreamFailureLeavesNoArtifact(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, &stubLLM{err: llm.ErrUnavailable})

	_, err := e.svc.Generate(ctx, e.job.ID, artifacts.KindResume)
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	all, err := e.svc.List(ctx, e.job.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no artifact persisted, got %d", len(all))
	}
}

func TestGenerateExtractionFailurePreservesRaw(t *testing.T) {
	ctx := context.Background()
	raw := "I'm sorry, I cannot produce JSON right now."
	e := newEnv(t, &stubLLM{response: raw})

	_, err := e.svc.Generate(ctx, e.job.ID, artifacts.KindResume)
	var extErr *genai.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *genai.ExtractionError, got %v", err)
	}
	if extErr.Raw != raw {
		t.Fatalf("raw model text not preserved: %q", extErr.Raw)
	}

	all, err := e.svc.List(ctx, e.job.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no artifact persisted, got %d", len(all))
	}
}

func TestGenerateMissingJob(t *testing.T) {
	e := newEnv(t, &stubLLM{response: resumeResponse})

	_, err := e.svc.Generate(context.Background(), "absent-job", artifacts.KindResume)
	if !errors.Is(err, artifacts.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestGenerateMissingProfile(t *testing.T) {
	ctx := context.Background()
	store := local.New(t.TempDir())
	jobsSvc := jobs.NewService(jobs.NewMemoryRepo())
	job, err := jobsSvc.Create(ctx, jobs.Job{Title: "Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	svc := &artifacts.Service{
		Repo:      artifacts.NewMemoryRepo(),
		Jobs:      jobsSvc,
		Profile:   profile.NewService(profile.NewMemoryRepo()),
		Samples:   samples.NewService(samples.NewMemoryRepo(), store),
		Templates: templates.NewService(templates.NewMemoryRepo(), store),
		LLM:       &stubLLM{response: resumeResponse},
		Store:     store,
	}

	_, err = svc.Generate(ctx, job.ID, artifacts.KindResume)
	if !errors.Is(err, artifacts.ErrProfileNotSet) {
		t.Fatalf("expected ErrProfileNotSet, got %v", err)
	}
}

func TestGenerateCoverLetter(t *testing.T) {
	ctx := context.Background()
	response := `{"body":"First paragraph.\n\nSecond paragraph.","tone":"confident","keyPoints":["Go expertise","Platform work"]}`
	e := newEnv(t, &stubLLM{response: response})

	tmpl := templateDocx(t, "{{NAME}}", "{{DATE}}", "{{BODY}}", "{{POINT1}} — {{POINT2}}")
	if _, err := e.tmpl.Upload(ctx, templates.KindCoverLetter, "letter.docx", bytes.NewReader(tmpl)); err != nil {
		t.Fatalf("upload template: %v", err)
	}

	artifact, err := e.svc.Generate(ctx, e.job.ID, artifacts.KindCoverLetter)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if artifact.Kind != artifacts.KindCoverLetter {
		t.Fatalf("unexpected kind: %q", artifact.Kind)
	}
	if !strings.Contains(artifact.Body, "Second paragraph.") {
		t.Fatalf("unexpected body: %q", artifact.Body)
	}
	if artifact.DocumentKey == "" {
		t.Fatalf("expected rendered document, render error: %s", artifact.RenderError)
	}
}
