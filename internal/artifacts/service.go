package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobsearch-backend/internal/artifacts/docx"
	"jobsearch-backend/internal/genai"
	"jobsearch-backend/internal/jobs"
	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/profile"
	"jobsearch-backend/internal/samples"
	"jobsearch-backend/internal/shared/metrics"
	"jobsearch-backend/internal/shared/storage/object"
	"jobsearch-backend/internal/shared/telemetry"
	"jobsearch-backend/internal/templates"
)

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Service runs the generation pipeline and serves stored artifacts.
type Service struct {
	Repo      ArtifactsRepo
	Jobs      *jobs.Service
	Profile   *profile.Service
	Samples   *samples.Service
	Templates *templates.Service
	LLM       llm.Client
	Store     object.ObjectStore
}

// Generate produces the artifact of the given kind for a job: prompt the
// model, decode its JSON, map onto the slot layout, render the DOCX, and
// upsert the single artifact row for (jobId, kind). Rendering failures are
// recorded on the artifact, never fatal; the artifact write itself is
// all-or-nothing.
func (s *Service) Generate(ctx context.Context, jobID, kind string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if !ValidKind(kind) {
		return Artifact{}, fmt.Errorf("%w: unknown artifact kind %q", ErrInvalidInput, kind)
	}

	metrics.IncGenerationStarted()
	started := metrics.NowMillis()

	artifact, err := s.generate(ctx, jobID, kind)
	if err != nil {
		metrics.IncGenerationFailed()
		return Artifact{}, err
	}
	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(metrics.NowMillis() - started)
	return artifact, nil
}

func (s *Service) generate(ctx context.Context, jobID, kind string) (Artifact, error) {
	job, err := s.Jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Artifact{}, ErrJobNotFound
		}
		return Artifact{}, err
	}

	prof, err := s.Profile.Get(ctx)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return Artifact{}, ErrProfileNotSet
		}
		return Artifact{}, err
	}

	sampleList, err := s.Samples.List(ctx)
	if err != nil {
		telemetry.Error("artifacts.samples_unavailable", map[string]any{"error": err.Error()})
		sampleList = nil
	}

	prompt := buildPrompt(kind, job, prof, sampleList)
	raw, err := s.LLM.Complete(ctx, prompt, "Produce the JSON object now.")
	if err != nil {
		return Artifact{}, err
	}

	now := time.Now().UTC()
	header := docx.Header{
		Name:     prof.Name,
		Title:    prof.Title,
		Email:    prof.Email,
		Phone:    prof.Phone,
		Location: prof.Location,
		Links:    prof.Links,
		Company:  job.Company,
		JobTitle: job.Title,
		Date:     now.Format("January 2, 2006"),
	}

	var artifact Artifact
	var slots map[string]string

	switch kind {
	case KindResume:
		var result ResumeResult
		if err := genai.Decode(raw, &result); err != nil {
			return Artifact{}, err
		}
		if strings.TrimSpace(result.Summary) == "" && len(result.Experiences) == 0 {
			return Artifact{}, fmt.Errorf("%w: model output has no resume content", ErrInvalidInput)
		}
		content, err := json.Marshal(result)
		if err != nil {
			return Artifact{}, err
		}
		body := strings.TrimSpace(result.Body)
		if body == "" {
			body = result.Summary
		}
		slots = docx.MapResumeSlots(header, result.Summary, body, result.SkillCategories, result.Experiences)
		artifact = Artifact{
			Summary: result.Summary,
			Body:    body,
			Content: content,
		}
	case KindCoverLetter:
		var result CoverLetterResult
		if err := genai.Decode(raw, &result); err != nil {
			return Artifact{}, err
		}
		if strings.TrimSpace(result.Body) == "" {
			return Artifact{}, fmt.Errorf("%w: model output has no letter body", ErrInvalidInput)
		}
		content, err := json.Marshal(result)
		if err != nil {
			return Artifact{}, err
		}
		slots = docx.MapCoverLetterSlots(header, result.Body, result.Tone, result.KeyPoints)
		artifact = Artifact{
			Summary: firstLine(result.Body),
			Body:    result.Body,
			Content: content,
		}
	}

	artifact.ID = uuid.NewString()
	artifact.JobID = job.ID
	artifact.Kind = kind
	artifact.JobTitle = job.Title
	artifact.Company = job.Company
	artifact.CreatedAt = now
	artifact.UpdatedAt = now

	artifact.DocumentKey, artifact.RenderError = s.renderDocument(ctx, job.ID, kind, slots)

	return s.Repo.Upsert(ctx, artifact)
}

// renderDocument renders the DOCX and stores it under a deterministic key.
// Any failure is reported back as a non-fatal render error.
func (s *Service) renderDocument(ctx context.Context, jobID, kind string, slots map[string]string) (documentKey, renderError string) {
	templateBytes, err := s.Templates.OpenActive(ctx, kind)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			return "", fmt.Sprintf("no active %s template uploaded", kind)
		}
		return "", fmt.Sprintf("load template: %v", err)
	}

	rendered, err := docx.Render(templateBytes, slots)
	if err != nil {
		telemetry.Error("artifacts.render_failed", map[string]any{
			"job_id": jobID,
			"kind":   kind,
			"error":  err.Error(),
		})
		return "", err.Error()
	}

	key := fmt.Sprintf("artifacts/%s/%s.docx", jobID, kind)
	if _, err := s.Store.SaveWithKey(ctx, key, docxMimeType, bytes.NewReader(rendered)); err != nil {
		telemetry.Error("artifacts.document_store_failed", map[string]any{
			"job_id": jobID,
			"kind":   kind,
			"error":  err.Error(),
		})
		return "", fmt.Sprintf("store document: %v", err)
	}
	return key, ""
}

// Get returns an artifact by ID.
func (s *Service) Get(ctx context.Context, id string) (Artifact, error) {
	if strings.TrimSpace(id) == "" {
		return Artifact{}, fmt.Errorf("%w: artifact id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns artifacts, optionally filtered by job.
func (s *Service) List(ctx context.Context, jobID string) ([]Artifact, error) {
	return s.Repo.List(ctx, jobID)
}

// OpenDocument returns the artifact and a reader over its rendered DOCX.
func (s *Service) OpenDocument(ctx context.Context, id string) (Artifact, io.ReadCloser, error) {
	artifact, err := s.Get(ctx, id)
	if err != nil {
		return Artifact{}, nil, err
	}
	if artifact.DocumentKey == "" {
		return Artifact{}, nil, ErrNoDocument
	}
	body, err := s.Store.Open(ctx, artifact.DocumentKey)
	if err != nil {
		return Artifact{}, nil, err
	}
	return artifact, body, nil
}

func buildPrompt(kind string, job jobs.Job, prof profile.Profile, sampleList []samples.Sample) string {
	template := llm.ResumeGenPrompt
	if kind == KindCoverLetter {
		template = llm.CoverLetterGenPrompt
	}

	description := job.Description
	if strings.TrimSpace(job.Requirements) != "" {
		description += "\n\nRequirements:\n" + job.Requirements
	}

	replacer := strings.NewReplacer(
		"{{PROFILE}}", prof.PromptText(),
		"{{JOB_TITLE}}", job.Title,
		"{{COMPANY}}", job.Company,
		"{{JOB_DESCRIPTION}}", description,
		"{{WRITING_SAMPLES}}", samples.PromptText(sampleList, 3, 4000),
	)
	return replacer.Replace(template)
}

func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.IndexByte(text, '\n'); idx != -1 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
