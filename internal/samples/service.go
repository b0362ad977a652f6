package samples

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobsearch-backend/internal/extract"
	"jobsearch-backend/internal/shared/storage/object"
)

// Service contains business logic for writing samples.
type Service struct {
	Repo  SamplesRepo
	Store object.ObjectStore
}

// NewService constructs a Service.
func NewService(repo SamplesRepo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// CreateText stores a sample supplied directly as text.
func (s *Service) CreateText(ctx context.Context, title, sampleType, content string) (Sample, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return Sample{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if content == "" {
		return Sample{}, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	sample := Sample{
		ID:        uuid.NewString(),
		Title:     title,
		Type:      normalizeType(sampleType),
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, sample); err != nil {
		return Sample{}, err
	}
	return sample, nil
}

// CreateFromFile stores an uploaded PDF or DOCX, extracts its text, and
// records the sample with the extracted content.
func (s *Service) CreateFromFile(ctx context.Context, title, sampleType, fileName string, r io.Reader) (Sample, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = fileName
	}
	if strings.TrimSpace(fileName) == "" {
		return Sample{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, "samples", fileName, r)
	if err != nil {
		return Sample{}, err
	}

	text, err := extract.ExtractText(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(text) == "" {
		return Sample{}, fmt.Errorf("%w: no text could be extracted", ErrInvalidInput)
	}

	sample := Sample{
		ID:        uuid.NewString(),
		Title:     title,
		Type:      normalizeType(sampleType),
		Content:   text,
		FileKey:   storageKey,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, sample); err != nil {
		return Sample{}, err
	}
	return sample, nil
}

// List returns all samples.
func (s *Service) List(ctx context.Context) ([]Sample, error) {
	return s.Repo.List(ctx)
}

// Delete removes a sample by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: sample id required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

// PromptText joins sample contents into one style-reference block for
// generation prompts, capped so a large library cannot blow up the prompt.
func PromptText(items []Sample, maxSamples, maxRunes int) string {
	if maxSamples <= 0 {
		maxSamples = 3
	}
	if maxRunes <= 0 {
		maxRunes = 4000
	}
	var b strings.Builder
	for i, sample := range items {
		if i >= maxSamples {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n\n---\n\n")
		}
		b.WriteString(sample.Title + ":\n")
		b.WriteString(sample.Content)
	}
	text := b.String()
	if runes := []rune(text); len(runes) > maxRunes {
		text = string(runes[:maxRunes])
	}
	return text
}

func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return "general"
	}
	return t
}
