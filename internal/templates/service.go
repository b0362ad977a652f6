package templates

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobsearch-backend/internal/shared/storage/object"
)

// Service contains business logic for the template registry.
type Service struct {
	Repo  TemplatesRepo
	Store object.ObjectStore
}

// NewService constructs a Service.
func NewService(repo TemplatesRepo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// Upload validates a DOCX template and installs it as the active entry for
// the kind, replacing any previous one.
func (s *Service) Upload(ctx context.Context, kind, fileName string, r io.Reader) (Template, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if !ValidKind(kind) {
		return Template{}, fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, KindResume, KindCoverLetter)
	}
	if strings.TrimSpace(fileName) == "" {
		return Template{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Template{}, err
	}
	if !looksLikeDocx(data) {
		return Template{}, fmt.Errorf("%w: file is not a DOCX document", ErrInvalidInput)
	}

	storageKey, size, _, err := s.Store.Save(ctx, "templates", fileName, bytes.NewReader(data))
	if err != nil {
		return Template{}, err
	}

	tmpl := Template{
		ID:         uuid.NewString(),
		Kind:       kind,
		FileKey:    storageKey,
		FileName:   fileName,
		SizeBytes:  size,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Replace(ctx, tmpl); err != nil {
		return Template{}, err
	}
	return tmpl, nil
}

// FindActive returns the active template for a kind.
func (s *Service) FindActive(ctx context.Context, kind string) (Template, error) {
	if !ValidKind(kind) {
		return Template{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
	}
	return s.Repo.FindActive(ctx, kind)
}

// List returns all active templates.
func (s *Service) List(ctx context.Context) ([]Template, error) {
	return s.Repo.List(ctx)
}

// OpenActive opens the active template's bytes for a kind.
func (s *Service) OpenActive(ctx context.Context, kind string) ([]byte, error) {
	tmpl, err := s.FindActive(ctx, kind)
	if err != nil {
		return nil, err
	}
	body, err := s.Store.Open(ctx, tmpl.FileKey)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func looksLikeDocx(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
