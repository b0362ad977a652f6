package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for jobs.
type Service struct {
	Repo JobsRepo
}

// NewService constructs a Service.
func NewService(repo JobsRepo) *Service {
	return &Service{Repo: repo}
}

// Create validates and stores a new job.
func (s *Service) Create(ctx context.Context, job Job) (Job, error) {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	if job.Title == "" {
		return Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if job.Company == "" {
		return Job{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if job.Status == "" {
		job.Status = StatusSaved
	}
	if !validStatus(job.Status) {
		return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, job.Status)
	}

	now := time.Now().UTC()
	job.ID = uuid.NewString()
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, id string) (Job, error) {
	if strings.TrimSpace(id) == "" {
		return Job{}, fmt.Errorf("%w: job id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns all jobs, newest first.
func (s *Service) List(ctx context.Context) ([]Job, error) {
	return s.Repo.List(ctx)
}

// Update validates and replaces an existing job. Creation time is preserved.
func (s *Service) Update(ctx context.Context, id string, job Job) (Job, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return Job{}, err
	}

	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	if job.Title == "" {
		return Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if job.Company == "" {
		return Job{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if job.Status == "" {
		job.Status = existing.Status
	}
	if !validStatus(job.Status) {
		return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, job.Status)
	}

	job.ID = existing.ID
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Delete removes a job by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: job id required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}
