package jobs

import (
	"context"
	"sort"

	"jobsearch-backend/internal/shared/storage/file"
)

// FileRepo persists jobs in a flat JSON collection on disk.
type FileRepo struct {
	col *file.Collection[Job]
}

// NewFileRepo constructs a FileRepo backed by the given file path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{col: file.NewCollection[Job](path)}
}

// Create appends a new job to the collection.
func (r *FileRepo) Create(ctx context.Context, job Job) error {
	_, err := r.col.Update(ctx, func(items []Job) ([]Job, error) {
		return append(items, job), nil
	})
	return err
}

// GetByID returns a job by ID.
func (r *FileRepo) GetByID(ctx context.Context, id string) (Job, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return Job{}, err
	}
	for i := range items {
		if items[i].ID == id {
			return items[i], nil
		}
	}
	return Job{}, ErrNotFound
}

// List returns all jobs, newest first.
func (r *FileRepo) List(ctx context.Context) ([]Job, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Update replaces the stored job with the same ID.
func (r *FileRepo) Update(ctx context.Context, job Job) error {
	_, err := r.col.Update(ctx, func(items []Job) ([]Job, error) {
		for i := range items {
			if items[i].ID == job.ID {
				items[i] = job
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
	return err
}

// Delete removes a job by ID.
func (r *FileRepo) Delete(ctx context.Context, id string) error {
	_, err := r.col.Update(ctx, func(items []Job) ([]Job, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	return err
}

var _ JobsRepo = (*FileRepo)(nil)
