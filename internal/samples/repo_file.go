package samples

import (
	"context"
	"sort"

	"jobsearch-backend/internal/shared/storage/file"
)

// FileRepo persists samples in a flat JSON collection on disk.
type FileRepo struct {
	col *file.Collection[Sample]
}

// NewFileRepo constructs a FileRepo backed by the given file path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{col: file.NewCollection[Sample](path)}
}

// Create appends a new sample to the collection.
func (r *FileRepo) Create(ctx context.Context, sample Sample) error {
	_, err := r.col.Update(ctx, func(items []Sample) ([]Sample, error) {
		return append(items, sample), nil
	})
	return err
}

// List returns all samples, newest first.
func (r *FileRepo) List(ctx context.Context) ([]Sample, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Delete removes a sample by ID.
func (r *FileRepo) Delete(ctx context.Context, id string) error {
	_, err := r.col.Update(ctx, func(items []Sample) ([]Sample, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	return err
}

var _ SamplesRepo = (*FileRepo)(nil)
