package profile

import (
	"context"

	"jobsearch-backend/internal/shared/storage/file"
)

// FileRepo persists the profile as a single-element JSON collection on disk.
type FileRepo struct {
	col *file.Collection[Profile]
}

// NewFileRepo constructs a FileRepo backed by the given file path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{col: file.NewCollection[Profile](path)}
}

// Get returns the saved profile.
func (r *FileRepo) Get(ctx context.Context) (Profile, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return Profile{}, err
	}
	if len(items) == 0 {
		return Profile{}, ErrNotFound
	}
	return items[0], nil
}

// Put replaces the saved profile.
func (r *FileRepo) Put(ctx context.Context, p Profile) error {
	_, err := r.col.Update(ctx, func([]Profile) ([]Profile, error) {
		return []Profile{p}, nil
	})
	return err
}

var _ ProfileRepo = (*FileRepo)(nil)
