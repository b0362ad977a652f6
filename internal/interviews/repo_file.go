package interviews

import (
	"context"
	"sort"

	"jobsearch-backend/internal/shared/storage/file"
)

// FileRepo persists sessions in a flat JSON collection on disk.
type FileRepo struct {
	col *file.Collection[Session]
}

// NewFileRepo constructs a FileRepo backed by the given file path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{col: file.NewCollection[Session](path)}
}

// Create appends a new session.
func (r *FileRepo) Create(ctx context.Context, session Session) (Session, error) {
	_, err := r.col.Update(ctx, func(items []Session) ([]Session, error) {
		return append(items, session), nil
	})
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

// GetByID returns a session by ID.
func (r *FileRepo) GetByID(ctx context.Context, id string) (Session, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return Session{}, err
	}
	for i := range items {
		if items[i].ID == id {
			return items[i], nil
		}
	}
	return Session{}, ErrNotFound
}

// Update replaces a stored session.
func (r *FileRepo) Update(ctx context.Context, session Session) (Session, error) {
	found := false
	_, err := r.col.Update(ctx, func(items []Session) ([]Session, error) {
		for i := range items {
			if items[i].ID == session.ID {
				items[i] = session
				found = true
				return items, nil
			}
		}
		return items, nil
	})
	if err != nil {
		return Session{}, err
	}
	if !found {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// List returns sessions, newest first, optionally filtered by job.
func (r *FileRepo) List(ctx context.Context, jobID string) ([]Session, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Session, 0, len(items))
	for _, item := range items {
		if jobID != "" && item.JobID != jobID {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ SessionsRepo = (*FileRepo)(nil)
