package interviews

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of SessionsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a new session.
func (r *MemoryRepo) Create(ctx context.Context, session Session) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, session)
	return session, nil
}

// GetByID returns a session by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.data {
		if r.data[i].ID == id {
			return r.data[i], nil
		}
	}
	return Session{}, ErrNotFound
}

// Update replaces a stored session.
func (r *MemoryRepo) Update(ctx context.Context, session Session) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.data {
		if r.data[i].ID == session.ID {
			r.data[i] = session
			return session, nil
		}
	}
	return Session{}, ErrNotFound
}

// List returns sessions, newest first, optionally filtered by job.
func (r *MemoryRepo) List(ctx context.Context, jobID string) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Session, 0, len(r.data))
	for _, item := range r.data {
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

var _ SessionsRepo = (*MemoryRepo)(nil)
