package profile

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of ProfileRepo.
type MemoryRepo struct {
	mu      sync.RWMutex
	current *Profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Get returns the saved profile.
func (r *MemoryRepo) Get(ctx context.Context) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return Profile{}, ErrNotFound
	}
	return *r.current, nil
}

// Put replaces the saved profile.
func (r *MemoryRepo) Put(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = &p
	return nil
}

var _ ProfileRepo = (*MemoryRepo)(nil)
