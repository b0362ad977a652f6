package samples

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of SamplesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Sample
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Sample)}
}

// Create stores a new sample.
func (r *MemoryRepo) Create(ctx context.Context, sample Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[sample.ID] = sample
	return nil
}

// List returns all samples, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Sample, 0, len(r.data))
	for _, sample := range r.data {
		out = append(out, sample)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a sample by ID.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

var _ SamplesRepo = (*MemoryRepo)(nil)
