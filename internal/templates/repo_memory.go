package templates

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of TemplatesRepo.
type MemoryRepo struct {
	mu     sync.RWMutex
	byKind map[string]Template
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byKind: make(map[string]Template)}
}

// Replace installs the template as the active entry for its kind.
func (r *MemoryRepo) Replace(ctx context.Context, tmpl Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKind[tmpl.Kind] = tmpl
	return nil
}

// FindActive returns the active template for a kind.
func (r *MemoryRepo) FindActive(ctx context.Context, kind string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tmpl, ok := r.byKind[kind]
	if !ok {
		return Template{}, ErrNotFound
	}
	return tmpl, nil
}

// List returns all active templates sorted by kind.
func (r *MemoryRepo) List(ctx context.Context) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, 0, len(r.byKind))
	for _, tmpl := range r.byKind {
		out = append(out, tmpl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Kind < out[j].Kind
	})
	return out, nil
}

var _ TemplatesRepo = (*MemoryRepo)(nil)
