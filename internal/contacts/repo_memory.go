package contacts

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of ContactsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Contact
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Contact)}
}

// Create stores a new contact.
func (r *MemoryRepo) Create(ctx context.Context, contact Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[contact.ID] = contact
	return nil
}

// GetByID returns a contact by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Contact, error) {
	if err := ctx.Err(); err != nil {
		return Contact{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	contact, ok := r.data[id]
	if !ok {
		return Contact{}, ErrNotFound
	}
	return contact, nil
}

// List returns all contacts sorted by name.
func (r *MemoryRepo) List(ctx context.Context) ([]Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Contact, 0, len(r.data))
	for _, contact := range r.data {
		out = append(out, contact)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// Update replaces the stored contact with the same ID.
func (r *MemoryRepo) Update(ctx context.Context, contact Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[contact.ID]; !ok {
		return ErrNotFound
	}
	r.data[contact.ID] = contact
	return nil
}

// Delete removes a contact by ID.
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

var _ ContactsRepo = (*MemoryRepo)(nil)
