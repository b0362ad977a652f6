package contacts

import (
	"context"
	"sort"
	"strings"

	"jobsearch-backend/internal/shared/storage/file"
)

// FileRepo persists contacts in a flat JSON collection on disk.
type FileRepo struct {
	col *file.Collection[Contact]
}

// NewFileRepo constructs a FileRepo backed by the given file path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{col: file.NewCollection[Contact](path)}
}

// Create appends a new contact to the collection.
func (r *FileRepo) Create(ctx context.Context, contact Contact) error {
	_, err := r.col.Update(ctx, func(items []Contact) ([]Contact, error) {
		return append(items, contact), nil
	})
	return err
}

// GetByID returns a contact by ID.
func (r *FileRepo) GetByID(ctx context.Context, id string) (Contact, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return Contact{}, err
	}
	for i := range items {
		if items[i].ID == id {
			return items[i], nil
		}
	}
	return Contact{}, ErrNotFound
}

// List returns all contacts sorted by name.
func (r *FileRepo) List(ctx context.Context) ([]Contact, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

// Update replaces the stored contact with the same ID.
func (r *FileRepo) Update(ctx context.Context, contact Contact) error {
	_, err := r.col.Update(ctx, func(items []Contact) ([]Contact, error) {
		for i := range items {
			if items[i].ID == contact.ID {
				items[i] = contact
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
	return err
}

// Delete removes a contact by ID.
func (r *FileRepo) Delete(ctx context.Context, id string) error {
	_, err := r.col.Update(ctx, func(items []Contact) ([]Contact, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	return err
}

var _ ContactsRepo = (*FileRepo)(nil)
