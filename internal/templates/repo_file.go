package templates

import (
	"context"
	"sort"

	"jobsearch-backend/internal/shared/storage/file"
)

// FileRepo persists the template registry in a flat JSON collection on disk.
type FileRepo struct {
	col *file.Collection[Template]
}

// NewFileRepo constructs a FileRepo backed by the given file path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{col: file.NewCollection[Template](path)}
}

// Replace installs the template as the active entry for its kind, dropping
// any previous entry of the same kind.
func (r *FileRepo) Replace(ctx context.Context, tmpl Template) error {
	_, err := r.col.Update(ctx, func(items []Template) ([]Template, error) {
		kept := items[:0]
		for _, item := range items {
			if item.Kind != tmpl.Kind {
				kept = append(kept, item)
			}
		}
		return append(kept, tmpl), nil
	})
	return err
}

// FindActive returns the active template for a kind.
func (r *FileRepo) FindActive(ctx context.Context, kind string) (Template, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return Template{}, err
	}
	for i := range items {
		if items[i].Kind == kind {
			return items[i], nil
		}
	}
	return Template{}, ErrNotFound
}

// List returns all active templates sorted by kind.
func (r *FileRepo) List(ctx context.Context) ([]Template, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Kind < items[j].Kind
	})
	return items, nil
}

var _ TemplatesRepo = (*FileRepo)(nil)
