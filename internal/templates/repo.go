package templates

import "context"

// TemplatesRepo defines persistence operations for the template registry.
type TemplatesRepo interface {
	// Replace installs the template as the active entry for its kind.
	Replace(ctx context.Context, tmpl Template) error
	FindActive(ctx context.Context, kind string) (Template, error)
	List(ctx context.Context) ([]Template, error)
}
