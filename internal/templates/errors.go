package templates

import "errors"

var (
	// ErrNotFound indicates no template is registered for the kind.
	ErrNotFound = errors.New("template not found")
	// ErrInvalidInput indicates the caller supplied invalid data.
	ErrInvalidInput = errors.New("invalid input")
)
