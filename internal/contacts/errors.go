package contacts

import "errors"

var (
	// ErrNotFound indicates the contact does not exist.
	ErrNotFound = errors.New("contact not found")
	// ErrInvalidInput indicates the caller supplied invalid data.
	ErrInvalidInput = errors.New("invalid input")
)
