package samples

import "errors"

var (
	// ErrNotFound indicates the sample does not exist.
	ErrNotFound = errors.New("sample not found")
	// ErrInvalidInput indicates the caller supplied invalid data.
	ErrInvalidInput = errors.New("invalid input")
)
