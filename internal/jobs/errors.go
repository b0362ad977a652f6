package jobs

import "errors"

var (
	// ErrNotFound indicates the job does not exist.
	ErrNotFound = errors.New("job not found")
	// ErrInvalidInput indicates the caller supplied invalid data.
	ErrInvalidInput = errors.New("invalid input")
)
