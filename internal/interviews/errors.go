package interviews

import "errors"

var (
	// ErrNotFound indicates the session does not exist.
	ErrNotFound = errors.New("interview session not found")
	// ErrInvalidInput indicates the caller supplied invalid data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrJobNotFound indicates the referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrEmptyAnswer indicates a blank answer; rejected before any model
	// call is made.
	ErrEmptyAnswer = errors.New("answer must not be empty")
	// ErrSessionComplete indicates the session has already been ended and
	// accepts no further turns.
	ErrSessionComplete = errors.New("interview session already complete")
)
