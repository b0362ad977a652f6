package artifacts

import "errors"

var (
	// ErrNotFound indicates the artifact does not exist.
	ErrNotFound = errors.New("artifact not found")
	// ErrInvalidInput indicates the caller supplied invalid data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrJobNotFound indicates the referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrProfileNotSet indicates generation was requested before the
	// profile was saved.
	ErrProfileNotSet = errors.New("profile not set")
	// ErrNoDocument indicates the artifact has no rendered document to
	// download.
	ErrNoDocument = errors.New("artifact has no rendered document")
)
