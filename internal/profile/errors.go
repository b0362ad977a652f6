package profile

import "errors"

var (
	// ErrNotFound indicates no profile has been saved yet.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidInput indicates the caller supplied invalid data.
	ErrInvalidInput = errors.New("invalid input")
)
