package backend

import "errors"

var (
	// ErrOutOfRange signals a position at or past the collection length.
	ErrOutOfRange = errors.New("backend: position out of range")
)
