package databases

import "errors"

// Sentinel errors shared by every repository implementation. Handlers map
// these onto HTTP status codes.
var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when registering an email that is already taken
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrAtCapacity is returned when a course has no doses left to take
	ErrAtCapacity = errors.New("all doses already taken")
)
