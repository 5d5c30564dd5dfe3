package mastery

import "errors"

var (
	// ErrNotFound covers unknown pattern IDs and missing mastery records.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput covers malformed answer outcomes.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when an optimistic write loses a race with a
	// concurrent submission for the same (user, pattern) key. Callers retry
	// the whole read-modify-write with fresh state.
	ErrConflict = errors.New("concurrent update conflict")
)
