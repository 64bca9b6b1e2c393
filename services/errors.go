package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the service layer. Handlers translate them to
// HTTP statuses; nothing here is retried internally.
var (
	// ErrNotFound marks an unknown team/player/match/training/season id.
	ErrNotFound = errors.New("not found")
	// ErrPermission marks an attempt to touch another owner's data.
	ErrPermission = errors.New("permission denied")
)

// ValidationError rejects a write before it reaches storage, e.g. an
// overlapping season range or a malformed enum value.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// persistencef wraps an underlying storage failure so callers can log the
// cause while handlers report a generic persistence error.
func persistencef(op string, err error) error {
	return fmt.Errorf("%s: persistence failure: %w", op, err)
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}
