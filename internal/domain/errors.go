package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a uniqueness constraint is violated,
	// e.g. a second review for the same (user, listing) pair.
	ErrConflict = errors.New("conflict: duplicate entry")

	// ErrIntegrity means a storage-level check constraint fired despite
	// application validation. Handlers log it as a defect.
	ErrIntegrity = errors.New("storage integrity constraint violated")
)

// ValidationError names the field and rule an input violated.
type ValidationError struct {
	Field string
	Rule  string
	Msg   string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

func invalid(field, rule, msg string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Msg: msg}
}
