package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id does not resolve to a stored entity.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the acting user may not perform the
	// requested mutation, e.g. a non-receiver resolving a request.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned for malformed payloads: non-positive
	// amounts, empty comment content, missing required fields, or an
	// attempt to re-resolve a settled request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientFunds is returned when a balance transfer to the bank
	// exceeds the user's current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// FieldError wraps one of the sentinel errors above with the offending field
// and value so boundary layers can report structured failures.
type FieldError struct {
	Err   error
	Field string
	Value string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// NewFieldError builds a FieldError around a sentinel error.
func NewFieldError(err error, field, value string) *FieldError {
	return &FieldError{Err: err, Field: field, Value: value}
}
