package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrCancellationNotAllowed is a business-rule rejection, not a system
	// fault: the booking is already cancelled, the flight is unknown, or
	// departure is within the cancellation cutoff.
	ErrCancellationNotAllowed = errors.New("cancellation not allowed")
)

// ValidationError reports a missing or malformed required field. It is
// recovered locally by re-prompting the caller, never escalated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
