// Package services implements the task lifecycle and runner protocol
// operations on top of the Ent store.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrStateConflict is returned when a guarded state transition loses
	// the race or the entity is not in an eligible state
	ErrStateConflict = errors.New("state conflict")

	// ErrUnauthorized is returned for missing, unknown, or inactive
	// runner session tokens
	ErrUnauthorized = errors.New("invalid runner session")

	// ErrForbidden is returned when an agent does not belong to the
	// calling runner session
	ErrForbidden = errors.New("ownership mismatch")

	// ErrRetryBudgetExhausted is returned when a task has no retries left
	ErrRetryBudgetExhausted = errors.New("retry budget exhausted")

	// ErrRetryRefused is returned by auto-retry when the classified
	// failure type is in the no-retry set
	ErrRetryRefused = errors.New("failure type is not auto-retryable")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap makes ValidationError match ErrInvalidInput in errors.Is checks.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
