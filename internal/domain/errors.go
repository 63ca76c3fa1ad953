// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow = fmt.Errorf("%w: users cannot follow themselves", ErrValidation)

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// FieldViolation describes a single violated constraint on an entity field.
type FieldViolation struct {
	Field  string
	Reason string
}

// ValidationError reports every violated constraint found on an entity,
// not just the first one, so callers can surface complete feedback.
// It wraps ErrValidation so errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Violations []FieldViolation
	err        error
}

// NewValidationError creates a ValidationError for a single field violation.
// The wrapped error defaults to ErrValidation when nil.
func NewValidationError(field, reason string, wrapped error) *ValidationError {
	if wrapped == nil {
		wrapped = ErrValidation
	}
	return &ValidationError{
		Violations: []FieldViolation{{Field: field, Reason: reason}},
		err:        wrapped,
	}
}

// Add appends a field violation to the error.
func (e *ValidationError) Add(field, reason string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Reason: reason})
}

// Error implements the error interface, joining all violations.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return e.err.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s %s", v.Field, v.Reason))
	}
	return fmt.Sprintf("%v: %s", e.err, strings.Join(parts, "; "))
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.err
}

// newFieldErrors returns an empty ValidationError ready to collect violations.
func newFieldErrors() *ValidationError {
	return &ValidationError{err: ErrValidation}
}
