// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a task record fails validation.
	// ValidationError wraps it so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")
)

// ValidationError carries field-level diagnostics for a single invalid task
// record. Fields maps a field name (e.g. "due_date") to a human-readable
// message. The core never decides batch policy on a validation failure; the
// caller chooses whether one invalid task invalidates the whole batch.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError from a field→message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface. Fields are rendered in sorted order
// so the message is deterministic.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid task data"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid task data: " + strings.Join(parts, "; ")
}

// Unwrap allows errors.Is(err, ErrValidation) to match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
