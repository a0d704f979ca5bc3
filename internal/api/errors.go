package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/taskrank-api/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrInvalidFormat):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return "Invalid task data"

	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid request body"

	default:
		return "An unexpected error occurred"
	}
}
