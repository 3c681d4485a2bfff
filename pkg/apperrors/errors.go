// Package apperrors defines sentinel errors shared across layers.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidInput marks a request field whose value is outside the
	// allowed option set.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports required fields missing from a request.
type ValidationError struct {
	MissingFields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
}

// NewValidationError creates a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{MissingFields: fields}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
