package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrUnavailable marks transport or infrastructure failures of the
	// backing store. It is propagated unchanged and never retried here.
	ErrUnavailable = errors.New("repository unavailable")
)

// Machine-readable error kinds exposed to clients.
const (
	KindNotFound     = "not_found"
	KindValidation   = "validation_error"
	KindUnauthorized = "unauthorized"
	KindUnavailable  = "repository_unavailable"
	KindConflict     = "conflict"
	KindInternal     = "internal"
)

// ErrorKind classifies err into one of the Kind* constants.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrAlreadyExists):
		return KindConflict
	default:
		return KindInternal
	}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
