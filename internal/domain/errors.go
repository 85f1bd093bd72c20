package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInsufficientTokens is an expected outcome of a gated voting action,
	// not a system fault.
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrGenerationFailed   = errors.New("generation failed")
	ErrScoreParse         = errors.New("score parse error")
	ErrNoUpdateAvailable  = errors.New("no update available")
)

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

// Error kinds reported by batch jobs and metrics.
const (
	KindInvalidInput       = "invalid_input"
	KindNotFound           = "not_found"
	KindAlreadyExists      = "already_exists"
	KindInsufficientTokens = "insufficient_tokens"
	KindGenerationFailed   = "generation_failed"
	KindScoreParse         = "score_parse_error"
	KindNoUpdate           = "no_update_available"
	KindCanceled           = "canceled"
	KindInternal           = "internal"
)

// ErrorKind maps err to a stable, low-cardinality string.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrInsufficientTokens):
		return KindInsufficientTokens
	case errors.Is(err, ErrGenerationFailed):
		return KindGenerationFailed
	case errors.Is(err, ErrScoreParse):
		return KindScoreParse
	case errors.Is(err, ErrNoUpdateAvailable):
		return KindNoUpdate
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindInternal
	}
}
