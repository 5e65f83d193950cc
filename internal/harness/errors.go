package harness

import (
	"errors"
	"fmt"
)

// ValidationErrorCode categorizes rejected benchmark specifications.
type ValidationErrorCode string

const (
	// ErrCodeNegativeStart indicates start < 0.
	ErrCodeNegativeStart ValidationErrorCode = "NEGATIVE_START"

	// ErrCodeInvalidRange indicates stop < start.
	ErrCodeInvalidRange ValidationErrorCode = "INVALID_RANGE"

	// ErrCodeInvalidStep indicates step <= 0.
	ErrCodeInvalidStep ValidationErrorCode = "INVALID_STEP"

	// ErrCodeInvalidRepeats indicates repeats <= 0.
	ErrCodeInvalidRepeats ValidationErrorCode = "INVALID_REPEATS"

	// ErrCodeMissingFunc indicates a target without a function.
	ErrCodeMissingFunc ValidationErrorCode = "MISSING_FUNC"
)

// ValidationError is returned before any timing starts when a run cannot
// be attempted.
type ValidationError struct {
	// Code identifies the error category.
	Code ValidationErrorCode

	// Field names the offending Spec field or "target".
	Field string

	// Message is a human-readable description.
	Message string
}

func newValidationError(code ValidationErrorCode, field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsValidationError returns true if the error is a spec or target validation error.
// Uses errors.As to handle wrapped errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
