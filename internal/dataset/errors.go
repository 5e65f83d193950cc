package dataset

import (
	"errors"
	"fmt"
)

// SizeErrorCode categorizes rejected dataset sizes.
type SizeErrorCode string

const (
	// ErrCodeNegativeSize indicates a negative dataset length.
	ErrCodeNegativeSize SizeErrorCode = "NEGATIVE_SIZE"

	// ErrCodeSizeExceedsUniverse indicates more distinct values were requested
	// than the universe holds.
	ErrCodeSizeExceedsUniverse SizeErrorCode = "SIZE_EXCEEDS_UNIVERSE"
)

// SizeError reports a dataset length the generator cannot satisfy.
type SizeError struct {
	Code     SizeErrorCode
	Size     int
	Universe int
}

func newSizeError(code SizeErrorCode, size, universe int) *SizeError {
	return &SizeError{Code: code, Size: size, Universe: universe}
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	switch e.Code {
	case ErrCodeNegativeSize:
		return fmt.Sprintf("%s: dataset size %d is negative", e.Code, e.Size)
	case ErrCodeSizeExceedsUniverse:
		return fmt.Sprintf("%s: cannot draw %d distinct values from [0, %d)", e.Code, e.Size, e.Universe)
	default:
		return fmt.Sprintf("%s: dataset size %d", e.Code, e.Size)
	}
}

// IsSizeError returns true if err is (or wraps) a *SizeError.
func IsSizeError(err error) bool {
	var se *SizeError
	return errors.As(err, &se)
}
