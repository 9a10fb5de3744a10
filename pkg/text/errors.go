package text

import "errors"

var (
	// ErrInvalidLength is returned when a chunk length is less than one.
	ErrInvalidLength = errors.New("text: length must be positive")

	// ErrNegativeCount is returned when a repeat count is negative.
	ErrNegativeCount = errors.New("text: count must be non-negative")
)
