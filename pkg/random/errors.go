package random

import "errors"

var (
	// ErrInvalidLength indicates the requested length is too short to
	// produce any output.
	ErrInvalidLength = errors.New("random: length must be at least 2")

	// ErrInsufficientEntropy indicates the system entropy source failed.
	ErrInsufficientEntropy = errors.New("random: insufficient entropy")
)
