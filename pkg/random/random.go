package random

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Hex returns a random lowercase hex string. It draws length/2 bytes from
// crypto/rand, so even lengths produce exactly length characters and odd
// lengths one fewer. Lengths below 2 return ErrInvalidLength.
func Hex(length int) (string, error) {
	n := length / 2
	if n < 1 {
		return "", ErrInvalidLength
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrInsufficientEntropy, fmt.Errorf("read random bytes: %w", err))
	}
	return hex.EncodeToString(buf), nil
}

// UUID returns a random RFC 4122 version 4 UUID string.
func UUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Join(ErrInsufficientEntropy, fmt.Errorf("generate uuid: %w", err))
	}
	return id.String(), nil
}
