package slug

import (
	"crypto/rand"
	"time"
)

const defaultSuffixLength = 6

const (
	suffixAlphabetLower = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixAlphabetMixed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// generateSuffix returns a random alphanumeric string of the given length.
// Slug generation never reports errors, so when the entropy source fails
// the bytes are derived from the clock instead (degraded but functional).
func generateSuffix(length int, lowercase bool) string {
	if length <= 0 {
		return ""
	}
	alphabet := suffixAlphabetMixed
	if lowercase {
		alphabet = suffixAlphabetLower
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		seed := uint64(time.Now().UnixNano())
		for i := range buf {
			seed = seed*6364136223846793005 + 1442695040888963407
			buf[i] = byte(seed >> 33)
		}
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
