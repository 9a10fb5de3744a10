package text

import "strings"

// SplitByLength cuts s into consecutive chunks of at most length runes.
// The final chunk carries the remainder. Empty input yields nil; a length
// below one returns ErrInvalidLength.
func SplitByLength(s string, length int) ([]string, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}
	if s == "" {
		return nil, nil
	}
	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+length-1)/length)
	for start := 0; start < len(runes); start += length {
		end := min(start+length, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks, nil
}

// Repeat concatenates count copies of s. A count of zero yields the empty
// string; a negative count returns ErrNegativeCount.
func Repeat(s string, count int) (string, error) {
	if count < 0 {
		return "", ErrNegativeCount
	}
	return strings.Repeat(s, count), nil
}
