package text

import (
	"strings"
	"unicode"
)

// RemoveExtraSpaces trims s and collapses every interior whitespace run,
// including tabs and newlines, to a single space.
func RemoveExtraSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveSpecialChars keeps ASCII letters, digits, and whitespace, dropping
// every other character including accented letters and punctuation.
func RemoveSpecialChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
