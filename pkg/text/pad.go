package text

import (
	"strings"
	"unicode/utf8"
)

// PadLeft prepends repetitions of pad until s is length runes long. The pad
// pattern is cut mid-sequence when it does not divide evenly. Strings
// already at or past length, and empty pads, come back unchanged.
func PadLeft(s string, length int, pad string) string {
	return padding(pad, length-utf8.RuneCountInString(s)) + s
}

// PadRight appends repetitions of pad until s is length runes long, with
// the same cut and no-op rules as PadLeft.
func PadRight(s string, length int, pad string) string {
	return s + padding(pad, length-utf8.RuneCountInString(s))
}

// Center pads s on both sides until it is length runes long. When the
// padding does not split evenly the right side receives the extra rune.
func Center(s string, length int, pad string) string {
	total := length - utf8.RuneCountInString(s)
	if total <= 0 {
		return s
	}
	left := total / 2
	return padding(pad, left) + s + padding(pad, total-left)
}

// padding builds n runes of the pad pattern, cycling through it.
func padding(pad string, n int) string {
	if n <= 0 || pad == "" {
		return ""
	}
	runes := []rune(pad)
	var b strings.Builder
	b.Grow(n)
	for i := range n {
		b.WriteRune(runes[i%len(runes)])
	}
	return b.String()
}
