package text

import "unicode/utf8"

// Truncate shortens s to at most length runes and appends suffix when a cut
// happened. The suffix does not count toward the limit, so the result may
// exceed length. Strings already within the limit come back unchanged.
func Truncate(s string, length int, suffix string) string {
	if length < 0 {
		length = 0
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	return string([]rune(s)[:length]) + suffix
}
