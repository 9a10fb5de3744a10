package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Between returns the substring strictly between the first occurrence of
// start and the first occurrence of end after it. The second return value
// reports whether both markers were found.
func Between(s, start, end string) (string, bool) {
	_, after, ok := strings.Cut(s, start)
	if !ok {
		return "", false
	}
	inner, _, ok := strings.Cut(after, end)
	if !ok {
		return "", false
	}
	return inner, true
}

// ReplaceFirst replaces the first literal occurrence of search in s with
// replace. The input comes back unchanged when search is empty or absent.
func ReplaceFirst(s, search, replace string) string {
	if search == "" {
		return s
	}
	return strings.Replace(s, search, replace, 1)
}

// Initials concatenates the uppercased first rune of each space-delimited
// word. The split is on single spaces, so runs of spaces simply contribute
// empty pieces that are skipped: "john  doe" yields "JD".
func Initials(s string) string {
	var b strings.Builder
	for _, word := range strings.Split(s, " ") {
		if word == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Mask keeps the first start runes of s, writes length repetitions of mask,
// then appends whatever lies past start+length. Negative offsets clamp to
// zero and overlong slices clamp to the string, but the mask run always
// keeps its full count: Mask("abc", 10, 2, "*") is "abc**". A multi-rune
// mask is repeated whole.
func Mask(s string, start, length int, mask string) string {
	if start < 0 {
		start = 0
	}
	if length < 0 {
		length = 0
	}
	runes := []rune(s)
	head := min(start, len(runes))
	tail := len(runes)
	if length < len(runes)-head {
		tail = head + length
	}
	var b strings.Builder
	b.Grow(len(s) + length*len(mask))
	b.WriteString(string(runes[:head]))
	for range length {
		b.WriteString(mask)
	}
	b.WriteString(string(runes[tail:]))
	return b.String()
}
