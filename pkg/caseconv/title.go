package caseconv

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase applies Unicode title casing to s: the first letter of each
// word is uppercased and the rest lowered, with locale-neutral rules.
func ToTitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// CapitalizeWords uppercases the first letter of every whitespace-delimited
// word and leaves all other characters untouched, so "hello wORLD" becomes
// "Hello WORLD". Compare ToTitleCase, which also lowers the rest.
func CapitalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	boundary := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			boundary = true
			b.WriteRune(r)
			continue
		}
		if boundary {
			r = unicode.ToUpper(r)
			boundary = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CapitalizeDelimited splits s on delimiter, uppercases only the first
// character of each piece, and rejoins. Everything after the first
// character of a piece is preserved, including its case and any spaces.
// An empty delimiter returns s unchanged.
func CapitalizeDelimited(s, delimiter string) string {
	if delimiter == "" {
		return s
	}
	parts := strings.Split(s, delimiter)
	for i, part := range parts {
		parts[i] = upperFirst(part)
	}
	return strings.Join(parts, delimiter)
}
