package caseconv

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToCamelCase converts s to camelCase. Hyphens, underscores, and spaces are
// treated as word breaks, the input is lowercased before word starts are
// re-capitalized, and the first character of the result is lowered.
func ToCamelCase(s string) string {
	return lowerFirst(ToPascalCase(s))
}

// ToPascalCase converts s to PascalCase using the same word-break rules as
// ToCamelCase but keeping the leading capital.
func ToPascalCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upperNext := true
	for _, r := range s {
		if r == '-' || r == '_' || r == ' ' {
			upperNext = true
			continue
		}
		r = unicode.ToLower(r)
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToSnakeCase converts s to snake_case: the first rune is lowered, every
// later uppercase rune gains a leading underscore while being lowered, and
// any remaining character outside [a-z0-9_] becomes an underscore. A space
// between words therefore produces a double underscore.
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ToKebabCase trims and lowercases s, then replaces every maximal run of
// ASCII word characters (letters, digits, underscore) with a single hyphen.
// Characters outside that set survive as-is, so the transform is lossy:
// "hello world" becomes "- -". Callers that want a readable URL token
// should use the slug package instead.
func ToKebabCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if isWordRune(r) {
			if !inWord {
				b.WriteByte('-')
				inWord = true
			}
			continue
		}
		inWord = false
		b.WriteRune(r)
	}
	return b.String()
}

// ToScreamingSnakeCase converts s to SCREAMING_SNAKE_CASE.
func ToScreamingSnakeCase(s string) string {
	return strings.ToUpper(ToSnakeCase(s))
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	lower := unicode.ToLower(r)
	if lower == r {
		return s
	}
	return string(lower) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
