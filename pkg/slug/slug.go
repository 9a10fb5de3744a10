package slug

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/strutil/pkg/translit"
)

// Make converts input into a URL-safe slug. With no options the result is
// lowercase, hyphen-separated, and unbounded in length; see the Option
// constructors for the available knobs.
func Make(input string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := input
	for search, replace := range cfg.replacements {
		s = strings.ReplaceAll(s, search, replace)
	}
	if cfg.stripChars != "" {
		s = stripChars(s, cfg.stripChars)
	}

	result := slugify(s, cfg.separator, cfg.lowercase)

	// An explicit WithSuffix keeps the suffix whole under MaxLength; a
	// suffix forced by ReservedSlugs truncates from the right instead.
	switch {
	case cfg.suffixLength > 0:
		suffix := generateSuffix(cfg.suffixLength, cfg.lowercase)
		result = joinPreservingSuffix(result, suffix, cfg)
	case isReserved(result, cfg.reserved):
		suffix := generateSuffix(defaultSuffixLength, cfg.lowercase)
		result = join(result, suffix, cfg.separator)
		result = truncate(result, cfg.maxLength, cfg.separator)
	default:
		result = truncate(result, cfg.maxLength, cfg.separator)
	}

	if cfg.minLength > 0 && utf8.RuneCountInString(result) < cfg.minLength {
		suffix := generateSuffix(defaultSuffixLength, cfg.lowercase)
		result = join(result, suffix, cfg.separator)
		result = truncate(result, cfg.maxLength, cfg.separator)
	}

	return result
}

// slugify transliterates the input rune by rune and assembles the base
// slug: ASCII alphanumerics are kept, everything else collapses into a
// single separator. Separators never lead or trail.
func slugify(s, separator string, lowercase bool) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		mapped, ok := translit.Rune(r)
		if !ok {
			pendingSep = b.Len() > 0
			continue
		}
		for _, m := range mapped {
			if !isAlnum(m) {
				pendingSep = b.Len() > 0
				continue
			}
			if pendingSep {
				b.WriteString(separator)
				pendingSep = false
			}
			if lowercase {
				m = lowerASCII(m)
			}
			b.WriteRune(m)
		}
	}
	return b.String()
}

// joinPreservingSuffix attaches an explicitly requested suffix. Under
// MaxLength the base gives way first; when even the suffix alone exceeds
// the cap, the suffix itself is cut and the base dropped.
func joinPreservingSuffix(base, suffix string, cfg config) string {
	if cfg.maxLength > 0 {
		available := cfg.maxLength - utf8.RuneCountInString(suffix) - utf8.RuneCountInString(cfg.separator)
		if available <= 0 {
			return cutRunes(suffix, cfg.maxLength)
		}
		base = truncate(base, available, cfg.separator)
	}
	return join(base, suffix, cfg.separator)
}

func join(base, suffix, separator string) string {
	if base == "" {
		return suffix
	}
	return base + separator + suffix
}

// truncate cuts s to maxLength runes and trims any separator remnant left
// at the cut point. Zero or negative maxLength means no limit.
func truncate(s string, maxLength int, separator string) string {
	if maxLength <= 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	s = cutRunes(s, maxLength)
	if separator != "" {
		s = strings.TrimRight(s, separator)
	}
	return s
}

func cutRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func stripChars(s, chars string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(chars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isReserved(s string, reserved []string) bool {
	for _, r := range reserved {
		if strings.EqualFold(s, r) {
			return true
		}
	}
	return false
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
