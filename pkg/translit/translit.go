package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTable maps letters that survive canonical decomposition unchanged to
// their closest ASCII form. Single-character replacements are preferred so
// downstream length math stays predictable.
var foldTable = map[rune]string{
	'ß': "s", 'ẞ': "S",
	'æ': "a", 'Æ': "A",
	'œ': "o", 'Œ': "O",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "t", 'Þ': "T",
	'ħ': "h", 'Ħ': "H",
	'ŋ': "n", 'Ŋ': "N",
	'ı': "i",
	'ſ': "s",
}

// RemoveDiacritics strips combining marks from s. Characters decompose
// canonically (NFD), lose their marks, and recompose (NFC), so "café"
// becomes "cafe" while non-Latin scripts pass through untouched.
func RemoveDiacritics(s string) string {
	if isASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ToASCII returns the closest ASCII representation of s. Diacritics are
// stripped, non-decomposing letters fold through a fixed table, and code
// points that still have no ASCII form are dropped. The result contains
// only bytes below 0x80.
func ToASCII(s string) string {
	if isASCII(s) {
		return s
	}
	stripped := RemoveDiacritics(s)
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
			continue
		}
		if repl, ok := foldTable[r]; ok {
			b.WriteString(repl)
		}
	}
	return b.String()
}

// Rune folds a single code point to ASCII. The second return value reports
// whether r has an ASCII representation; when it is false the first value
// is empty.
func Rune(r rune) (string, bool) {
	if r < utf8.RuneSelf {
		return string(r), true
	}
	if repl, ok := foldTable[r]; ok {
		return repl, true
	}
	stripped := RemoveDiacritics(string(r))
	if stripped == "" || !isASCII(stripped) {
		return "", false
	}
	return stripped, true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
