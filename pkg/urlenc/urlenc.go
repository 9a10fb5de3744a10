package urlenc

import (
	"net/url"
	"strings"
)

// Encode escapes s for use in a URL query component. Spaces become +,
// bytes outside [A-Za-z0-9-_.~] become %XX.
func Encode(s string) string {
	return url.QueryEscape(s)
}

// Decode reverses Encode: + becomes a space and valid %XX sequences
// become the byte they name. Unlike url.QueryUnescape it never fails;
// malformed sequences are passed through literally.
func Decode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				hi, ok1 := unhex(s[i+1])
				lo, ok2 := unhex(s[i+2])
				if ok1 && ok2 {
					b.WriteByte(hi<<4 | lo)
					i += 2
					continue
				}
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
