package text

import "strings"

// StartsWith reports whether s begins with prefix. Matching is literal and
// case-sensitive.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix. Matching is literal and
// case-sensitive.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Contains reports whether substr occurs anywhere in s. Matching is literal
// and case-sensitive.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// IsEmpty reports whether s has zero length. See IsBlank for the
// whitespace-insensitive variant.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty after trimming Unicode whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsPalindrome reports whether s reads the same forwards and backwards
// after dropping every character outside [a-zA-Z0-9] and lowercasing.
// "A man, a plan, a canal: Panama" qualifies; an input that strips down to
// nothing qualifies too.
func IsPalindrome(s string) bool {
	clean := stripNonAlnum(strings.ToLower(s))
	for i, j := 0, len(clean)-1; i < j; i, j = i+1, j-1 {
		if clean[i] != clean[j] {
			return false
		}
	}
	return true
}

// IsAnagram reports whether a and b contain the same characters with the
// same multiplicities after dropping every character outside [a-zA-Z0-9].
// Unlike IsPalindrome the comparison is case-sensitive: "Listen" and
// "silent" do not match.
func IsAnagram(a, b string) bool {
	ca, cb := stripNonAlnum(a), stripNonAlnum(b)
	if len(ca) != len(cb) {
		return false
	}
	var counts ['z' + 1]int
	for i := 0; i < len(ca); i++ {
		counts[ca[i]]++
	}
	for i := 0; i < len(cb); i++ {
		counts[cb[i]]--
		if counts[cb[i]] < 0 {
			return false
		}
	}
	return true
}

// IsMirror reports whether a equals the byte-reversal of b.
func IsMirror(a, b string) bool {
	return a == Reverse(b)
}

// stripNonAlnum keeps only ASCII letters and digits. Bytes of multi-byte
// sequences fall outside the kept set and are dropped with the rest.
func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
