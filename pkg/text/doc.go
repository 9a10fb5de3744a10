// Package text provides general-purpose string inspection and manipulation
// helpers: truncation, padding, chunking, predicates, extraction, and
// whitespace cleanup.
//
// Everything here is a pure function over its input. Lengths and offsets
// are measured in runes, with one deliberate exception: Reverse (and the
// IsMirror predicate built on it) works on raw bytes and documents the
// consequences for multi-byte text.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/strutil/pkg/text"
//
//	text.Truncate("Hello World", 5, "...")       // "Hello..."
//	text.PadLeft("5", 3, "0")                    // "005"
//	text.Between("user[42]", "[", "]")           // "42", true
//	text.Mask("4111111111111111", 4, 8, "*")     // "4111********1111"
//	text.RemoveExtraSpaces("  too   many  ")     // "too many"
//
// # Validation Errors
//
// Most functions are total and degrade gracefully on odd input: out of
// range offsets clamp, empty inputs produce empty outputs, and markers
// that never match report ok=false instead of failing. The two sizing
// operations that cannot produce a meaningful result return a sentinel
// error instead:
//
//	_, err := text.SplitByLength("abc", 0) // errors.Is(err, text.ErrInvalidLength)
//	_, err = text.Repeat("ab", -1)         // errors.Is(err, text.ErrNegativeCount)
//
// # Predicates
//
// IsEmpty reports a zero-length string, IsBlank a string that trims to
// nothing. IsPalindrome lowercases and strips non-alphanumerics before
// comparing; IsAnagram strips the same set but compares case-sensitively,
// so "Listen" and "silent" do not match while "listen" and "silent" do.
package text
