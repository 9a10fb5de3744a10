// Package urlenc provides form-style URL percent-encoding.
//
// Encode escapes a string the way HTML forms do
// (application/x-www-form-urlencoded): spaces become +, reserved bytes
// become %XX. Decode reverses it leniently: malformed percent sequences
// pass through unchanged instead of failing, so the function is total.
//
//	urlenc.Encode("a b&c") // "a+b%26c"
//	urlenc.Decode("a+b%26c") // "a b&c"
//	urlenc.Decode("100%zz") // "100%zz"
//
// Decode(Encode(s)) == s for every s.
package urlenc
