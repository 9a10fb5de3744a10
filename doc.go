// Package strutil is a collection of focused string manipulation packages.
//
// Each subpackage under pkg/ covers one concern and depends on nothing
// beyond its own imports, so applications pull in only what they use:
//
//   - [github.com/dmitrymomot/strutil/pkg/caseconv]: case conversions
//     (camelCase, PascalCase, snake_case, kebab-case, Title Case)
//   - [github.com/dmitrymomot/strutil/pkg/slug]: URL-safe slugs with
//     length limits, reserved names, and collision suffixes
//   - [github.com/dmitrymomot/strutil/pkg/translit]: Unicode to ASCII
//     transliteration and diacritic removal
//   - [github.com/dmitrymomot/strutil/pkg/text]: truncation, padding,
//     predicates, extraction, and whitespace cleanup
//   - [github.com/dmitrymomot/strutil/pkg/htmlenc]: HTML escaping,
//     entity encoding, sanitization, and markdown rendering
//   - [github.com/dmitrymomot/strutil/pkg/urlenc]: form-style URL
//     percent-encoding with lenient decoding
//   - [github.com/dmitrymomot/strutil/pkg/digest]: hex digests with
//     runtime algorithm selection
//   - [github.com/dmitrymomot/strutil/pkg/random]: random hex strings
//     and UUIDs from crypto/rand
//   - [github.com/dmitrymomot/strutil/pkg/similarity]: similar-text
//     scoring for fuzzy comparisons
//
// # Conventions
//
// All packages follow the same rules:
//
//   - Functions are pure and safe for concurrent use; there is no shared
//     mutable state beyond lazily built immutable policies.
//   - Positions and lengths count runes, not bytes, unless a function
//     documents otherwise ([text.Reverse] and similarity are byte-based).
//   - Functions are total wherever possible. The few that can fail
//     (random generation, algorithm lookup, chunking) return sentinel
//     errors that callers test with errors.Is.
//
// # Quick Start
//
//	import (
//	    "github.com/dmitrymomot/strutil/pkg/caseconv"
//	    "github.com/dmitrymomot/strutil/pkg/slug"
//	    "github.com/dmitrymomot/strutil/pkg/text"
//	)
//
//	caseconv.ToSnakeCase("userID")                 // "user_i_d"
//	slug.Make("Café & Restaurant!")                // "cafe-restaurant"
//	text.Truncate("Hello World", 5, "...")         // "Hello..."
package strutil
