// Package translit converts Unicode text to its closest ASCII representation.
//
// This package powers accent folding across the library: it strips combining
// marks through canonical decomposition and folds the handful of Latin letters
// that never decompose (ß, æ, ø, ł and friends) through a fixed table.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/strutil/pkg/translit"
//
//	// Strip diacritical marks, keep everything else
//	s := translit.RemoveDiacritics("Crème Brûlée")
//	// Output: "Creme Brulee"
//
//	// Best-effort ASCII, dropping what has no mapping
//	s = translit.ToASCII("Zażółć gęślą jaźń")
//	// Output: "Zazolc gesla jazn"
//
// # Behavior
//
// RemoveDiacritics touches only combining marks. Letters from non-Latin
// scripts pass through unchanged:
//
//	translit.RemoveDiacritics("Καλημέρα") // "Καλημερα"
//
// ToASCII is total and never fails: code points that still have no ASCII
// form after decomposition and table folding are silently dropped:
//
//	translit.ToASCII("price: 99€") // "price: 99"
//	translit.ToASCII("Москва")     // ""
//
// The fold table prefers single-character replacements, so ligatures lose
// their second letter (æ becomes a, not ae). Callers that need linguistic
// transliteration rather than identifier folding should reach for a full
// ICU pipeline instead.
package translit
