// Package similarity scores how alike two strings are.
//
// The algorithm finds the longest common substring, then recursively
// scores the regions to its left and right in both strings and sums the
// matched lengths. Count returns the total matched characters, Percent
// normalizes it against the combined input length:
//
//	similarity.Count("World", "Word")   // 4
//	similarity.Percent("World", "Word") // 88.88...
//
// Matching is byte-based, so multi-byte runes only count when their
// encodings match exactly. Worst-case cost grows with the product of the
// input lengths; keep inputs to comparison-sized strings (names, titles,
// short phrases), not documents.
package similarity
