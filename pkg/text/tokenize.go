package text

import (
	"strings"
	"unicode"
)

// Tokenize splits s on delimiter, trims surrounding whitespace from each
// piece, and drops the empty ones. It returns nil when nothing survives.
func Tokenize(s, delimiter string) []string {
	var tokens []string
	for _, piece := range strings.Split(s, delimiter) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}

// CountWords reports the number of maximal runs of Unicode letters in s.
// Digits, punctuation, and whitespace end a run. There is no dictionary
// segmentation, so scripts written without spaces count each unbroken run
// as one word.
func CountWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if !inWord {
				count++
				inWord = true
			}
		default:
			inWord = false
		}
	}
	return count
}

// CharFrequency counts occurrences of each distinct rune in s.
func CharFrequency(s string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range s {
		freq[r]++
	}
	return freq
}
