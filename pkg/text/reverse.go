package text

// Reverse returns s with its bytes in reverse order. Multi-byte UTF-8
// sequences are reversed byte by byte as well, so non-ASCII input produces
// invalid UTF-8. The operation is its own inverse on any input; use
// ReverseRunes when code points must stay intact.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ReverseRunes returns s with its runes in reverse order, keeping each
// UTF-8 sequence intact.
func ReverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
