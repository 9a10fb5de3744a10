package similarity

// span is a pending pair of byte ranges, a[a1:a2] against b[b1:b2].
type span struct {
	a1, a2 int
	b1, b2 int
}

// Count returns the number of matching characters between a and b: the
// length of their longest common substring plus the counts of the regions
// to its left and right, computed the same way. The recursion is driven
// by an explicit stack, so pathological inputs cannot exhaust the call
// stack.
func Count(a, b string) int {
	count := 0
	stack := []span{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pa, pb, n := longestCommon(a, b, s)
		if n == 0 {
			continue
		}
		count += n
		stack = append(stack,
			span{s.a1, pa, s.b1, pb},
			span{pa + n, s.a2, pb + n, s.b2},
		)
	}
	return count
}

// Percent returns Count normalized to a percentage of the combined input
// length: identical non-empty strings score 100, disjoint strings 0.
// Two empty strings score 0.
func Percent(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	return float64(Count(a, b)) * 200 / float64(total)
}

// longestCommon finds the longest common substring of the spanned
// regions. Ties resolve to the leftmost position in a, then in b.
func longestCommon(a, b string, s span) (pa, pb, max int) {
	for i := s.a1; i < s.a2; i++ {
		for j := s.b1; j < s.b2; j++ {
			n := 0
			for i+n < s.a2 && j+n < s.b2 && a[i+n] == b[j+n] {
				n++
			}
			if n > max {
				pa, pb, max = i, j, n
			}
		}
	}
	return pa, pb, max
}
