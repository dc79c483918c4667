package search

// Levenshtein returns the minimum number of single-rune insertions,
// deletions or substitutions needed to turn a into b.
//
// Cost is O(len(a) * len(b)) time. No input size limit is enforced here;
// callers matching against large collections should pre-filter by length.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	return distance([]rune(a), []rune(b))
}

// distance fills the classic DP table one row at a time. Row i holds the
// distances between a[:i] and every prefix of b.
func distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
