package rightmost

import "sort"

// buildSuffixArray sorts the suffix start positions of text into
// lexicographic order by prefix doubling: round k orders positions by the
// pair (rank[pos], rank[pos+k]), then reassigns ranks so that equal pairs
// share a rank, doubling k until every suffix is distinguished.
func buildSuffixArray(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	if n < 2 {
		return sa
	}

	ranks := make([]int, n)
	next := make([]int, n)
	for i, c := range text {
		ranks[i] = int(c)
	}

	// Positions past the end of the text compare as a sentinel smaller than
	// any real rank.
	rankAt := func(pos int) int {
		if pos < n {
			return ranks[pos]
		}
		return -1
	}

	for k := 1; ; k <<= 1 {
		sort.Slice(sa, func(i, j int) bool {
			if ranks[sa[i]] != ranks[sa[j]] {
				return ranks[sa[i]] < ranks[sa[j]]
			}
			return rankAt(sa[i]+k) < rankAt(sa[j]+k)
		})

		next[sa[0]] = 0
		for r := 1; r < n; r++ {
			prev, curr := sa[r-1], sa[r]
			next[curr] = next[prev]
			if ranks[curr] != ranks[prev] || rankAt(curr+k) != rankAt(prev+k) {
				next[curr]++
			}
		}
		ranks, next = next, ranks
		if ranks[sa[n-1]] == n-1 {
			return sa
		}
	}
}

// inverseSuffixArray returns the rank of each text position in suffix-array
// order.
func inverseSuffixArray(suffixArray []int) []int {
	rank := make([]int, len(suffixArray))
	for r, pos := range suffixArray {
		rank[pos] = r
	}
	return rank
}
