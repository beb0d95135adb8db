package rightmost

// Kasai's algorithm for building the LCP array in O(n) time. lcp[r] is the
// length of the longest common prefix of the suffixes at ranks r and r+1.
// Walking the text positions in increasing order lets each LCP pick up from
// the previous one minus one, which keeps the total byte comparisons linear.
func buildLCPArray(suffixArray []int, text []byte) []int {
	n := len(suffixArray)
	if n == 0 {
		return nil
	}
	rank := inverseSuffixArray(suffixArray)

	lcp := make([]int, n-1)
	h := 0
	for i := range suffixArray {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := suffixArray[rank[i]-1]
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[rank[i]-1] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}
