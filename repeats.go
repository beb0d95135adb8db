package rightmost

import "sort"

// Repeat records an earlier occurrence of the content starting at the
// position the repeat is indexed under: the Length bytes at Prev equal the
// Length bytes at that position, and the occurrence pair cannot be extended
// one byte to the right (one of them ends the text, or the following bytes
// differ).
type Repeat struct {
	Prev   int
	Length int
}

// buildRepeatIndex derives right-closed repeats from the adjacent
// suffix-array boundaries and buckets them by the start of the later
// occurrence. Checking adjacent boundaries only is sufficient: a repeat's
// maximal right-closed extension is always witnessed by some pair of
// lexicographically adjacent suffixes sharing that prefix.
func buildRepeatIndex(suffixArray, lcp []int, text []byte) [][]Repeat {
	n := len(text)
	repeats := make([][]Repeat, n)

	for r, length := range lcp {
		if length == 0 {
			continue
		}
		prev, pos := suffixArray[r], suffixArray[r+1]
		if prev > pos {
			prev, pos = pos, prev
		}
		end1, end2 := prev+length, pos+length
		if end1 < n && end2 < n && text[end1] == text[end2] {
			// Both occurrences extend to the right; not closed.
			continue
		}
		repeats[pos] = append(repeats[pos], Repeat{Prev: prev, Length: length})
	}

	// Nearest earlier occurrence first, ties broken by shortest repeat.
	for _, bucket := range repeats {
		sort.Slice(bucket, func(i, j int) bool {
			if bucket[i].Prev != bucket[j].Prev {
				return bucket[i].Prev > bucket[j].Prev
			}
			return bucket[i].Length < bucket[j].Length
		})
	}
	return repeats
}
