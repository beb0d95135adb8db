package rightmost

import "fmt"

// Phrase is one element of a rightmost LZ77 parse: either a single literal
// byte (Distance == 0) or an instruction to copy Length bytes starting
// Distance positions back from the current output position.
type Phrase struct {
	Distance int
	Length   int
	Literal  byte
}

func (p Phrase) IsLiteral() bool {
	return p.Distance == 0
}

func (p Phrase) String() string {
	if p.IsLiteral() {
		return fmt.Sprintf("Literal: %q", p.Literal)
	}
	return fmt.Sprintf("Copy: distance=%d, length=%d", p.Distance, p.Length)
}

// Parse computes the rightmost LZ77 parsing of text[start : start+length].
// Every copy phrase references the nearest earlier occurrence of its content
// inside the query window, so the parse of a window never depends on text
// outside it. A zero-length window yields no phrases.
func (x *Index) Parse(start, length int) ([]Phrase, error) {
	if start < 0 || length < 0 || start+length > len(x.text) {
		return nil, ErrOutOfRange
	}

	var phrases []Phrase
	end := start + length
	for pos := start; pos < end; {
		// Nearest earlier occurrence of the current byte inside the window.
		q := -1
		for j := pos - 1; j >= start; j-- {
			if x.text[j] == x.text[pos] {
				q = j
				break
			}
		}
		if q < 0 {
			phrases = append(phrases, Phrase{Length: 1, Literal: x.text[pos]})
			pos++
			continue
		}

		if p, ok := x.indexedMatch(start, pos, end); ok {
			phrases = append(phrases, p)
			pos += p.Length
			continue
		}

		// No indexed repeat has an in-window earlier occurrence here. Extend
		// the nearest single-byte occurrence instead. This stays with the
		// nearest occurrence even when a farther one would match longer.
		n := min(x.extension(q, pos), end-pos)
		phrases = append(phrases, Phrase{Distance: pos - q, Length: n})
		pos += n
	}
	return phrases, nil
}

// indexedMatch scans the right-closed repeats whose later occurrence starts
// at pos, nearest earlier occurrence first, and takes the first one whose
// earlier occurrence lies inside the window. The match is truncated to the
// window end.
func (x *Index) indexedMatch(start, pos, end int) (Phrase, bool) {
	for _, r := range x.repeats[pos] {
		if r.Prev < start {
			continue
		}
		return Phrase{Distance: pos - r.Prev, Length: min(r.Length, end-pos)}, true
	}
	return Phrase{}, false
}

// extension returns the longest common extension of the suffixes starting at
// i and j, i != j. With the range-minimum structure available this is the
// minimum LCP value over the rank interval between the two suffixes;
// otherwise the bytes are compared directly.
func (x *Index) extension(i, j int) int {
	if x.lcpRMQ != nil {
		l, r := x.rank[i], x.rank[j]
		if l > r {
			l, r = r, l
		}
		return x.lcp[x.lcpRMQ.Query(l, r-1)]
	}

	n := 0
	for i+n < len(x.text) && j+n < len(x.text) && x.text[i+n] == x.text[j+n] {
		n++
	}
	return n
}

// Reconstruct replays a phrase sequence into the substring it encodes.
// Copies read from the output produced so far, one byte at a time, so
// overlapping copies behave as in the parse.
func Reconstruct(phrases []Phrase) string {
	var out []byte
	for _, p := range phrases {
		if p.IsLiteral() {
			out = append(out, p.Literal)
			continue
		}
		for i := 0; i < p.Length; i++ {
			out = append(out, out[len(out)-p.Distance])
		}
	}
	return string(out)
}
