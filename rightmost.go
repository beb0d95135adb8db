// Package rightmost preprocesses a fixed text so that the rightmost LZ77
// parsing of any of its substrings can be computed quickly. The index is
// built once from the text (suffix array, LCP array and a position-keyed
// table of right-closed repeats) and is read-only afterwards, so it can be
// queried from any number of goroutines without locking.
package rightmost

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8 = errors.New("rightmost: invalid UTF-8 encoding in input text")
	ErrOutOfRange  = errors.New("rightmost: query window outside the indexed text")
)

type IndexBuilder struct {
	text      string
	foldCase  bool
	normalize bool
	useLCE    bool
}

func NewBuilder(text string) *IndexBuilder {
	return &IndexBuilder{
		text:   text,
		useLCE: true,
	}
}

// FoldCase lower-cases the text before indexing. Off by default: a parse
// reconstructs the indexed text byte for byte, so any transform changes what
// queries return.
func (b *IndexBuilder) FoldCase() *IndexBuilder {
	b.foldCase = true
	return b
}

// Normalize applies NFC normalization to the text before indexing.
// Requires valid UTF-8 input.
func (b *IndexBuilder) Normalize() *IndexBuilder {
	b.normalize = true
	return b
}

// SkipLCE skips the range-minimum structure over the LCP array.
// Saves O(n) memory: doesn't use 2*n extra memory.
// Trade-off: the parse fallback extends matches byte by byte instead of
// answering longest-common-extension queries in O(1).
func (b *IndexBuilder) SkipLCE() *IndexBuilder {
	b.useLCE = false
	return b
}

func (b *IndexBuilder) Build() (*Index, error) {
	if b.normalize && !utf8.ValidString(b.text) {
		return nil, ErrInvalidUTF8
	}

	text := []byte(applyTransforms(b.text, b.foldCase, b.normalize))
	suffixArray := buildSuffixArray(text)
	lcp := buildLCPArray(suffixArray, text)

	idx := &Index{
		text:        text,
		suffixArray: suffixArray,
		lcp:         lcp,
		repeats:     buildRepeatIndex(suffixArray, lcp, text),
	}
	if b.useLCE && len(lcp) > 0 {
		idx.rank = inverseSuffixArray(suffixArray)
		idx.lcpRMQ = rmq.NewRMQHybridNaive(lcp)
	}
	return idx, nil
}

// Index holds the preprocessed structures for one text. All fields are
// written during Build and only read afterwards.
type Index struct {
	text        []byte
	suffixArray []int
	lcp         []int
	repeats     [][]Repeat

	// rank and lcpRMQ answer longest-common-extension queries in the parse
	// fallback; both are nil when the builder skipped LCE support.
	rank   []int
	lcpRMQ *rmq.RMQHybridNaive[int]
}

// Len returns the length of the indexed text in bytes.
func (x *Index) Len() int {
	return len(x.text)
}

// Text returns the indexed text, after any builder transforms.
func (x *Index) Text() string {
	return string(x.text)
}

// SuffixArray returns a copy of the suffix array.
func (x *Index) SuffixArray() []int {
	return append([]int(nil), x.suffixArray...)
}

// LCPArray returns a copy of the LCP array.
func (x *Index) LCPArray() []int {
	return append([]int(nil), x.lcp...)
}

// Repeats returns a copy of the right-closed repeats whose later occurrence
// starts at pos, nearest earlier occurrence first.
func (x *Index) Repeats(pos int) []Repeat {
	if pos < 0 || pos >= len(x.repeats) {
		return nil
	}
	return append([]Repeat(nil), x.repeats[pos]...)
}

func applyTransforms(text string, foldCase bool, normalize bool) string {
	if foldCase {
		text = strings.ToLower(text)
	}
	if normalize {
		text = norm.NFC.String(text)
	}
	return text
}
