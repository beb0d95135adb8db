package rightmost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmptyText(t *testing.T) {
	idx, err := NewBuilder("").Build()
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.SuffixArray())
	assert.Empty(t, idx.LCPArray())

	phrases, err := idx.Parse(0, 0)
	require.NoError(t, err)
	assert.Empty(t, phrases)
}

func TestFoldCase(t *testing.T) {
	idx, err := NewBuilder("ABAB").FoldCase().Build()
	require.NoError(t, err)
	assert.Equal(t, "abab", idx.Text())

	phrases, err := idx.Parse(0, 4)
	require.NoError(t, err)
	want := []Phrase{
		{Length: 1, Literal: 'a'},
		{Length: 1, Literal: 'b'},
		{Distance: 2, Length: 2},
	}
	assert.Equal(t, want, phrases)
}

func TestNormalize(t *testing.T) {
	// "e" + combining acute composes to a single rune under NFC.
	idx, err := NewBuilder("e\u0301e\u0301").Normalize().Build()
	require.NoError(t, err)
	assert.Equal(t, "\u00e9\u00e9", idx.Text())

	_, err = NewBuilder("\xff\xfe").Normalize().Build()
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	// Without Normalize, arbitrary bytes are indexed as-is.
	idx, err = NewBuilder("\xff\xfe").Build()
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
}

func TestAccessorsReturnCopies(t *testing.T) {
	idx, err := NewBuilder("banana").Build()
	require.NoError(t, err)

	sa := idx.SuffixArray()
	sa[0] = -100
	assert.NotEqual(t, sa[0], idx.SuffixArray()[0])

	lcp := idx.LCPArray()
	lcp[0] = -100
	assert.NotEqual(t, lcp[0], idx.LCPArray()[0])

	// "banana" suffix order is [5 3 1 0 4 2]; position 3 repeats the "ana"
	// at position 1.
	reps := idx.Repeats(3)
	require.NotEmpty(t, reps)
	reps[0].Length = -100
	assert.NotEqual(t, reps[0].Length, idx.Repeats(3)[0].Length)
}

func TestConcurrentParse(t *testing.T) {
	idx := mustIndex(t, "abracadabra abracadabra banana")
	want, err := idx.Parse(0, idx.Len())
	require.NoError(t, err)

	done := make(chan []Phrase)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := idx.Parse(0, idx.Len())
			assert.NoError(t, err)
			done <- got
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
