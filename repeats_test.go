package rightmost

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatIndexRightClosure(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	tests := map[string][]byte{
		"same bytes":  []byte("aaaaaaaa"),
		"banana":      []byte("banana"),
		"abracadabra": []byte("abracadabra"),
		"alternating": []byte("abababab"),
		"random":      randomText(r, 300, 2),
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			sa := buildSuffixArray(text)
			lcp := buildLCPArray(sa, text)
			repeats := buildRepeatIndex(sa, lcp, text)
			n := len(text)

			require.Len(t, repeats, n)
			for pos, bucket := range repeats {
				for i, rp := range bucket {
					require.Greater(t, rp.Length, 0)
					require.GreaterOrEqual(t, rp.Prev, 0)
					require.Less(t, rp.Prev, pos)
					require.LessOrEqual(t, pos+rp.Length, n)

					assert.Equal(t,
						string(text[rp.Prev:rp.Prev+rp.Length]),
						string(text[pos:pos+rp.Length]),
						"pos %d repeat %+v content mismatch", pos, rp)

					closed := rp.Prev+rp.Length == n || pos+rp.Length == n ||
						text[rp.Prev+rp.Length] != text[pos+rp.Length]
					assert.True(t, closed, "pos %d repeat %+v extends right", pos, rp)

					if i > 0 {
						before := bucket[i-1]
						ordered := before.Prev > rp.Prev ||
							(before.Prev == rp.Prev && before.Length <= rp.Length)
						assert.True(t, ordered, "pos %d bucket out of order at %d", pos, i)
					}
				}
			}
		})
	}
}

func TestRepeatsAccessor(t *testing.T) {
	idx, err := NewBuilder("abab").Build()
	require.NoError(t, err)

	// Suffix order of "abab" is [2 0 3 1]; the two boundaries with a common
	// prefix yield one repeat ending at the text end each.
	assert.Equal(t, []Repeat{{Prev: 0, Length: 2}}, idx.Repeats(2))
	assert.Equal(t, []Repeat{{Prev: 1, Length: 1}}, idx.Repeats(3))

	assert.Nil(t, idx.Repeats(0))
	assert.Nil(t, idx.Repeats(-1))
	assert.Nil(t, idx.Repeats(4))
}
