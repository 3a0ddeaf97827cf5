package splitmix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randforge/randforge/generator"
)

func TestDriver(t *testing.T) {
	generator.TestGenerator(t, "splitmix64", []byte{1, 2, 3, 4, 5, 6, 7, 8})
}

func TestReferenceSequence(t *testing.T) {
	// The published first outputs for the zero seed.
	g, err := New(make([]byte, 8))
	require.NoError(t, err)

	require.Equal(t, uint64(0xe220a8397b1dcdaf), g.Next())
	require.Equal(t, uint64(0x6e789e6aa1b965f4), g.Next())
}

func TestFillStreamsAgree(t *testing.T) {
	// Fill64 must replay the same stream as a generator seeded with the
	// same value, and Fill32 keeps the high halves of that stream.
	var words [16]uint64
	Fill64(42, words[:])

	g := &SplitMix64{state: 42}
	for i, w := range words {
		require.Equal(t, g.Next(), w, "word %d", i)
	}

	var words32 [16]uint32
	Fill32(42, words32[:])
	for i, w := range words32 {
		require.Equal(t, uint32(words[i]>>32), w, "word %d", i)
	}
}

func BenchmarkSplitMix64(b *testing.B) {
	generator.BenchmarkGenerator(b, "splitmix64", []byte{1, 2, 3, 4, 5, 6, 7, 8})
}
