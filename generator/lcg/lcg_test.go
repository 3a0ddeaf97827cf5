package lcg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

func TestDrivers(t *testing.T) {
	seed := make([]byte, 16)
	for i := range seed {
		seed[i] = byte(i + 1)
	}

	t.Run("lcg64", func(t *testing.T) { generator.TestGenerator(t, "lcg64", seed[:8]) })
	t.Run("lehmer128", func(t *testing.T) { generator.TestGenerator(t, "lehmer128", seed) })
}

func TestLCG64Step(t *testing.T) {
	// From state s, the first output is s*multiplier + increment.
	seed := make([]byte, 8)
	wordpack.PutUint64(seed, 1)

	g, err := New(seed)
	require.NoError(t, err)
	require.Equal(t, uint64(multiplier)+increment, g.Next())
}

func TestLehmerForcesOddState(t *testing.T) {
	// An even seed is accepted and its low bit forced; an even state is
	// rejected because it leaves the multiplicative group.
	g, err := NewLehmer(make([]byte, 16))
	require.NoError(t, err)

	state, err := g.State()
	require.NoError(t, err)
	require.Equal(t, byte(1), state[15]&1)

	require.Error(t, g.SetState(make([]byte, 16)))
}

func BenchmarkLCG64(b *testing.B) {
	generator.BenchmarkGenerator(b, "lcg64", []byte{1, 2, 3, 4, 5, 6, 7, 8})
}

func BenchmarkLehmer128(b *testing.B) {
	seed := make([]byte, 16)
	seed[15] = 1
	generator.BenchmarkGenerator(b, "lehmer128", seed)
}
