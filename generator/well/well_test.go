package well

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
)

var wellSeed = []byte{1, 2, 3, 4, 5, 6, 7, 8}

func TestDrivers(t *testing.T) {
	names := []string{"well512a", "well1024a", "well19937a", "well19937c", "well44497a", "well44497b"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			generator.TestGenerator(t, name, wellSeed)
		})
	}
}

func TestVariantsDiffer(t *testing.T) {
	// Each variant must walk its own stream from a common seed.
	names := []string{"well512a", "well1024a", "well19937a", "well44497a"}

	streams := make(map[string][]uint64, len(names))
	for _, name := range names {
		g, err := generator.New(name, wellSeed)
		require.NoError(t, err)

		out := make([]uint64, 32)
		for i := range out {
			out[i] = g.Next()
		}
		streams[name] = out
	}

	for i, a := range names {
		for _, b := range names[i+1:] {
			require.NotEqual(t, streams[a], streams[b], "%s and %s emitted the same stream", a, b)
		}
	}
}

func TestTemperedVariantSharesStateWalk(t *testing.T) {
	// The c variants add a Matsumoto-Kurita tempering step on output
	// only, so the a and c instances stay in state lockstep.
	a, err := New19937a(wellSeed)
	require.NoError(t, err)
	c, err := New19937c(wellSeed)
	require.NoError(t, err)

	differs := false
	for i := 0; i < 64; i++ {
		if a.Next() != c.Next() {
			differs = true
		}
	}
	require.True(t, differs, "tempering must change the outputs")

	aState, err := a.State()
	require.NoError(t, err)
	cState, err := c.State()
	require.NoError(t, err)
	require.Equal(t, aState, cState)
}

func TestWidth(t *testing.T) {
	g, err := New512a(wellSeed)
	require.NoError(t, err)
	require.Equal(t, bitgen.Width32, g.Width())
}

func BenchmarkWELL512a(b *testing.B) {
	generator.BenchmarkGenerator(b, "well512a", wellSeed)
}

func BenchmarkWELL19937a(b *testing.B) {
	generator.BenchmarkGenerator(b, "well19937a", wellSeed)
}
