package bbs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
)

var bbsSeed = []byte{1, 2, 3, 4, 5, 6, 7, 8}

func TestDriver(t *testing.T) {
	generator.TestGenerator(t, "bbs", bbsSeed)
}

func TestSingleBitOutput(t *testing.T) {
	g, err := New(bbsSeed)
	require.NoError(t, err)
	require.Equal(t, bitgen.Width1, g.Width())

	ones := 0
	for i := 0; i < 4096; i++ {
		v := g.Next()
		require.True(t, v == 0 || v == 1)
		if v == 1 {
			ones++
		}
	}
	// Parity bits of quadratic residues are balanced; allow wide slack.
	require.True(t, ones > 1024 && ones < 3072, "parity stream is badly biased: %d ones", ones)
}

func TestRejectDegenerateSeeds(t *testing.T) {
	// Zero and one are fixed points of modular squaring.
	_, err := New(make([]byte, 8))
	require.Error(t, err)

	one := make([]byte, 8)
	one[7] = 1
	_, err = New(one)
	require.Error(t, err)
}

func TestRejectUnreducedState(t *testing.T) {
	g, err := New(bbsSeed)
	require.NoError(t, err)

	// All-ones exceeds the 71-bit modulus.
	state := make([]byte, 16)
	for i := range state {
		state[i] = 0xff
	}
	require.Error(t, g.SetState(state))
}

func BenchmarkBBS(b *testing.B) {
	generator.BenchmarkGenerator(b, "bbs", bbsSeed)
}
