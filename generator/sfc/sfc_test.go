package sfc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randforge/randforge/generator"
)

var sfcSeed = []byte{
	1, 2, 3, 4, 5, 6, 7, 8,
	9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24,
}

func TestDriver(t *testing.T) {
	generator.TestGenerator(t, "sfc64", sfcSeed)
}

func TestCounterBreaksShortCycles(t *testing.T) {
	// Even a degenerate all-zero seed must produce a live stream: the
	// counter word guarantees a minimum period.
	g, err := New(make([]byte, 24))
	require.NoError(t, err)

	seen := make(map[uint64]bool)
	for i := 0; i < 256; i++ {
		seen[g.Next()] = true
	}
	require.True(t, len(seen) > 128, "the output stream collapsed")
}

func BenchmarkSFC64(b *testing.B) {
	generator.BenchmarkGenerator(b, "sfc64", sfcSeed)
}
