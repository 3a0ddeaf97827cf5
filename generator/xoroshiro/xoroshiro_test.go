package xoroshiro

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randforge/randforge/generator"
)

func testSeed(n int) []byte {
	seed := make([]byte, n)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}

func TestDrivers(t *testing.T) {
	table := []struct {
		name     string
		seedSize int
	}{
		{"xoroshiro128plus", 16},
		{"xoroshiro128starstar", 16},
		{"xoshiro256plus", 32},
		{"xoshiro256starstar", 32},
		{"xoshiro512starstar", 64},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			generator.TestGenerator(t, tt.name, testSeed(tt.seedSize))
		})
	}
}

func TestRejectZeroSeed(t *testing.T) {
	names := []string{"xoroshiro128plus", "xoroshiro128starstar", "xoshiro256plus", "xoshiro256starstar", "xoshiro512starstar"}
	for _, name := range names {
		size, err := generator.SeedSize(name)
		require.NoError(t, err)

		_, err = generator.New(name, make([]byte, size))
		require.Error(t, err, name)
	}
}

func TestVariantsDiverge(t *testing.T) {
	// The plus and star-star scramblers read the same state update, so
	// their outputs must differ while their states stay in lockstep.
	plus, err := New256Plus(testSeed(32))
	require.NoError(t, err)
	star, err := New256StarStar(testSeed(32))
	require.NoError(t, err)

	differs := false
	for i := 0; i < 64; i++ {
		if plus.Next() != star.Next() {
			differs = true
		}
	}
	require.True(t, differs)

	plusState, err := plus.State()
	require.NoError(t, err)
	starState, err := star.State()
	require.NoError(t, err)
	require.Equal(t, plusState, starState, "the scrambler must not affect the state walk")
}

func TestJumpMatchesSplit(t *testing.T) {
	// Split is defined as copy-then-jump, so a manual copy and jump must
	// land on the same stream.
	g, err := New256StarStar(testSeed(32))
	require.NoError(t, err)

	split := g.Split()

	manual, err := New256StarStar(testSeed(32))
	require.NoError(t, err)
	manual.Jump()

	for i := 0; i < 128; i++ {
		require.Equal(t, manual.Next(), split.Next())
	}
}

func TestRepeatedSplitsAreDisjointStarts(t *testing.T) {
	g, err := New128Plus(testSeed(16))
	require.NoError(t, err)

	seen := make(map[string]bool)
	state, err := g.State()
	require.NoError(t, err)
	seen[string(state)] = true

	for i := 0; i < 8; i++ {
		next := g.Split().(*Xoroshiro128)
		state, err := next.State()
		require.NoError(t, err)
		require.False(t, seen[string(state)], "split %d landed on a known state", i)
		seen[string(state)] = true
		g = next
	}
}

func BenchmarkXoroshiro128Plus(b *testing.B) {
	generator.BenchmarkGenerator(b, "xoroshiro128plus", testSeed(16))
}

func BenchmarkXoshiro256StarStar(b *testing.B) {
	generator.BenchmarkGenerator(b, "xoshiro256starstar", testSeed(32))
}
