package mathrand

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randforge/randforge/generator/splitmix"
)

var seed = []byte{1, 2, 3, 4, 5, 6, 7, 8}

func TestSourceMatchesGenerator(t *testing.T) {
	g, err := splitmix.New(seed)
	require.NoError(t, err)
	ref, err := splitmix.New(seed)
	require.NoError(t, err)

	src := NewSource(g)
	for i := 0; i < 512; i++ {
		require.Equal(t, ref.Next(), src.Uint64())
	}
}

func TestInt63NonNegative(t *testing.T) {
	g, err := splitmix.New(seed)
	require.NoError(t, err)

	src := NewSource(g)
	for i := 0; i < 512; i++ {
		require.True(t, src.Int63() >= 0)
	}
}

func TestSeedIsIgnored(t *testing.T) {
	g1, err := splitmix.New(seed)
	require.NoError(t, err)
	g2, err := splitmix.New(seed)
	require.NoError(t, err)

	src1 := NewSource(g1)
	src2 := NewSource(g2)

	src2.Seed(99)
	for i := 0; i < 512; i++ {
		require.Equal(t, src1.Uint64(), src2.Uint64(), "reseeding through math/rand must not disturb the stream")
	}
}

func TestRandIntegration(t *testing.T) {
	g, err := splitmix.New(seed)
	require.NoError(t, err)

	r := New(g)
	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		require.True(t, v >= 0 && v < 10)

		f := r.Float64()
		require.True(t, f >= 0 && f < 1)
	}

	p := r.Perm(8)
	require.Len(t, p, 8)
}
