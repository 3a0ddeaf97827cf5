package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randforge/randforge/bitgen"
)

// TestGenerator runs the generic bit-source contract checks against a
// registered driver. It is exported so that every algorithm family can
// run the same suite from its own test package.
func TestGenerator(t *testing.T, name string, seed []byte) {
	size, err := SeedSize(name)
	require.NoError(t, err, "driver must be registered")
	require.True(t, size > 0, "seed size must be positive")
	require.True(t, len(seed) >= size, "test seed must cover the seed size")

	testDeterminism(t, name, seed)
	testWidthContract(t, name, seed)
	testShortBuffers(t, name, seed, size)
	testStateRoundTrip(t, name, seed)
	testSplit(t, name, seed)
}

func testDeterminism(t *testing.T, name string, seed []byte) {
	g1, err := New(name, seed)
	require.NoError(t, err)
	g2, err := New(name, seed)
	require.NoError(t, err)

	for i := 0; i < 512; i++ {
		require.Equal(t, g1.Next(), g2.Next(), "equally seeded instances must emit the same sequence")
	}
}

func testWidthContract(t *testing.T, name string, seed []byte) {
	g, err := New(name, seed)
	require.NoError(t, err)

	w := g.Width()
	switch w {
	case bitgen.Width1, bitgen.Width8, bitgen.Width16, bitgen.Width32, bitgen.Width64:
	default:
		t.Fatalf("unsupported natural width %d", w)
	}

	for i := 0; i < 512; i++ {
		require.Zero(t, g.Next()&^w.Mask(), "bits above the natural width must be zero")
	}
}

func testShortBuffers(t *testing.T, name string, seed []byte, size int) {
	_, err := New(name, seed[:size-1])
	require.Error(t, err, "a short seed must be rejected")

	g, err := New(name, seed)
	require.NoError(t, err)
	require.Error(t, g.SetState(make([]byte, g.StateSize()-1)), "a short state must be rejected")
}

func testStateRoundTrip(t *testing.T, name string, seed []byte) {
	g1, err := New(name, seed)
	require.NoError(t, err)

	// Advance past any seed-derived warmup before capturing state.
	for i := 0; i < 1000; i++ {
		g1.Next()
	}

	state, err := g1.State()
	if err == bitgen.ErrUnsupported {
		t.Skipf("%s does not support state access", name)
	}
	require.NoError(t, err)
	require.Equal(t, g1.StateSize(), len(state), "encoded state must match the advertised size")

	g2, err := New(name, seed)
	require.NoError(t, err)
	require.NoError(t, g2.SetState(state))

	for i := 0; i < 1000; i++ {
		require.Equal(t, g1.Next(), g2.Next(), "a restored instance must continue the sequence")
	}
}

func testSplit(t *testing.T, name string, seed []byte) {
	g, err := New(name, seed)
	require.NoError(t, err)

	s, ok := g.(bitgen.Splitter)
	if !ok {
		return
	}

	before, err := g.State()
	require.NoError(t, err)

	split := s.Split()

	after, err := g.State()
	require.NoError(t, err)
	require.Equal(t, before, after, "split must not advance the original")

	splitState, err := split.State()
	require.NoError(t, err)
	require.NotEqual(t, before, splitState, "the split copy must jump to a different state")

	// The two streams must diverge immediately.
	diverged := false
	for i := 0; i < 64; i++ {
		if g.Next() != split.Next() {
			diverged = true
			break
		}
	}
	require.True(t, diverged, "split streams must not track each other")
}

// BenchmarkGenerator measures the raw primitive draw of a registered
// driver.
func BenchmarkGenerator(b *testing.B, name string, seed []byte) {
	g, err := New(name, seed)
	if err != nil {
		b.Fatal(err)
	}
	var v uint64
	for i := 0; i < b.N; i++ {
		v = g.Next()
	}
	_ = v
}
