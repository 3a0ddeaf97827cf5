// Package splitmix implements the SplitMix64 generator: a 64-bit
// counter advanced by the golden-gamma increment, finalized by a
// two-round multiply-xorshift mix. Other families use it to expand
// short seeds into large state arrays.
package splitmix

import (
	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

const (
	gamma = 0x9e3779b97f4a7c15
	mulA  = 0xbf58476d1ce4e5b9
	mulB  = 0x94d049bb133111eb
)

// Mix applies the SplitMix64 output finalizer to z.
func Mix(z uint64) uint64 {
	z = (z ^ z>>30) * mulA
	z = (z ^ z>>27) * mulB
	return z ^ z>>31
}

// Fill64 expands seed into words using a SplitMix64 stream.
func Fill64(seed uint64, words []uint64) {
	for i := range words {
		seed += gamma
		words[i] = Mix(seed)
	}
}

// Fill32 expands seed into words using a SplitMix64 stream, taking the
// high half of each 64-bit draw.
func Fill32(seed uint64, words []uint32) {
	for i := range words {
		seed += gamma
		words[i] = uint32(Mix(seed) >> 32)
	}
}

// SplitMix64 holds the counter state of a SplitMix64 generator.
type SplitMix64 struct {
	state uint64
}

// New returns a SplitMix64 seeded with the first 8 bytes of seed.
func New(seed []byte) (*SplitMix64, error) {
	g := &SplitMix64{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *SplitMix64) Width() bitgen.Width { return bitgen.Width64 }

// Next advances the counter and returns the mixed output.
func (g *SplitMix64) Next() uint64 {
	g.state += gamma
	return Mix(g.state)
}

// SeedSize returns the minimum seed length in bytes.
func (g *SplitMix64) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes.
func (g *SplitMix64) StateSize() int { return 8 }

// Seed derives the state from seed. Every 8-byte seed is valid.
func (g *SplitMix64) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	g.state = v
	return nil
}

// State returns the big-endian encoding of the counter.
func (g *SplitMix64) State() ([]byte, error) {
	buf := make([]byte, 8)
	wordpack.PutUint64(buf, g.state)
	return buf, nil
}

// SetState restores a state previously obtained from State.
func (g *SplitMix64) SetState(state []byte) error {
	v, err := wordpack.Uint64(state)
	if err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	g.state = v
	return nil
}

type driver struct{}

func (driver) New(seed []byte) (bitgen.Generator, error) { return New(seed) }
func (driver) SeedSize() int                             { return 8 }

func init() {
	generator.Register("splitmix64", driver{})
}
