// Package sfc implements the SFC64 "small fast chaotic" generator: a
// three-word chaotic map combined with a 64-bit counter that guarantees
// a minimum period of 2^64.
package sfc

import (
	"math/bits"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

// SFC64 holds the three chaotic words and the counter.
type SFC64 struct {
	a, b, c uint64
	counter uint64
}

// New returns an SFC64 seeded with the first 24 bytes of seed.
func New(seed []byte) (*SFC64, error) {
	g := &SFC64{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *SFC64) Width() bitgen.Width { return bitgen.Width64 }

// Next advances the chaotic map and the counter.
func (g *SFC64) Next() uint64 {
	out := g.a + g.b + g.counter
	g.counter++
	g.a = g.b ^ g.b>>11
	g.b = g.c + g.c<<3
	g.c = bits.RotateLeft64(g.c, 24) + out
	return out
}

// SeedSize returns the minimum seed length in bytes.
func (g *SFC64) SeedSize() int { return 24 }

// StateSize returns the encoded state length in bytes.
func (g *SFC64) StateSize() int { return 32 }

// Seed fills the chaotic words from seed, resets the counter and runs
// the customary twelve warmup rounds. Every seed is valid.
func (g *SFC64) Seed(seed []byte) error {
	var words [3]uint64
	if err := wordpack.BytesToWords64(words[:], seed); err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	g.a, g.b, g.c = words[0], words[1], words[2]
	g.counter = 1
	for i := 0; i < 12; i++ {
		g.Next()
	}
	return nil
}

// State returns the big-endian encoding of the four state words.
func (g *SFC64) State() ([]byte, error) {
	return wordpack.Words64ToBytes(make([]byte, 0, 32), []uint64{g.a, g.b, g.c, g.counter}), nil
}

// SetState restores a state previously obtained from State.
func (g *SFC64) SetState(state []byte) error {
	var words [4]uint64
	if err := wordpack.BytesToWords64(words[:], state); err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	g.a, g.b, g.c, g.counter = words[0], words[1], words[2], words[3]
	return nil
}

type driver struct{}

func (driver) New(seed []byte) (bitgen.Generator, error) { return New(seed) }
func (driver) SeedSize() int                             { return 24 }

func init() {
	generator.Register("sfc64", driver{})
}
