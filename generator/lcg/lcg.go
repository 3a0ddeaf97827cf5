// Package lcg implements multiplicative and mixed linear congruential
// generators over 64-bit and 128-bit state words.
package lcg

import (
	"math/bits"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

// Knuth's MMIX constants.
const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
)

// LCG64 is a mixed linear congruential generator over a 64-bit word:
// state = state*multiplier + increment, with wraparound as the modulus.
// The output is the new state with no further mixing, so the low bits
// have short periods; prefer the permuted variants in package pcg when
// output quality matters.
type LCG64 struct {
	state uint64
}

// New returns an LCG64 seeded with the first 8 bytes of seed.
func New(seed []byte) (*LCG64, error) {
	g := &LCG64{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *LCG64) Width() bitgen.Width { return bitgen.Width64 }

// Next applies the congruential step and returns the new state.
func (g *LCG64) Next() uint64 {
	g.state = g.state*multiplier + increment
	return g.state
}

// SeedSize returns the minimum seed length in bytes.
func (g *LCG64) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes.
func (g *LCG64) StateSize() int { return 8 }

// Seed derives the state from seed. Every 8-byte seed is valid.
func (g *LCG64) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	g.state = v
	return nil
}

// State returns the big-endian encoding of the state word.
func (g *LCG64) State() ([]byte, error) {
	buf := make([]byte, 8)
	wordpack.PutUint64(buf, g.state)
	return buf, nil
}

// SetState restores a state previously obtained from State.
func (g *LCG64) SetState(state []byte) error {
	v, err := wordpack.Uint64(state)
	if err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	g.state = v
	return nil
}

// Lehmer128 is a multiplicative congruential generator over a 128-bit
// state word. Each step multiplies the state by a fixed 64-bit constant
// modulo 2^128 and emits the high 64 bits. The state must be odd; Seed
// forces the low bit.
type Lehmer128 struct {
	hi, lo uint64
}

const lehmerMultiplier = 0xda942042e4dd58b5

// NewLehmer returns a Lehmer128 seeded with the first 16 bytes of seed.
func NewLehmer(seed []byte) (*Lehmer128, error) {
	g := &Lehmer128{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Lehmer128) Width() bitgen.Width { return bitgen.Width64 }

// Next multiplies the 128-bit state and returns its high word.
func (g *Lehmer128) Next() uint64 {
	carry, lo := bits.Mul64(g.lo, lehmerMultiplier)
	g.hi = g.hi*lehmerMultiplier + carry
	g.lo = lo
	return g.hi
}

// SeedSize returns the minimum seed length in bytes.
func (g *Lehmer128) SeedSize() int { return 16 }

// StateSize returns the encoded state length in bytes.
func (g *Lehmer128) StateSize() int { return 16 }

// Seed derives the state from seed, forcing it odd.
func (g *Lehmer128) Seed(seed []byte) error {
	if err := bitgen.CheckSeed(seed, g.SeedSize()); err != nil {
		return err
	}
	g.hi, _ = wordpack.Uint64(seed)
	g.lo, _ = wordpack.Uint64(seed[8:])
	g.lo |= 1
	return nil
}

// State returns the big-endian encoding of the state, high word first.
func (g *Lehmer128) State() ([]byte, error) {
	buf := make([]byte, 0, 16)
	buf = wordpack.Words64ToBytes(buf, []uint64{g.hi, g.lo})
	return buf, nil
}

// SetState restores a state previously obtained from State. An even
// state is outside the multiplicative group and is rejected.
func (g *Lehmer128) SetState(state []byte) error {
	if err := bitgen.CheckState(state, g.StateSize()); err != nil {
		return err
	}
	var words [2]uint64
	wordpack.BytesToWords64(words[:], state)
	if words[1]&1 == 0 {
		return bitgen.ArgumentError("lcg: lehmer state must be odd")
	}
	g.hi, g.lo = words[0], words[1]
	return nil
}

type driver struct{}

func (driver) New(seed []byte) (bitgen.Generator, error) { return New(seed) }
func (driver) SeedSize() int                             { return 8 }

type lehmerDriver struct{}

func (lehmerDriver) New(seed []byte) (bitgen.Generator, error) { return NewLehmer(seed) }
func (lehmerDriver) SeedSize() int                             { return 16 }

func init() {
	generator.Register("lcg64", driver{})
	generator.Register("lehmer128", lehmerDriver{})
}
