// Package pcg implements the permuted congruential generators PCG32
// XSH-RR and XSH-RS: a 64-bit congruential step whose output is a
// 32-bit permutation of the pre-update state, with the permutation
// count taken from the state's own top bits.
package pcg

import (
	"math/bits"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

const multiplier = 6364136223846793005

// XSHRR is the xorshift-high, random-rotate variant over a mixed
// congruential step with a per-instance odd increment.
type XSHRR struct {
	state uint64
	inc   uint64
}

// NewXSHRR returns a PCG32 XSH-RR seeded with the first 16 bytes of
// seed: 8 bytes of initial state and 8 bytes selecting the stream.
func NewXSHRR(seed []byte) (*XSHRR, error) {
	g := &XSHRR{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *XSHRR) Width() bitgen.Width { return bitgen.Width32 }

// Next permutes the pre-update state and then advances the LCG. The
// rotation count comes from the old state's top five bits.
func (g *XSHRR) Next() uint64 {
	old := g.state
	g.state = old*multiplier + g.inc

	xorshifted := uint32((old>>18 ^ old) >> 27)
	rot := int(old >> 59)
	return uint64(bits.RotateLeft32(xorshifted, -rot))
}

// SeedSize returns the minimum seed length in bytes.
func (g *XSHRR) SeedSize() int { return 16 }

// StateSize returns the encoded state length in bytes.
func (g *XSHRR) StateSize() int { return 16 }

// Seed initializes the state and stream from seed. The stream word is
// forced odd, so seeds differing only in its low bit collide.
func (g *XSHRR) Seed(seed []byte) error {
	if err := bitgen.CheckSeed(seed, g.SeedSize()); err != nil {
		return err
	}
	state, _ := wordpack.Uint64(seed)
	seq, _ := wordpack.Uint64(seed[8:])

	g.inc = seq<<1 | 1
	g.state = (state+g.inc)*multiplier + g.inc
	return nil
}

// State returns the big-endian encoding of the state and increment.
func (g *XSHRR) State() ([]byte, error) {
	return wordpack.Words64ToBytes(make([]byte, 0, 16), []uint64{g.state, g.inc}), nil
}

// SetState restores a state previously obtained from State.
func (g *XSHRR) SetState(state []byte) error {
	var words [2]uint64
	if err := wordpack.BytesToWords64(words[:], state); err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if words[1]&1 == 0 {
		return bitgen.ArgumentError("pcg: increment must be odd")
	}
	g.state, g.inc = words[0], words[1]
	return nil
}

// XSHRS is the xorshift-high, random-shift variant over a purely
// multiplicative step with an odd state.
type XSHRS struct {
	state uint64
}

// NewXSHRS returns a PCG32 XSH-RS seeded with the first 8 bytes of
// seed.
func NewXSHRS(seed []byte) (*XSHRS, error) {
	g := &XSHRS{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *XSHRS) Width() bitgen.Width { return bitgen.Width32 }

// Next permutes the pre-update state and then advances the MCG. The
// shift count comes from the old state's top three bits.
func (g *XSHRS) Next() uint64 {
	old := g.state
	g.state = old * multiplier

	count := uint(old>>61) + 22
	return uint64(uint32((old ^ old>>22) >> count))
}

// SeedSize returns the minimum seed length in bytes.
func (g *XSHRS) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes.
func (g *XSHRS) StateSize() int { return 8 }

// Seed derives the state from seed, forcing it odd.
func (g *XSHRS) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	g.state = v | 1
	return nil
}

// State returns the big-endian encoding of the state word.
func (g *XSHRS) State() ([]byte, error) {
	buf := make([]byte, 8)
	wordpack.PutUint64(buf, g.state)
	return buf, nil
}

// SetState restores a state previously obtained from State. An even
// state is outside the multiplicative group and is rejected.
func (g *XSHRS) SetState(state []byte) error {
	v, err := wordpack.Uint64(state)
	if err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if v&1 == 0 {
		return bitgen.ArgumentError("pcg: state must be odd")
	}
	g.state = v
	return nil
}

type driver struct {
	seedSize int
	new      func([]byte) (bitgen.Generator, error)
}

func (d driver) New(seed []byte) (bitgen.Generator, error) { return d.new(seed) }
func (d driver) SeedSize() int                             { return d.seedSize }

func init() {
	generator.Register("pcg32", driver{16, func(s []byte) (bitgen.Generator, error) { return NewXSHRR(s) }})
	generator.Register("pcg32rs", driver{8, func(s []byte) (bitgen.Generator, error) { return NewXSHRS(s) }})
}
