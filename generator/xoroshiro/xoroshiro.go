// Package xoroshiro implements the xoroshiro128 and xoshiro256/512
// generators. Each step computes a rotate-and-combine output from the
// state words and then updates all words through a fixed graph of xors,
// shifts and rotates. The 128- and 256-bit variants carry precomputed
// jump polynomials and can split off non-overlapping streams.
package xoroshiro

import (
	"math/bits"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

var errZeroState = bitgen.ArgumentError("xoroshiro: state must not be all zero")

func allZero(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// jump advances a generator by the span encoded in poly. The generator
// is single-stepped once per polynomial bit position examined, set or
// not; only the accumulation into acc is conditional on the bit.
func jump(poly []uint64, state []uint64, step func()) {
	acc := make([]uint64, len(state))
	for _, p := range poly {
		for b := 0; b < 64; b++ {
			if p&(1<<uint(b)) != 0 {
				for i, s := range state {
					acc[i] ^= s
				}
			}
			step()
		}
	}
	copy(state, acc)
}

// Xoroshiro128 is the two-word xoroshiro generator with the 24/16/37
// shift triple. The output scrambler distinguishes the plus and
// star-star variants.
type Xoroshiro128 struct {
	state    [2]uint64
	starStar bool
}

// New128Plus returns a xoroshiro128+ seeded with the first 16 bytes of
// seed.
func New128Plus(seed []byte) (*Xoroshiro128, error) {
	g := &Xoroshiro128{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// New128StarStar returns a xoroshiro128** seeded with the first 16
// bytes of seed.
func New128StarStar(seed []byte) (*Xoroshiro128, error) {
	g := &Xoroshiro128{starStar: true}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Xoroshiro128) Width() bitgen.Width { return bitgen.Width64 }

// Next computes the scrambled output and rotates the state words.
func (g *Xoroshiro128) Next() uint64 {
	s0, s1 := g.state[0], g.state[1]

	var result uint64
	if g.starStar {
		result = bits.RotateLeft64(s0*5, 7) * 9
	} else {
		result = s0 + s1
	}

	s1 ^= s0
	g.state[0] = bits.RotateLeft64(s0, 24) ^ s1 ^ s1<<16
	g.state[1] = bits.RotateLeft64(s1, 37)

	return result
}

// SeedSize returns the minimum seed length in bytes.
func (g *Xoroshiro128) SeedSize() int { return 16 }

// StateSize returns the encoded state length in bytes.
func (g *Xoroshiro128) StateSize() int { return 16 }

// Seed derives the state from seed. The all-zero seed is rejected.
func (g *Xoroshiro128) Seed(seed []byte) error {
	if err := bitgen.CheckSeed(seed, g.SeedSize()); err != nil {
		return err
	}
	return g.SetState(seed[:g.StateSize()])
}

// State returns the big-endian encoding of the two state words.
func (g *Xoroshiro128) State() ([]byte, error) {
	return wordpack.Words64ToBytes(make([]byte, 0, 16), g.state[:]), nil
}

// SetState restores a state previously obtained from State.
func (g *Xoroshiro128) SetState(state []byte) error {
	var words [2]uint64
	if err := wordpack.BytesToWords64(words[:], state); err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if allZero(words[:]) {
		return errZeroState
	}
	g.state = words
	return nil
}

var jump128 = []uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}

// Jump advances the generator by 2^64 steps.
func (g *Xoroshiro128) Jump() {
	jump(jump128, g.state[:], func() { g.Next() })
}

// Split returns a copy jumped 2^64 steps ahead; the original is not
// advanced.
func (g *Xoroshiro128) Split() bitgen.Generator {
	clone := *g
	clone.Jump()
	return &clone
}

// Xoshiro256 is the four-word xoshiro generator. The output scrambler
// distinguishes the plus and star-star variants.
type Xoshiro256 struct {
	state    [4]uint64
	starStar bool
}

// New256Plus returns a xoshiro256+ seeded with the first 32 bytes of
// seed.
func New256Plus(seed []byte) (*Xoshiro256, error) {
	g := &Xoshiro256{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// New256StarStar returns a xoshiro256** seeded with the first 32 bytes
// of seed.
func New256StarStar(seed []byte) (*Xoshiro256, error) {
	g := &Xoshiro256{starStar: true}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Xoshiro256) Width() bitgen.Width { return bitgen.Width64 }

// Next computes the scrambled output and applies the xor graph.
func (g *Xoshiro256) Next() uint64 {
	var result uint64
	if g.starStar {
		result = bits.RotateLeft64(g.state[1]*5, 7) * 9
	} else {
		result = g.state[0] + g.state[3]
	}

	t := g.state[1] << 17

	g.state[2] ^= g.state[0]
	g.state[3] ^= g.state[1]
	g.state[1] ^= g.state[2]
	g.state[0] ^= g.state[3]

	g.state[2] ^= t
	g.state[3] = bits.RotateLeft64(g.state[3], 45)

	return result
}

// SeedSize returns the minimum seed length in bytes.
func (g *Xoshiro256) SeedSize() int { return 32 }

// StateSize returns the encoded state length in bytes.
func (g *Xoshiro256) StateSize() int { return 32 }

// Seed derives the state from seed. The all-zero seed is rejected.
func (g *Xoshiro256) Seed(seed []byte) error {
	if err := bitgen.CheckSeed(seed, g.SeedSize()); err != nil {
		return err
	}
	return g.SetState(seed[:g.StateSize()])
}

// State returns the big-endian encoding of the four state words.
func (g *Xoshiro256) State() ([]byte, error) {
	return wordpack.Words64ToBytes(make([]byte, 0, 32), g.state[:]), nil
}

// SetState restores a state previously obtained from State.
func (g *Xoshiro256) SetState(state []byte) error {
	var words [4]uint64
	if err := wordpack.BytesToWords64(words[:], state); err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if allZero(words[:]) {
		return errZeroState
	}
	g.state = words
	return nil
}

var jump256 = []uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}

// Jump advances the generator by 2^128 steps.
func (g *Xoshiro256) Jump() {
	jump(jump256, g.state[:], func() { g.Next() })
}

// Split returns a copy jumped 2^128 steps ahead; the original is not
// advanced.
func (g *Xoshiro256) Split() bitgen.Generator {
	clone := *g
	clone.Jump()
	return &clone
}

// Xoshiro512StarStar is the eight-word xoshiro generator with the
// star-star output scrambler.
type Xoshiro512StarStar struct {
	state [8]uint64
}

// New512StarStar returns a xoshiro512** seeded with the first 64 bytes
// of seed.
func New512StarStar(seed []byte) (*Xoshiro512StarStar, error) {
	g := &Xoshiro512StarStar{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Xoshiro512StarStar) Width() bitgen.Width { return bitgen.Width64 }

// Next computes the scrambled output and applies the xor graph.
func (g *Xoshiro512StarStar) Next() uint64 {
	result := bits.RotateLeft64(g.state[1]*5, 7) * 9

	t := g.state[1] << 11

	g.state[2] ^= g.state[0]
	g.state[5] ^= g.state[1]
	g.state[1] ^= g.state[2]
	g.state[7] ^= g.state[3]
	g.state[3] ^= g.state[4]
	g.state[4] ^= g.state[5]
	g.state[0] ^= g.state[6]
	g.state[6] ^= g.state[7]

	g.state[6] ^= t
	g.state[7] = bits.RotateLeft64(g.state[7], 21)

	return result
}

// SeedSize returns the minimum seed length in bytes.
func (g *Xoshiro512StarStar) SeedSize() int { return 64 }

// StateSize returns the encoded state length in bytes.
func (g *Xoshiro512StarStar) StateSize() int { return 64 }

// Seed derives the state from seed. The all-zero seed is rejected.
func (g *Xoshiro512StarStar) Seed(seed []byte) error {
	if err := bitgen.CheckSeed(seed, g.SeedSize()); err != nil {
		return err
	}
	return g.SetState(seed[:g.StateSize()])
}

// State returns the big-endian encoding of the eight state words.
func (g *Xoshiro512StarStar) State() ([]byte, error) {
	return wordpack.Words64ToBytes(make([]byte, 0, 64), g.state[:]), nil
}

// SetState restores a state previously obtained from State.
func (g *Xoshiro512StarStar) SetState(state []byte) error {
	var words [8]uint64
	if err := wordpack.BytesToWords64(words[:], state); err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if allZero(words[:]) {
		return errZeroState
	}
	g.state = words
	return nil
}

type driver struct {
	seedSize int
	new      func([]byte) (bitgen.Generator, error)
}

func (d driver) New(seed []byte) (bitgen.Generator, error) { return d.new(seed) }
func (d driver) SeedSize() int                             { return d.seedSize }

func init() {
	generator.Register("xoroshiro128plus", driver{16, func(s []byte) (bitgen.Generator, error) { return New128Plus(s) }})
	generator.Register("xoroshiro128starstar", driver{16, func(s []byte) (bitgen.Generator, error) { return New128StarStar(s) }})
	generator.Register("xoshiro256plus", driver{32, func(s []byte) (bitgen.Generator, error) { return New256Plus(s) }})
	generator.Register("xoshiro256starstar", driver{32, func(s []byte) (bitgen.Generator, error) { return New256StarStar(s) }})
	generator.Register("xoshiro512starstar", driver{64, func(s []byte) (bitgen.Generator, error) { return New512StarStar(s) }})
}
