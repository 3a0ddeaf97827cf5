// Package cmwc implements Marsaglia's complementary-multiply-with-carry
// generators: CMWC4096 and the SuperKISS64 combination generator, whose
// MWC component refills a large buffer in batch and is combined with a
// congruential and a xorshift stream.
package cmwc

import (
	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/generator/splitmix"
	"github.com/randforge/randforge/pkg/wordpack"
)

const (
	lag          = 4096
	mwcA         = 18782
	complement   = 0xfffffffe
	carryInitial = 362436
	// The carry must stay below the multiplier times the lag base; a
	// larger carry is not reachable from any valid state.
	carryLimit = 809430660
)

// CMWC4096 is a lag-4096 complementary multiply-with-carry generator.
type CMWC4096 struct {
	words  [lag]uint32
	carry  uint32
	cursor int
}

// New returns a CMWC4096 seeded with the first 8 bytes of seed.
func New(seed []byte) (*CMWC4096, error) {
	g := &CMWC4096{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *CMWC4096) Width() bitgen.Width { return bitgen.Width32 }

// Next advances the cursor, folds the carry into the lagged word and
// emits the complement. The explicit overflow correction keeps the
// carry consistent when the folded sum wraps.
func (g *CMWC4096) Next() uint64 {
	g.cursor = (g.cursor + 1) & (lag - 1)
	t := uint64(mwcA)*uint64(g.words[g.cursor]) + uint64(g.carry)
	g.carry = uint32(t >> 32)
	x := uint32(t) + g.carry
	if x < g.carry {
		x++
		g.carry++
	}
	g.words[g.cursor] = complement - x
	return uint64(g.words[g.cursor])
}

// SeedSize returns the minimum seed length in bytes.
func (g *CMWC4096) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes, including the
// cursor and carry prefix.
func (g *CMWC4096) StateSize() int { return 4 + 8 + 4*lag }

// Seed expands an 8-byte seed into the lag buffer through a SplitMix64
// stream and resets the carry and cursor.
func (g *CMWC4096) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	splitmix.Fill32(v, g.words[:])
	g.carry = carryInitial
	g.cursor = lag - 1
	return nil
}

// State returns the cursor and carry followed by the big-endian lag
// buffer.
func (g *CMWC4096) State() ([]byte, error) {
	buf := make([]byte, 12, g.StateSize())
	wordpack.PutUint32(buf, uint32(g.cursor))
	wordpack.PutUint64(buf[4:], uint64(g.carry))
	return wordpack.Words32ToBytes(buf, g.words[:]), nil
}

// SetState restores a state previously obtained from State.
func (g *CMWC4096) SetState(state []byte) error {
	if err := bitgen.CheckState(state, g.StateSize()); err != nil {
		return err
	}
	cursor, _ := wordpack.Uint32(state)
	if cursor >= lag {
		return bitgen.ArgumentError("cmwc: cursor outside the lag buffer")
	}
	carry, _ := wordpack.Uint64(state[4:])
	if carry >= carryLimit {
		return bitgen.ArgumentError("cmwc: carry outside the reachable range")
	}
	wordpack.BytesToWords32(g.words[:], state[12:])
	g.cursor = int(cursor)
	g.carry = uint32(carry)
	return nil
}

type driver struct{}

func (driver) New(seed []byte) (bitgen.Generator, error) { return New(seed) }
func (driver) SeedSize() int                             { return 8 }

func init() {
	generator.Register("cmwc4096", driver{})
}
