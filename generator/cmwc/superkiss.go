package cmwc

import (
	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/generator/splitmix"
	"github.com/randforge/randforge/pkg/wordpack"
)

const (
	qSize        = 20632
	skCarryInit  = 36243678541
	skCngInit    = 12367890123456
	skXorshiftIn = 521288629546311
	skCngMul     = 6906969069
)

// SuperKISS64 sums three independent streams per draw: a batch-refilled
// multiply-with-carry buffer, a linear congruential stream and a
// xorshift stream.
type SuperKISS64 struct {
	q      []uint64
	carry  uint64
	cng    uint64
	xs     uint64
	cursor int
}

// NewSuperKISS returns a SuperKISS64 seeded with the first 8 bytes of
// seed.
func NewSuperKISS(seed []byte) (*SuperKISS64, error) {
	g := &SuperKISS64{q: make([]uint64, qSize)}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *SuperKISS64) Width() bitgen.Width { return bitgen.Width64 }

// refill regenerates the whole MWC buffer, propagating the carry
// through every word, and resets the cursor past the first element.
func (g *SuperKISS64) refill() uint64 {
	for i := range g.q {
		h := g.carry & 1
		z := (g.q[i] << 41 >> 1) + (g.q[i] >> 23 >> 1) + (g.carry >> 1)
		g.carry = (g.q[i] >> 23) + (g.q[i] >> 41) + (z >> 63)
		g.q[i] = ^((z << 1) + h)
	}
	g.cursor = 1
	return g.q[0]
}

// Next combines the three component streams.
func (g *SuperKISS64) Next() uint64 {
	var s uint64
	if g.cursor < qSize {
		s = g.q[g.cursor]
		g.cursor++
	} else {
		s = g.refill()
	}
	g.cng = skCngMul*g.cng + 123
	g.xs ^= g.xs << 13
	g.xs ^= g.xs >> 17
	g.xs ^= g.xs << 43
	return s + g.cng + g.xs
}

// SeedSize returns the minimum seed length in bytes.
func (g *SuperKISS64) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes, including the
// cursor and carry prefix and the two combination stream words.
func (g *SuperKISS64) StateSize() int { return 4 + 8 + 8*(2+qSize) }

// Seed derives the three streams from seed and fills the MWC buffer
// from their combination, the way the original seeds its buffer.
func (g *SuperKISS64) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	g.carry = skCarryInit
	g.cng = skCngInit + v
	g.xs = skXorshiftIn ^ splitmix.Mix(v)
	if g.xs == 0 {
		g.xs = skXorshiftIn
	}
	for i := range g.q {
		g.cng = skCngMul*g.cng + 123
		g.xs ^= g.xs << 13
		g.xs ^= g.xs >> 17
		g.xs ^= g.xs << 43
		g.q[i] = g.cng + g.xs
	}
	g.cursor = qSize
	return nil
}

// State returns the cursor and carry followed by the congruential and
// xorshift words and the big-endian MWC buffer.
func (g *SuperKISS64) State() ([]byte, error) {
	buf := make([]byte, 12, g.StateSize())
	wordpack.PutUint32(buf, uint32(g.cursor))
	wordpack.PutUint64(buf[4:], g.carry)
	buf = wordpack.Words64ToBytes(buf, []uint64{g.cng, g.xs})
	return wordpack.Words64ToBytes(buf, g.q), nil
}

// SetState restores a state previously obtained from State.
func (g *SuperKISS64) SetState(state []byte) error {
	if err := bitgen.CheckState(state, g.StateSize()); err != nil {
		return err
	}
	cursor, _ := wordpack.Uint32(state)
	if int(cursor) > qSize {
		return bitgen.ArgumentError("cmwc: cursor outside the buffer")
	}
	var head [2]uint64
	wordpack.BytesToWords64(head[:], state[12:])
	if head[1] == 0 {
		return bitgen.ArgumentError("cmwc: xorshift word must not be zero")
	}
	carry, _ := wordpack.Uint64(state[4:])
	wordpack.BytesToWords64(g.q, state[28:])
	g.cursor = int(cursor)
	g.carry = carry
	g.cng = head[0]
	g.xs = head[1]
	return nil
}

type superKISSDriver struct{}

func (superKISSDriver) New(seed []byte) (bitgen.Generator, error) { return NewSuperKISS(seed) }
func (superKISSDriver) SeedSize() int                             { return 8 }

func init() {
	generator.Register("superkiss64", superKISSDriver{})
}
