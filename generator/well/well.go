// Package well implements the WELL family of generators (512a, 1024a,
// 19937a/c, 44497a/b). Every variant keeps R 32-bit words and a cursor;
// each step combines three intermediate values computed from fixed
// cursor-relative offsets, rewrites two state words, retreats the
// cursor, and optionally tempers the emitted word with two xor-masks.
package well

import (
	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/generator/splitmix"
	"github.com/randforge/randforge/pkg/wordpack"
)

var errZeroState = bitgen.ArgumentError("well: state must not be all zero")

// variant carries the per-variant constants. maskU is zero for the
// variants whose state occupies full words; otherwise z0 splits across
// the two oldest words. transition computes the two words written per
// step from the cursor-relative reads.
type variant struct {
	r, m1, m2, m3    int
	maskU            uint32
	transition       func(z0, v0, vm1, vm2, vm3 uint32) (newV1, newV0 uint32)
	temperB, temperC uint32
}

var well512a = &variant{
	r: 16, m1: 13, m2: 9, m3: 5,
	transition: func(z0, v0, vm1, vm2, vm3 uint32) (uint32, uint32) {
		z1 := v0 ^ v0<<16 ^ vm1 ^ vm1<<15
		z2 := vm2 ^ vm2>>11
		newV1 := z1 ^ z2
		newV0 := z0 ^ z0<<2 ^ z1 ^ z1<<18 ^ z2<<28 ^ newV1 ^ newV1<<5&0xda442d24
		return newV1, newV0
	},
}

var well1024a = &variant{
	r: 32, m1: 3, m2: 24, m3: 10,
	transition: func(z0, v0, vm1, vm2, vm3 uint32) (uint32, uint32) {
		z1 := v0 ^ vm1 ^ vm1>>8
		z2 := vm2 ^ vm2<<19 ^ vm3 ^ vm3<<14
		newV1 := z1 ^ z2
		newV0 := z0 ^ z0<<11 ^ z1 ^ z1<<7 ^ z2 ^ z2<<13
		return newV1, newV0
	},
}

var well19937 = &variant{
	r: 624, m1: 70, m2: 179, m3: 449,
	maskU:   0x7fffffff,
	temperB: 0xe46e1700,
	temperC: 0x9b868000,
	transition: func(z0, v0, vm1, vm2, vm3 uint32) (uint32, uint32) {
		z1 := v0 ^ v0<<25 ^ vm1 ^ vm1>>27
		z2 := vm2>>9 ^ vm3 ^ vm3>>1
		newV1 := z1 ^ z2
		newV0 := z0 ^ z1 ^ z1<<9 ^ z2 ^ z2<<21 ^ newV1 ^ newV1>>21
		return newV1, newV0
	},
}

func mat5(r uint, a, ds, dt, v uint32) uint32 {
	t := (v<<r ^ v>>(32-r)) & ds
	if v&dt != 0 {
		t ^= a
	}
	return t
}

var well44497 = &variant{
	r: 1391, m1: 23, m2: 481, m3: 229,
	maskU:   0x00007fff,
	temperB: 0x93dd1400,
	temperC: 0xfa118000,
	transition: func(z0, v0, vm1, vm2, vm3 uint32) (uint32, uint32) {
		z1 := v0 ^ v0<<24 ^ vm1 ^ vm1>>30
		z2 := vm2 ^ vm2<<10 ^ vm3<<26
		newV1 := z1 ^ z2
		newV0 := z0 ^ z1 ^ z1>>20 ^ mat5(9, 0xb729fcec, 0xfbffffff, 0x00020000, z2) ^ newV1
		return newV1, newV0
	},
}

// WELL is one instance of a WELL variant.
type WELL struct {
	v      *variant
	words  []uint32
	cursor int
	temper bool
}

func newWELL(v *variant, temper bool, seed []byte) (*WELL, error) {
	g := &WELL{v: v, words: make([]uint32, v.r), temper: temper}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// New512a returns a WELL512a seeded with the first 8 bytes of seed.
func New512a(seed []byte) (*WELL, error) { return newWELL(well512a, false, seed) }

// New1024a returns a WELL1024a seeded with the first 8 bytes of seed.
func New1024a(seed []byte) (*WELL, error) { return newWELL(well1024a, false, seed) }

// New19937a returns a WELL19937a seeded with the first 8 bytes of seed.
func New19937a(seed []byte) (*WELL, error) { return newWELL(well19937, false, seed) }

// New19937c returns a WELL19937c: the a-variant with Matsumoto-style
// output tempering.
func New19937c(seed []byte) (*WELL, error) { return newWELL(well19937, true, seed) }

// New44497a returns a WELL44497a seeded with the first 8 bytes of seed.
func New44497a(seed []byte) (*WELL, error) { return newWELL(well44497, false, seed) }

// New44497b returns a WELL44497b: the a-variant with output tempering.
func New44497b(seed []byte) (*WELL, error) { return newWELL(well44497, true, seed) }

// Width returns the natural width of the generator.
func (g *WELL) Width() bitgen.Width { return bitgen.Width32 }

// Next applies one WELL step and emits the refreshed oldest word.
func (g *WELL) Next() uint64 {
	v := g.v
	r := v.r
	i := g.cursor

	vrm1 := g.words[(i+r-1)%r]
	z0 := vrm1
	if v.maskU != 0 {
		z0 = vrm1&^v.maskU | g.words[(i+r-2)%r]&v.maskU
	}

	newV1, newV0 := v.transition(
		z0,
		g.words[i],
		g.words[(i+v.m1)%r],
		g.words[(i+v.m2)%r],
		g.words[(i+v.m3)%r],
	)

	g.words[i] = newV1
	g.cursor = (i + r - 1) % r
	g.words[g.cursor] = newV0

	y := newV0
	if g.temper {
		y ^= y << 7 & v.temperB
		y ^= y << 15 & v.temperC
	}
	return uint64(y)
}

// SeedSize returns the minimum seed length in bytes.
func (g *WELL) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes, including the
// cursor prefix.
func (g *WELL) StateSize() int { return 4 + 4*g.v.r }

// Seed expands an 8-byte seed into the word array through a SplitMix64
// stream and resets the cursor. The expansion is lossy by design: the
// state is far larger than the seed.
func (g *WELL) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	splitmix.Fill32(v, g.words)
	g.cursor = 0
	return nil
}

// State returns the cursor followed by the big-endian word array.
func (g *WELL) State() ([]byte, error) {
	buf := make([]byte, 4, g.StateSize())
	wordpack.PutUint32(buf, uint32(g.cursor))
	return wordpack.Words32ToBytes(buf, g.words), nil
}

// SetState restores a state previously obtained from State.
func (g *WELL) SetState(state []byte) error {
	if err := bitgen.CheckState(state, g.StateSize()); err != nil {
		return err
	}
	cursor, _ := wordpack.Uint32(state)
	if int(cursor) >= g.v.r {
		return bitgen.ArgumentError("well: cursor outside the state array")
	}
	words := make([]uint32, g.v.r)
	wordpack.BytesToWords32(words, state[4:])

	zero := true
	for _, w := range words {
		if w != 0 {
			zero = false
			break
		}
	}
	if zero {
		return errZeroState
	}

	copy(g.words, words)
	g.cursor = int(cursor)
	return nil
}

type driver struct {
	new func([]byte) (bitgen.Generator, error)
}

func (d driver) New(seed []byte) (bitgen.Generator, error) { return d.new(seed) }
func (d driver) SeedSize() int                             { return 8 }

func init() {
	generator.Register("well512a", driver{func(s []byte) (bitgen.Generator, error) { return New512a(s) }})
	generator.Register("well1024a", driver{func(s []byte) (bitgen.Generator, error) { return New1024a(s) }})
	generator.Register("well19937a", driver{func(s []byte) (bitgen.Generator, error) { return New19937a(s) }})
	generator.Register("well19937c", driver{func(s []byte) (bitgen.Generator, error) { return New19937c(s) }})
	generator.Register("well44497a", driver{func(s []byte) (bitgen.Generator, error) { return New44497a(s) }})
	generator.Register("well44497b", driver{func(s []byte) (bitgen.Generator, error) { return New44497b(s) }})
}
