// Package mersenne implements the Mersenne Twister generators MT19937
// and MT19937-64. Both are two-phase: a batch twist regenerates the
// whole word array once every N outputs, and a per-call tempering step
// mixes the next untwisted word before it is emitted.
package mersenne

import (
	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

const (
	n32         = 624
	m32         = 397
	matrixA32   = 0x9908b0df
	upperMask32 = 0x80000000
	lowerMask32 = 0x7fffffff
)

// MT19937 is the classic 32-bit Mersenne Twister.
type MT19937 struct {
	words  [n32]uint32
	cursor int
}

// New returns an MT19937 seeded with the first 4 bytes of seed.
func New(seed []byte) (*MT19937, error) {
	g := &MT19937{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *MT19937) Width() bitgen.Width { return bitgen.Width32 }

// twist regenerates the entire word array from the masked halves of
// consecutive words.
func (g *MT19937) twist() {
	var y uint32
	i := 0
	for ; i < n32-m32; i++ {
		y = g.words[i]&upperMask32 | g.words[i+1]&lowerMask32
		g.words[i] = g.words[i+m32] ^ y>>1 ^ -(y&1)&matrixA32
	}
	for ; i < n32-1; i++ {
		y = g.words[i]&upperMask32 | g.words[i+1]&lowerMask32
		g.words[i] = g.words[i+m32-n32] ^ y>>1 ^ -(y&1)&matrixA32
	}
	y = g.words[n32-1]&upperMask32 | g.words[0]&lowerMask32
	g.words[n32-1] = g.words[m32-1] ^ y>>1 ^ -(y&1)&matrixA32

	g.cursor = 0
}

// Next emits the tempered form of the next untwisted word, twisting
// first when the array is exhausted.
func (g *MT19937) Next() uint64 {
	if g.cursor == n32 {
		g.twist()
	}

	y := g.words[g.cursor]
	g.cursor++

	y ^= y >> 11
	y ^= y << 7 & 0x9d2c5680
	y ^= y << 15 & 0xefc60000
	y ^= y >> 18

	return uint64(y)
}

// SeedSize returns the minimum seed length in bytes.
func (g *MT19937) SeedSize() int { return 4 }

// StateSize returns the encoded state length in bytes, including the
// cursor prefix.
func (g *MT19937) StateSize() int { return 4 + 4*n32 }

// Seed expands a 32-bit seed into the word array with the standard
// Knuth-multiplier recurrence.
func (g *MT19937) Seed(seed []byte) error {
	v, err := wordpack.Uint32(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	g.words[0] = v
	for i := 1; i < n32; i++ {
		g.words[i] = 1812433253*(g.words[i-1]^g.words[i-1]>>30) + uint32(i)
	}
	g.cursor = n32
	return nil
}

// State returns the cursor followed by the big-endian word array.
func (g *MT19937) State() ([]byte, error) {
	buf := make([]byte, 4, g.StateSize())
	wordpack.PutUint32(buf, uint32(g.cursor))
	return wordpack.Words32ToBytes(buf, g.words[:]), nil
}

// SetState restores a state previously obtained from State.
func (g *MT19937) SetState(state []byte) error {
	if err := bitgen.CheckState(state, g.StateSize()); err != nil {
		return err
	}
	cursor, _ := wordpack.Uint32(state)
	if cursor > n32 {
		return bitgen.ArgumentError("mersenne: cursor outside [0, 624]")
	}
	wordpack.BytesToWords32(g.words[:], state[4:])
	g.cursor = int(cursor)
	return nil
}

const (
	n64         = 312
	m64         = 156
	matrixA64   = 0xb5026f5aa96619e9
	upperMask64 = 0xffffffff80000000
	lowerMask64 = 0x000000007fffffff
)

// MT19937_64 is the 64-bit Mersenne Twister.
type MT19937_64 struct {
	words  [n64]uint64
	cursor int
}

// New64 returns an MT19937-64 seeded with the first 8 bytes of seed.
func New64(seed []byte) (*MT19937_64, error) {
	g := &MT19937_64{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *MT19937_64) Width() bitgen.Width { return bitgen.Width64 }

func (g *MT19937_64) twist() {
	var y uint64
	i := 0
	for ; i < n64-m64; i++ {
		y = g.words[i]&upperMask64 | g.words[i+1]&lowerMask64
		g.words[i] = g.words[i+m64] ^ y>>1 ^ -(y&1)&matrixA64
	}
	for ; i < n64-1; i++ {
		y = g.words[i]&upperMask64 | g.words[i+1]&lowerMask64
		g.words[i] = g.words[i+m64-n64] ^ y>>1 ^ -(y&1)&matrixA64
	}
	y = g.words[n64-1]&upperMask64 | g.words[0]&lowerMask64
	g.words[n64-1] = g.words[m64-1] ^ y>>1 ^ -(y&1)&matrixA64

	g.cursor = 0
}

// Next emits the tempered form of the next untwisted word, twisting
// first when the array is exhausted.
func (g *MT19937_64) Next() uint64 {
	if g.cursor == n64 {
		g.twist()
	}

	y := g.words[g.cursor]
	g.cursor++

	y ^= y >> 29 & 0x5555555555555555
	y ^= y << 17 & 0x71d67fffeda60000
	y ^= y << 37 & 0xfff7eee000000000
	y ^= y >> 43

	return y
}

// SeedSize returns the minimum seed length in bytes.
func (g *MT19937_64) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes, including the
// cursor prefix.
func (g *MT19937_64) StateSize() int { return 4 + 8*n64 }

// Seed expands a 64-bit seed into the word array.
func (g *MT19937_64) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	g.words[0] = v
	for i := 1; i < n64; i++ {
		g.words[i] = 6364136223846793005*(g.words[i-1]^g.words[i-1]>>62) + uint64(i)
	}
	g.cursor = n64
	return nil
}

// State returns the cursor followed by the big-endian word array.
func (g *MT19937_64) State() ([]byte, error) {
	buf := make([]byte, 4, g.StateSize())
	wordpack.PutUint32(buf, uint32(g.cursor))
	return wordpack.Words64ToBytes(buf, g.words[:]), nil
}

// SetState restores a state previously obtained from State.
func (g *MT19937_64) SetState(state []byte) error {
	if err := bitgen.CheckState(state, g.StateSize()); err != nil {
		return err
	}
	cursor, _ := wordpack.Uint32(state)
	if cursor > n64 {
		return bitgen.ArgumentError("mersenne: cursor outside [0, 312]")
	}
	wordpack.BytesToWords64(g.words[:], state[4:])
	g.cursor = int(cursor)
	return nil
}

type driver struct {
	seedSize int
	new      func([]byte) (bitgen.Generator, error)
}

func (d driver) New(seed []byte) (bitgen.Generator, error) { return d.new(seed) }
func (d driver) SeedSize() int                             { return d.seedSize }

func init() {
	generator.Register("mt19937", driver{4, func(s []byte) (bitgen.Generator, error) { return New(s) }})
	generator.Register("mt19937_64", driver{8, func(s []byte) (bitgen.Generator, error) { return New64(s) }})
}
