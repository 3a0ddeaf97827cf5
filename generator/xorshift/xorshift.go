// Package xorshift implements the XORShift family of generators: the
// 64-bit star variant, Marsaglia's 128-bit generator, the 128-bit plus
// variant, the 1024-bit star variant, and Xorwow.
//
// All of them advance their state purely by xor-with-shift rounds; the
// star variants multiply the emitted word by an odd constant without
// feeding the product back, the plus variant adds two state words, and
// Xorwow adds a Weyl sequence. The all-zero state is a fixed point of
// every xorshift recurrence, so seeds and states that would produce it
// are rejected.
package xorshift

import (
	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

var errZeroState = bitgen.ArgumentError("xorshift: state must not be all zero")

func allZero64(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Xorshift64Star is the 64-bit xorshift generator with a star output
// multiplier.
type Xorshift64Star struct {
	state uint64
}

// New64Star returns a Xorshift64Star seeded with the first 8 bytes of
// seed.
func New64Star(seed []byte) (*Xorshift64Star, error) {
	g := &Xorshift64Star{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Xorshift64Star) Width() bitgen.Width { return bitgen.Width64 }

// Next advances the state by three xorshift rounds and returns the
// multiplied output.
func (g *Xorshift64Star) Next() uint64 {
	x := g.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	g.state = x
	return x * 2685821657736338717
}

// SeedSize returns the minimum seed length in bytes.
func (g *Xorshift64Star) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes.
func (g *Xorshift64Star) StateSize() int { return 8 }

// Seed derives the state from seed. The zero seed is rejected.
func (g *Xorshift64Star) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	if v == 0 {
		return errZeroState
	}
	g.state = v
	return nil
}

// State returns the big-endian encoding of the state word.
func (g *Xorshift64Star) State() ([]byte, error) {
	buf := make([]byte, 8)
	wordpack.PutUint64(buf, g.state)
	return buf, nil
}

// SetState restores a state previously obtained from State.
func (g *Xorshift64Star) SetState(state []byte) error {
	v, err := wordpack.Uint64(state)
	if err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if v == 0 {
		return errZeroState
	}
	g.state = v
	return nil
}

// Xorshift128 is Marsaglia's four-word 32-bit xorshift generator.
type Xorshift128 struct {
	x, y, z, w uint32
}

// New128 returns a Xorshift128 seeded with the first 16 bytes of seed.
func New128(seed []byte) (*Xorshift128, error) {
	g := &Xorshift128{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Xorshift128) Width() bitgen.Width { return bitgen.Width32 }

// Next rotates the word pipeline and returns the refreshed word.
func (g *Xorshift128) Next() uint64 {
	t := g.x ^ g.x<<11
	g.x, g.y, g.z = g.y, g.z, g.w
	g.w = g.w ^ g.w>>19 ^ t ^ t>>8
	return uint64(g.w)
}

// SeedSize returns the minimum seed length in bytes.
func (g *Xorshift128) SeedSize() int { return 16 }

// StateSize returns the encoded state length in bytes.
func (g *Xorshift128) StateSize() int { return 16 }

// Seed derives the state from seed. The all-zero seed is rejected.
func (g *Xorshift128) Seed(seed []byte) error {
	if err := bitgen.CheckSeed(seed, g.SeedSize()); err != nil {
		return err
	}
	return g.SetState(seed[:g.StateSize()])
}

// State returns the big-endian encoding of the four state words.
func (g *Xorshift128) State() ([]byte, error) {
	buf := make([]byte, 0, 16)
	buf = wordpack.Words32ToBytes(buf, []uint32{g.x, g.y, g.z, g.w})
	return buf, nil
}

// SetState restores a state previously obtained from State.
func (g *Xorshift128) SetState(state []byte) error {
	var words [4]uint32
	if err := wordpack.BytesToWords32(words[:], state); err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if words[0]|words[1]|words[2]|words[3] == 0 {
		return errZeroState
	}
	g.x, g.y, g.z, g.w = words[0], words[1], words[2], words[3]
	return nil
}

// Xorshift128Plus is the two-word 64-bit xorshift generator whose
// output is the sum of both state words before the update.
type Xorshift128Plus struct {
	state [2]uint64
}

// New128Plus returns a Xorshift128Plus seeded with the first 16 bytes
// of seed.
func New128Plus(seed []byte) (*Xorshift128Plus, error) {
	g := &Xorshift128Plus{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Xorshift128Plus) Width() bitgen.Width { return bitgen.Width64 }

// Next generates a pseudorandom number and advances the state of g.
func (g *Xorshift128Plus) Next() uint64 {
	s1 := g.state[0]
	s0 := g.state[1]
	result := s0 + s1
	g.state[0] = s0
	s1 ^= s1 << 23                                // a
	g.state[1] = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5) // b, c
	return result
}

// SeedSize returns the minimum seed length in bytes.
func (g *Xorshift128Plus) SeedSize() int { return 16 }

// StateSize returns the encoded state length in bytes.
func (g *Xorshift128Plus) StateSize() int { return 16 }

// Seed derives the state from seed. The all-zero seed is rejected.
func (g *Xorshift128Plus) Seed(seed []byte) error {
	if err := bitgen.CheckSeed(seed, g.SeedSize()); err != nil {
		return err
	}
	return g.SetState(seed[:g.StateSize()])
}

// State returns the big-endian encoding of the two state words.
func (g *Xorshift128Plus) State() ([]byte, error) {
	return wordpack.Words64ToBytes(make([]byte, 0, 16), g.state[:]), nil
}

// SetState restores a state previously obtained from State.
func (g *Xorshift128Plus) SetState(state []byte) error {
	var words [2]uint64
	if err := wordpack.BytesToWords64(words[:], state); err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if allZero64(words[:]) {
		return errZeroState
	}
	g.state = words
	return nil
}

var jump128Plus = [2]uint64{0x8a5cd789635d2dff, 0x121fd2155c472f96}

// Jump advances the generator by 2^64 steps.
func (g *Xorshift128Plus) Jump() {
	var acc [2]uint64
	for _, poly := range jump128Plus {
		for b := 0; b < 64; b++ {
			if poly&(1<<uint(b)) != 0 {
				acc[0] ^= g.state[0]
				acc[1] ^= g.state[1]
			}
			// The generator steps once per bit position, set or not.
			g.Next()
		}
	}
	g.state = acc
}

// Split returns a copy jumped 2^64 steps ahead; the original is not
// advanced.
func (g *Xorshift128Plus) Split() bitgen.Generator {
	clone := *g
	clone.Jump()
	return &clone
}

// Xorshift1024Star maintains sixteen 64-bit words and a cursor, with a
// star output multiplier.
type Xorshift1024Star struct {
	state  [16]uint64
	cursor int
}

// New1024Star returns a Xorshift1024Star seeded with the first 128
// bytes of seed.
func New1024Star(seed []byte) (*Xorshift1024Star, error) {
	g := &Xorshift1024Star{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Xorshift1024Star) Width() bitgen.Width { return bitgen.Width64 }

// Next advances the cursor pair and returns the multiplied output.
func (g *Xorshift1024Star) Next() uint64 {
	s0 := g.state[g.cursor]
	g.cursor = (g.cursor + 1) & 15
	s1 := g.state[g.cursor]
	s1 ^= s1 << 31
	g.state[g.cursor] = s1 ^ s0 ^ s1>>11 ^ s0>>30
	return g.state[g.cursor] * 1181783497276652981
}

// SeedSize returns the minimum seed length in bytes.
func (g *Xorshift1024Star) SeedSize() int { return 128 }

// StateSize returns the encoded state length in bytes, including the
// cursor prefix.
func (g *Xorshift1024Star) StateSize() int { return 4 + 128 }

// Seed fills the sixteen state words from seed and resets the cursor.
// The all-zero seed is rejected.
func (g *Xorshift1024Star) Seed(seed []byte) error {
	var words [16]uint64
	if err := wordpack.BytesToWords64(words[:], seed); err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	if allZero64(words[:]) {
		return errZeroState
	}
	g.state = words
	g.cursor = 0
	return nil
}

// State returns the cursor followed by the big-endian state words.
func (g *Xorshift1024Star) State() ([]byte, error) {
	buf := make([]byte, 4, g.StateSize())
	wordpack.PutUint32(buf, uint32(g.cursor))
	return wordpack.Words64ToBytes(buf, g.state[:]), nil
}

// SetState restores a state previously obtained from State.
func (g *Xorshift1024Star) SetState(state []byte) error {
	if err := bitgen.CheckState(state, g.StateSize()); err != nil {
		return err
	}
	cursor, _ := wordpack.Uint32(state)
	if cursor > 15 {
		return bitgen.ArgumentError("xorshift: cursor outside [0, 15]")
	}
	var words [16]uint64
	wordpack.BytesToWords64(words[:], state[4:])
	if allZero64(words[:]) {
		return errZeroState
	}
	g.state = words
	g.cursor = int(cursor)
	return nil
}

var jump1024Star = [16]uint64{
	0x84242f96eca9c41d, 0xa3c65b8776f96855, 0x5b34a39f070b5837, 0x4489affce4f31a1e,
	0x2ffeeb0a48316f40, 0xdc2d9891fe68c022, 0x3659132bb12fea70, 0xaac17d8efa43cab8,
	0xc4cb815590989b13, 0x5ee975283d71c93b, 0x691548c86c1bd540, 0x7910c41d10a1e6a5,
	0x0b5fc64563b3e2a8, 0x047f7684e9fc949d, 0xb99181f2d8f685ca, 0x284600e3f30e38c3,
}

// Jump advances the generator by 2^512 steps. The accumulator gathers
// words relative to the cursor, so it is written back in the same
// cursor-relative order.
func (g *Xorshift1024Star) Jump() {
	var acc [16]uint64
	for _, poly := range jump1024Star {
		for b := 0; b < 64; b++ {
			if poly&(1<<uint(b)) != 0 {
				for j := 0; j < 16; j++ {
					acc[j] ^= g.state[(j+g.cursor)&15]
				}
			}
			// The generator steps once per bit position, set or not.
			g.Next()
		}
	}
	for j := 0; j < 16; j++ {
		g.state[(j+g.cursor)&15] = acc[j]
	}
}

// Split returns a copy jumped 2^512 steps ahead; the original is not
// advanced.
func (g *Xorshift1024Star) Split() bitgen.Generator {
	clone := *g
	clone.Jump()
	return &clone
}

// Xorwow combines a five-word 32-bit xorshift pipeline with a Weyl
// sequence added to the output.
type Xorwow struct {
	x, y, z, w, v uint32
	d             uint32
}

// NewXorwow returns a Xorwow seeded with the first 24 bytes of seed.
func NewXorwow(seed []byte) (*Xorwow, error) {
	g := &Xorwow{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *Xorwow) Width() bitgen.Width { return bitgen.Width32 }

// Next rotates the pipeline, advances the Weyl counter and returns
// their sum.
func (g *Xorwow) Next() uint64 {
	t := g.x ^ g.x>>2
	g.x, g.y, g.z, g.w = g.y, g.z, g.w, g.v
	g.v = g.v ^ g.v<<4 ^ t ^ t<<1
	g.d += 362437
	return uint64(g.d + g.v)
}

// SeedSize returns the minimum seed length in bytes.
func (g *Xorwow) SeedSize() int { return 24 }

// StateSize returns the encoded state length in bytes.
func (g *Xorwow) StateSize() int { return 24 }

// Seed derives the state from seed. The xorshift words must not all be
// zero; the Weyl counter may hold any value.
func (g *Xorwow) Seed(seed []byte) error {
	if err := bitgen.CheckSeed(seed, g.SeedSize()); err != nil {
		return err
	}
	return g.SetState(seed[:g.StateSize()])
}

// State returns the big-endian encoding of the six state words.
func (g *Xorwow) State() ([]byte, error) {
	buf := make([]byte, 0, 24)
	buf = wordpack.Words32ToBytes(buf, []uint32{g.x, g.y, g.z, g.w, g.v, g.d})
	return buf, nil
}

// SetState restores a state previously obtained from State.
func (g *Xorwow) SetState(state []byte) error {
	var words [6]uint32
	if err := wordpack.BytesToWords32(words[:], state); err != nil {
		return bitgen.CheckState(state, g.StateSize())
	}
	if words[0]|words[1]|words[2]|words[3]|words[4] == 0 {
		return errZeroState
	}
	g.x, g.y, g.z, g.w, g.v, g.d = words[0], words[1], words[2], words[3], words[4], words[5]
	return nil
}

type driver struct {
	seedSize int
	new      func([]byte) (bitgen.Generator, error)
}

func (d driver) New(seed []byte) (bitgen.Generator, error) { return d.new(seed) }
func (d driver) SeedSize() int                             { return d.seedSize }

func init() {
	generator.Register("xorshift64star", driver{8, func(s []byte) (bitgen.Generator, error) { return New64Star(s) }})
	generator.Register("xorshift128", driver{16, func(s []byte) (bitgen.Generator, error) { return New128(s) }})
	generator.Register("xorshift128plus", driver{16, func(s []byte) (bitgen.Generator, error) { return New128Plus(s) }})
	generator.Register("xorshift1024star", driver{128, func(s []byte) (bitgen.Generator, error) { return New1024Star(s) }})
	generator.Register("xorwow", driver{24, func(s []byte) (bitgen.Generator, error) { return NewXorwow(s) }})
}
