// Package bbs implements the Blum Blum Shub generator: repeated modular
// squaring over a fixed Blum semiprime, emitting the parity bit of each
// new residue. It is far slower than the word-based generators and is
// the only one in the registry with a security argument behind it, but
// it is still not a vetted cryptographic implementation.
package bbs

import (
	"math/big"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator"
	"github.com/randforge/randforge/pkg/wordpack"
)

// The two Blum primes (both congruent to 3 mod 4) and their product.
var (
	primeP  = big.NewInt(30000000091)
	primeQ  = big.NewInt(40000000003)
	modulus = new(big.Int).Mul(primeP, primeQ)
)

const stateBytes = 16

// BBS holds the current quadratic residue.
type BBS struct {
	state   *big.Int
	scratch *big.Int
}

// New returns a BBS seeded with the first 8 bytes of seed.
func New(seed []byte) (*BBS, error) {
	g := &BBS{state: new(big.Int), scratch: new(big.Int)}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the natural width of the generator.
func (g *BBS) Width() bitgen.Width { return bitgen.Width1 }

// Next squares the residue modulo the fixed semiprime and returns its
// low bit.
func (g *BBS) Next() uint64 {
	g.scratch.Mul(g.state, g.state)
	g.state.Mod(g.scratch, modulus)
	return uint64(g.state.Bit(0))
}

// SeedSize returns the minimum seed length in bytes.
func (g *BBS) SeedSize() int { return 8 }

// StateSize returns the encoded state length in bytes.
func (g *BBS) StateSize() int { return stateBytes }

// checkResidue rejects values outside the multiplicative group: zero,
// one, and anything sharing a factor with the modulus, which includes
// the two primes themselves.
func checkResidue(x *big.Int) error {
	if x.Cmp(big.NewInt(2)) < 0 {
		return bitgen.ArgumentError("bbs: residue must be greater than one")
	}
	var rem big.Int
	if rem.Mod(x, primeP).Sign() == 0 || rem.Mod(x, primeQ).Sign() == 0 {
		return bitgen.ArgumentError("bbs: residue shares a factor with the modulus")
	}
	return nil
}

// Seed interprets the first 8 seed bytes as a big-endian integer and
// squares it into the residue group. Seeds of 0, 1, or a multiple of
// either prime factor are rejected.
func (g *BBS) Seed(seed []byte) error {
	v, err := wordpack.Uint64(seed)
	if err != nil {
		return bitgen.CheckSeed(seed, g.SeedSize())
	}
	x := new(big.Int).SetUint64(v)
	x.Mod(x, modulus)
	if err := checkResidue(x); err != nil {
		return err
	}
	g.state.Mul(x, x)
	g.state.Mod(g.state, modulus)
	return nil
}

// State returns the residue as a fixed-width big-endian value.
func (g *BBS) State() ([]byte, error) {
	buf := make([]byte, stateBytes)
	g.state.FillBytes(buf)
	return buf, nil
}

// SetState restores a state previously obtained from State.
func (g *BBS) SetState(state []byte) error {
	if err := bitgen.CheckState(state, g.StateSize()); err != nil {
		return err
	}
	x := new(big.Int).SetBytes(state[:stateBytes])
	if x.Cmp(modulus) >= 0 {
		return bitgen.ArgumentError("bbs: state not reduced modulo the semiprime")
	}
	if err := checkResidue(x); err != nil {
		return err
	}
	g.state.Set(x)
	return nil
}

type driver struct{}

func (driver) New(seed []byte) (bitgen.Generator, error) { return New(seed) }
func (driver) SeedSize() int                             { return 8 }

func init() {
	generator.Register("bbs", driver{})
}
