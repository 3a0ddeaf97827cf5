// Package bitgen defines the bit-source contract implemented by every
// concrete pseudo-random generator, along with adapters that derive all
// other word widths from a generator's natural granularity.
package bitgen

import "errors"

// ErrUnsupported is returned by generators that do not implement an
// optional part of the contract, such as state access or seeding.
// It is distinct from an ArgumentError so that callers can probe for
// capability instead of retrying with different arguments.
var ErrUnsupported = errors.New("bitgen: operation not supported")

// ArgumentError is returned for calls whose arguments lie outside the
// documented domain, such as a short seed buffer or a bit count larger
// than the target width. The call has no effect in that case.
type ArgumentError string

// Error implements the error interface for an ArgumentError.
func (e ArgumentError) Error() string { return string(e) }

// Width is the natural granularity of a bit source: the number of fresh,
// uniformly distributed bits one primitive call yields.
type Width int

// The supported natural widths.
const (
	Width1  Width = 1
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Mask returns a bit mask covering the low w bits of a word.
func (w Width) Mask() uint64 {
	return ^uint64(0) >> uint(64-w)
}

// A Source produces uniformly distributed bits at a fixed natural width.
//
// Sources are sequential state machines: every call to Next mutates the
// internal state exactly once. A Source is not safe for concurrent use.
type Source interface {
	// Width returns the natural width of the source.
	Width() Width

	// Next advances the state by one step and returns Width() fresh bits
	// in the low bits of the result. The unused high bits are zero.
	Next() uint64
}

// A Generator is a Source with an inspectable, restorable state and a
// byte-seeding operation.
//
// After SetState, the generator produces exactly the sequence a fresh
// instance constructed with the same state would produce. Seed is a
// possibly lossy seed-to-state function; generators with restricted
// state domains reject invalid seeds with an ArgumentError.
type Generator interface {
	Source

	// SeedSize returns the minimum seed length in bytes accepted by Seed.
	SeedSize() int

	// StateSize returns the exact encoded state length in bytes.
	StateSize() int

	// Seed derives a new state from the given seed bytes.
	Seed(seed []byte) error

	// State returns the big-endian encoding of the current state.
	State() ([]byte, error)

	// SetState restores a state previously obtained from State.
	SetState(state []byte) error
}

// A Jumper can advance its state by a fixed, astronomically large number
// of steps in time proportional to the state size.
type Jumper interface {
	Jump()
}

// A Splitter hands out an independent generator whose output sequence is
// guaranteed not to overlap its own for the advertised span.
//
// Split copies the generator and jumps the copy; the original is not
// advanced.
type Splitter interface {
	Split() Generator
}

// errShortBuffer builds the ArgumentError shared by Seed and SetState
// implementations.
func errShortBuffer(op string, want, got int) error {
	if got < want {
		return ArgumentError("bitgen: " + op + " buffer too short")
	}
	return nil
}

// CheckSeed validates the length of a seed buffer against the advertised
// minimum.
func CheckSeed(seed []byte, size int) error {
	return errShortBuffer("seed", size, len(seed))
}

// CheckState validates the length of a state buffer against the
// advertised minimum.
func CheckState(state []byte, size int) error {
	return errShortBuffer("state", size, len(state))
}
