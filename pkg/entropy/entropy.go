// Package entropy supplies seed material for generators constructed
// without an explicit seed. The source is itself a full bit source: a
// SplitMix64-style counter whose starting point mixes the wall clock
// through a fixed odd congruential constant, so no platform secure
// random facility is needed. Callers construct their own Source and
// pass it where seeding happens; there is no process-wide instance.
package entropy

import (
	"time"

	"github.com/randforge/randforge/bitgen"
	"github.com/randforge/randforge/generator/splitmix"
)

// An odd congruential pair decorrelates clock readings taken close
// together.
const (
	clockMultiplier = 6364136223846793005
	clockIncrement  = 1442695040888963407
)

// Source generates seed bytes. It implements bitgen.Source and is, like
// every other source, not safe for concurrent use.
type Source struct {
	state uint64
}

// New returns a Source mixed from the current clock reading.
func New() *Source {
	return FromTime(time.Now())
}

// FromTime returns a Source mixed from the given instant. Two sources
// built from the same instant generate the same bytes; tests use this
// for reproducibility.
func FromTime(t time.Time) *Source {
	return &Source{state: uint64(t.UnixNano())*clockMultiplier + clockIncrement}
}

// Width returns the natural width of the source.
func (s *Source) Width() bitgen.Width { return bitgen.Width64 }

// Next advances the counter and returns the mixed output.
func (s *Source) Next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	return splitmix.Mix(s.state)
}

// SeedBytes returns n fresh seed bytes.
func (s *Source) SeedBytes(n int) []byte {
	buf := make([]byte, n)
	bitgen.NewAdapter(s).Read(buf)
	return buf
}
