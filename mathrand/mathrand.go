// Package mathrand adapts any generator to the standard library's
// math/rand Source64 interface, so the framework's generators can feed
// code written against rand.Rand.
package mathrand

import (
	"math/rand"

	"github.com/randforge/randforge/bitgen"
)

type source struct {
	src *bitgen.Adapter
}

// NewSource wraps g in a rand.Source64. The returned source inherits
// g's concurrency contract: it must not be shared between goroutines.
func NewSource(g bitgen.Source) rand.Source64 {
	return &source{src: bitgen.NewAdapter(g)}
}

// New wraps g in a fully equipped rand.Rand.
func New(g bitgen.Source) *rand.Rand {
	return rand.New(NewSource(g))
}

func (s *source) Uint64() uint64 {
	return s.src.Uint64()
}

func (s *source) Int63() int64 {
	return int64(s.src.Uint64() >> 1)
}

// Seed is intentionally a no-op: the wrapped generator was seeded at
// construction and remains authoritative, so reseed requests through
// the rand.Source interface are ignored.
func (s *source) Seed(int64) {}
