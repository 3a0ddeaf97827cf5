// Package distribution derives numeric distributions from any bit
// source. Every sampler is expressed purely in terms of uniform draws
// from the wrapped source; none reaches into a generator's state.
//
// All entry points validate their parameter domains and fail with a
// ParamError before consuming any randomness, so a rejected call never
// advances the underlying generator.
package distribution

import (
	"math"

	"github.com/randforge/randforge/bitgen"
)

// ParamError is returned when a distribution parameter lies outside its
// documented domain.
type ParamError string

// Error implements the error interface for a ParamError.
func (e ParamError) Error() string { return string(e) }

// A Sampler draws from distributions using a single bit source.
// Like the source it wraps, a Sampler is not safe for concurrent use.
type Sampler struct {
	src *bitgen.Adapter
}

// New returns a Sampler drawing from src.
func New(src bitgen.Source) *Sampler {
	return &Sampler{src: bitgen.NewAdapter(src)}
}

// Uint64 returns 64 uniformly random bits.
func (s *Sampler) Uint64() uint64 { return s.src.Uint64() }

// Uint64n returns a uniformly distributed integer in [0, bound),
// without modulo bias. Out-of-range raw draws are rejected and redrawn;
// the expected number of redraws is below one for every bound.
func (s *Sampler) Uint64n(bound uint64) (uint64, error) {
	if bound == 0 {
		return 0, ParamError("distribution: bound must be positive")
	}
	if bound&(bound-1) == 0 {
		return s.src.Uint64() & (bound - 1), nil
	}

	// Accept only draws at or above 2^64 mod bound; the accepted range
	// then holds an exact multiple of bound values.
	min := -bound % bound
	v := s.src.Uint64()
	for v < min {
		v = s.src.Uint64()
	}
	return v % bound, nil
}

// Uint32n returns a uniformly distributed integer in [0, bound),
// without modulo bias.
func (s *Sampler) Uint32n(bound uint32) (uint32, error) {
	if bound == 0 {
		return 0, ParamError("distribution: bound must be positive")
	}
	if bound&(bound-1) == 0 {
		return s.src.Uint32() & (bound - 1), nil
	}

	min := -bound % bound
	v := s.src.Uint32()
	for v < min {
		v = s.src.Uint32()
	}
	return v % bound, nil
}

// Int64Range returns a uniformly distributed integer in [min, max).
func (s *Sampler) Int64Range(min, max int64) (int64, error) {
	if min >= max {
		return 0, ParamError("distribution: min must be less than max")
	}
	v, err := s.Uint64n(uint64(max) - uint64(min))
	if err != nil {
		return 0, err
	}
	return min + int64(v), nil
}

// Float64 returns a uniformly distributed float64 in [0, 1).
func (s *Sampler) Float64() float64 { return s.src.Float64() }

// openFloat64 returns a uniformly distributed float64 in (0, 1],
// redrawing on exactly zero so that log and pow transforms stay finite.
func (s *Sampler) openFloat64() float64 {
	for {
		if v := s.src.Float64(); v != 0 {
			return v
		}
	}
}

// Float64Range returns a uniformly distributed float64 in [min, max).
func (s *Sampler) Float64Range(min, max float64) (float64, error) {
	if err := checkInterval(min, max); err != nil {
		return 0, err
	}
	return min + (max-min)*s.src.Float64(), nil
}

// Bool returns a uniformly random boolean.
func (s *Sampler) Bool() bool { return s.src.Bool() }

func checkInterval(min, max float64) error {
	if isBad(min) || isBad(max) || min >= max {
		return ParamError("distribution: min must be less than max")
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if isBad(v) || v <= 0 {
		return ParamError("distribution: " + name + " must be strictly positive")
	}
	return nil
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
