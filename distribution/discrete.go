package distribution

import "math"

// poissonChunk caps the rate fed into one multiplicative round so the
// exp term never underflows to zero.
const poissonChunk = 500

// Poisson returns a draw from the Poisson distribution with the given
// rate, using Knuth's multiplicative threshold algorithm. Rates above
// the chunk limit are decomposed into independent chunks and their
// counts summed, which is exact because Poisson variables are additive.
func (s *Sampler) Poisson(rate float64) (int64, error) {
	if err := checkPositive("rate", rate); err != nil {
		return 0, err
	}

	var count int64
	for rate > 0 {
		chunk := rate
		if chunk > poissonChunk {
			chunk = poissonChunk
		}
		rate -= chunk

		threshold := math.Exp(-chunk)
		p := 1.0
		for {
			p *= s.openFloat64()
			if p < threshold {
				break
			}
			count++
		}
	}
	return count, nil
}
