package distribution

import "math"

// Normal returns a draw from the normal distribution with the given
// mean and standard deviation, using the Marsaglia polar method: two
// uniforms in (-1, 1) are rejected until their squared norm falls in
// (0, 1), then transformed.
func (s *Sampler) Normal(mean, stddev float64) (float64, error) {
	if err := checkPositive("stddev", stddev); err != nil {
		return 0, err
	}
	if isBad(mean) {
		return 0, ParamError("distribution: mean must be finite")
	}
	return mean + stddev*s.gauss(), nil
}

// gauss draws from the standard normal distribution.
func (s *Sampler) gauss() float64 {
	for {
		u := 2*s.src.Float64() - 1
		v := 2*s.src.Float64() - 1
		q := u*u + v*v
		if q > 0 && q < 1 {
			return u * math.Sqrt(-2*math.Log(q)/q)
		}
	}
}

// LogNormal returns a draw whose logarithm is normally distributed with
// the given parameters.
func (s *Sampler) LogNormal(mean, stddev float64) (float64, error) {
	v, err := s.Normal(mean, stddev)
	if err != nil {
		return 0, err
	}
	return math.Exp(v), nil
}

// Triangular returns a draw from the triangular distribution on
// [min, max] peaking at mode. The sample is produced by inverting the
// piecewise CDF, split at the mode.
func (s *Sampler) Triangular(min, max, mode float64) (float64, error) {
	if err := checkInterval(min, max); err != nil {
		return 0, err
	}
	if isBad(mode) || mode < min || mode > max {
		return 0, ParamError("distribution: mode must lie within [min, max]")
	}

	u := s.src.Float64()
	cut := (mode - min) / (max - min)
	if u < cut {
		return min + math.Sqrt(u*(max-min)*(mode-min)), nil
	}
	return max - math.Sqrt((1-u)*(max-min)*(max-mode)), nil
}

// Exponential returns a draw from the exponential distribution with the
// given scale (the inverse of the rate).
func (s *Sampler) Exponential(scale float64) (float64, error) {
	if err := checkPositive("scale", scale); err != nil {
		return 0, err
	}
	return -scale * math.Log(s.openFloat64()), nil
}

// Pareto returns a draw from the Pareto distribution with the given
// scale (minimum value) and shape.
func (s *Sampler) Pareto(scale, shape float64) (float64, error) {
	if err := checkPositive("scale", scale); err != nil {
		return 0, err
	}
	if err := checkPositive("shape", shape); err != nil {
		return 0, err
	}
	return scale / math.Pow(s.openFloat64(), 1/shape), nil
}

// Weibull returns a draw from the Weibull distribution with the given
// scale and shape.
func (s *Sampler) Weibull(scale, shape float64) (float64, error) {
	if err := checkPositive("scale", scale); err != nil {
		return 0, err
	}
	if err := checkPositive("shape", shape); err != nil {
		return 0, err
	}
	return scale * math.Pow(-math.Log(s.openFloat64()), 1/shape), nil
}

// Gamma returns a draw from the gamma distribution with the given shape
// and scale, using the Marsaglia-Tsang squeeze for shape above one, the
// exact exponential reduction at one, and the boost transform below
// one.
func (s *Sampler) Gamma(shape, scale float64) (float64, error) {
	if err := checkPositive("shape", shape); err != nil {
		return 0, err
	}
	if err := checkPositive("scale", scale); err != nil {
		return 0, err
	}

	switch {
	case shape == 1:
		return s.Exponential(scale)
	case shape < 1:
		g, err := s.Gamma(shape+1, scale)
		if err != nil {
			return 0, err
		}
		return g * math.Pow(s.openFloat64(), 1/shape), nil
	}

	d := shape - 1.0/3.0
	c := 1 / (3 * math.Sqrt(d))
	for {
		x := s.gauss()
		t := 1 + c*x
		if t <= 0 {
			continue
		}
		v := t * t * t
		u := s.openFloat64()
		if math.Log(u) < 0.5*x*x+d-d*v+d*math.Log(v) {
			return d * v * scale, nil
		}
	}
}

// Beta returns a draw from the beta distribution with the given shape
// parameters, as the ratio of two unit-scale gamma draws. A first draw
// of exactly zero yields exactly zero.
func (s *Sampler) Beta(alpha, beta float64) (float64, error) {
	if err := checkPositive("alpha", alpha); err != nil {
		return 0, err
	}
	if err := checkPositive("beta", beta); err != nil {
		return 0, err
	}
	ga, _ := s.Gamma(alpha, 1)
	if ga == 0 {
		return 0, nil
	}
	gb, _ := s.Gamma(beta, 1)
	return ga / (ga + gb), nil
}

// Bates returns the arithmetic mean of count independent uniform draws
// in [min, max).
func (s *Sampler) Bates(min, max float64, count int) (float64, error) {
	if err := checkInterval(min, max); err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, ParamError("distribution: count must be at least one")
	}
	var sum float64
	for i := 0; i < count; i++ {
		sum += min + (max-min)*s.src.Float64()
	}
	return sum / float64(count), nil
}

// BatesInt64 returns the rounded mean of count independent uniform
// integer draws in [min, max). An extra uniform draw in [0, count) is
// added before the integer division to flatten the bias division alone
// would introduce.
func (s *Sampler) BatesInt64(min, max int64, count int) (int64, error) {
	if min >= max {
		return 0, ParamError("distribution: min must be less than max")
	}
	if count < 1 {
		return 0, ParamError("distribution: count must be at least one")
	}
	var sum int64
	for i := 0; i < count; i++ {
		v, err := s.Int64Range(min, max)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	dither, err := s.Uint64n(uint64(count))
	if err != nil {
		return 0, err
	}
	return (sum + int64(dither)) / int64(count), nil
}
