// Package random provides collection and string helpers on top of the
// distribution layer's bias-free integer sampling.
package random

import "github.com/randforge/randforge/distribution"

// AlphaNumeric is an alphabet with all lower- and uppercase letters and
// numbers.
const AlphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AlphaNumericString is a shorthand for String(s, l, AlphaNumeric).
func AlphaNumericString(s *distribution.Sampler, l int) (string, error) {
	return String(s, l, AlphaNumeric)
}

// String generates a random string of length l containing only runes
// from the alphabet, with every rune equally likely.
func String(s *distribution.Sampler, l int, alphabet string) (string, error) {
	if l < 0 {
		return "", distribution.ParamError("random: length must not be negative")
	}
	if len(alphabet) == 0 {
		return "", distribution.ParamError("random: alphabet must not be empty")
	}
	b := make([]byte, l)
	for i := range b {
		k, err := s.Uint64n(uint64(len(alphabet)))
		if err != nil {
			return "", err
		}
		b[i] = alphabet[k]
	}
	return string(b), nil
}

// Shuffle performs a Fisher-Yates shuffle over n elements, swapping
// through the provided callback.
func Shuffle(s *distribution.Sampler, n int, swap func(i, j int)) error {
	if n < 0 {
		return distribution.ParamError("random: n must not be negative")
	}
	for i := n - 1; i > 0; i-- {
		j, err := s.Uint64n(uint64(i) + 1)
		if err != nil {
			return err
		}
		swap(i, int(j))
	}
	return nil
}

// Perm returns a uniformly random permutation of [0, n).
func Perm(s *distribution.Sampler, n int) ([]int, error) {
	if n < 0 {
		return nil, distribution.ParamError("random: n must not be negative")
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	err := Shuffle(s, n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Pick returns a uniformly chosen index into a collection of size n.
func Pick(s *distribution.Sampler, n int) (int, error) {
	if n <= 0 {
		return 0, distribution.ParamError("random: n must be positive")
	}
	k, err := s.Uint64n(uint64(n))
	return int(k), err
}
