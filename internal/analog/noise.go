// Package analog simulates an RRAM-style analog computer in which each
// cell's conductance is proportional to the square of a Fibonacci number.
// Multiplication is the sum of active-cell conductances (Ohm's law);
// GCD is its inverse, a stepwise cell deactivation that mirrors the
// Euclidean trace. This file defines the injectable noise source used to
// model device variation.
package analog

import "math/rand"

// NoiseSource produces pseudo-random draws from a normal distribution.
// The simulator multiplies one independent draw into each active cell's
// nominal conductance, so substituting a deterministic source makes runs
// reproducible. Implementations need not be safe for concurrent use; the
// simulator is single-threaded.
type NoiseSource interface {
	// Sample returns one draw from N(mean, stddev).
	Sample(mean, stddev float64) float64
}

// randomNoise draws from a seedable pseudo-random generator.
type randomNoise struct {
	rng *rand.Rand
}

// NewRandomNoise creates a NoiseSource seeded with the given value. Two
// sources built from the same seed produce identical draw sequences.
func NewRandomNoise(seed int64) NoiseSource {
	return &randomNoise{rng: rand.New(rand.NewSource(seed))}
}

// Sample implements NoiseSource.
func (r *randomNoise) Sample(mean, stddev float64) float64 {
	return mean + stddev*r.rng.NormFloat64()
}

// noiselessSource always returns the mean, turning every run into an
// exact measurement.
type noiselessSource struct{}

// Noiseless returns a NoiseSource with zero variation. With it, a
// multiplication run measures the true product exactly.
func Noiseless() NoiseSource {
	return noiselessSource{}
}

// Sample implements NoiseSource.
func (noiselessSource) Sample(mean, _ float64) float64 { return mean }
