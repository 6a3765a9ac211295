package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FloatRange returns a random float64 in [min, max).
func (r *RNG) FloatRange(min, max float64) float64 {
	return r.r.Float64()*(max-min) + min
}

// IntRange returns a random int in [min, max). It returns min when the range
// is empty.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return r.r.IntN(max-min) + min
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
