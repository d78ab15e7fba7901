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

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// OneIn reports true with probability 1/n. n <= 1 always reports true.
func (r *RNG) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}
