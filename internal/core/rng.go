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

// Valuen returns a random cell value in [0, n). n is capped at 256 so the
// result always fits a byte.
func (r *RNG) Valuen(n int) uint8 {
	if n <= 1 {
		return 0
	}
	if n > 256 {
		n = 256
	}
	return uint8(r.r.IntN(n))
}
