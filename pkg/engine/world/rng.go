package world

import "math/rand/v2"

// Rand is the random source used for level construction.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand creates a deterministic PCG-backed generator for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// Between returns a uniform random integer in [lo, hi] inclusive.
// If hi < lo, lo is returned.
func Between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
