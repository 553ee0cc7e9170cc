package progression

import "math/rand/v2"

// Rand is the random source used for reward draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// DefaultRand returns a source backed by the math/rand/v2 top-level functions,
// which are safe for concurrent use.
func DefaultRand() Rand {
	return globalRand{}
}

// uniformInt draws an integer in the closed range [lo, hi].
func uniformInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
