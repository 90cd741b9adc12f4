package guide

import "math/rand/v2"

// Rand is the random source all mock content generators draw from.
// Production uses math/rand/v2; tests inject a deterministic stub.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// SystemRand delegates to the shared math/rand/v2 generator.
type SystemRand struct{}

func (SystemRand) IntN(n int) int   { return rand.IntN(n) }
func (SystemRand) Float64() float64 { return rand.Float64() }

// shuffle is an in-place Fisher-Yates over s using r.
func shuffle[T any](r Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
