package nn

import (
	"math"
	"math/rand"
)

// Xavier draws one weight from the Xavier (Glorot) uniform distribution
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
//
// rng may be nil, in which case the global math/rand source is used.
// Pass a seeded *rand.Rand for reproducible initialization.
func Xavier(fanIn, fanOut int, rng *rand.Rand) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (uniform(rng)*2.0 - 1.0) * bound
}

// uniform returns a value in [0, 1).
func uniform(rng *rand.Rand) float64 {
	if rng == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		return rand.Float64()
	}
	return rng.Float64()
}
