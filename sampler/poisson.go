package sampler

import (
	"math"
	"math/rand"
)

// poissonChunk bounds the mean handled by one Knuth loop; exp(-chunk) stays
// far from float64 underflow.
const poissonChunk = 30.0

// poisson draws from Poisson(mean) using Knuth's multiplication method.
// Large means are split into chunks, since a sum of independent Poisson
// variables is Poisson with the summed mean.
func poisson(rng *rand.Rand, mean float64) int {
	k := 0
	for mean > 0 {
		m := math.Min(mean, poissonChunk)
		mean -= m

		limit := math.Exp(-m)
		p := rng.Float64()
		for p > limit {
			k++
			p *= rng.Float64()
		}
	}
	return k
}

// pathLength draws min(Poisson(mean)+1, max), or returns the fixed length.
func (c config) pathLength(rng *rand.Rand) int {
	if c.fixedLen >= 0 {
		return c.fixedLen
	}
	l := poisson(rng, c.mean) + 1
	if l > c.maxLen {
		return c.maxLen
	}
	return l
}
