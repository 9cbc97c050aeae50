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

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBinary sets each cell to 1 with probability density, 0 otherwise.
// Densities outside (0, 1) produce an all-zero or all-one buffer.
func FillBinary(r *rand.Rand, buf []uint, density float64) {
	for i := range buf {
		if r.Float64() < density {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// CenterSeed clears row and sets its middle cell to 1.
func CenterSeed(row []uint) {
	for i := range row {
		row[i] = 0
	}
	if len(row) > 0 {
		row[len(row)/2] = 1
	}
}
