package core

import "math/rand/v2"

// RandomSource produces independent fair coin flips for seeding grids.
type RandomSource interface {
	Bool() bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBool overwrites every element of buf with a coin flip from src.
func FillBool(src RandomSource, buf []bool) {
	for i := range buf {
		buf[i] = src.Bool()
	}
}

// Constant is a RandomSource that always returns the same value.
type Constant bool

// Bool returns the constant value.
func (c Constant) Bool() bool { return bool(c) }
