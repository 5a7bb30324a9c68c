package core

import "math/rand/v2"

// RNG wraps a PCG source so every seeder draws a reproducible sequence from
// the -seed flag.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Coin returns true with probability one half.
func (r *RNG) Coin() bool {
	return r.r.IntN(2) == 1
}

// FillBinary fills buf with independent 0/1 coin flips.
func (r *RNG) FillBinary(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.IntN(2))
	}
}
