package seeders

import (
	"github.com/aquilax/go-perlin"

	"lifegrid/internal/core"
)

const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseScale     = 0.08
	noiseThreshold = 0.12
)

// Noise seeds blobs of life where 2D Perlin noise rises above a threshold.
// A per-cell coin flip keeps the blobs from starting as solid (and instantly
// dying) squares.
func Noise(size core.Size, opts core.SeederOptions) core.Initializer {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, opts.Seed)
	rng := core.NewRNG(opts.Seed)
	cells := make([]uint8, size.W*size.H)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			v := p.Noise2D(float64(col)*noiseScale, float64(row)*noiseScale)
			if v > noiseThreshold && rng.Coin() {
				cells[row*size.W+col] = 1
			}
		}
	}
	return fromCells(size, cells)
}

func init() {
	core.RegisterSeeder("noise", Noise)
}
