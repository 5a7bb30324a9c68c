// Package seeders registers the initial-population strategies selectable
// with the -seeder flag.
package seeders

import "lifegrid/internal/core"

// DefaultMaskPasses thins a coin-flip board down to roughly one live cell in
// eight.
const DefaultMaskPasses = 2

// Random flips a coin per cell, then runs opts.MaskPasses thinning passes
// that each kill a live cell with probability one half.
func Random(size core.Size, opts core.SeederOptions) core.Initializer {
	rng := core.NewRNG(opts.Seed)
	cells := make([]uint8, size.W*size.H)
	rng.FillBinary(cells)

	passes := opts.MaskPasses
	if passes < 0 {
		passes = 0
	}
	mask := make([]uint8, len(cells))
	for p := 0; p < passes; p++ {
		rng.FillBinary(mask)
		for i := range cells {
			if cells[i] != 0 && mask[i] != 0 {
				cells[i] = 0
			}
		}
	}
	return fromCells(size, cells)
}

// Empty starts with every cell dead.
func Empty(core.Size, core.SeederOptions) core.Initializer {
	return core.Dead
}

func fromCells(size core.Size, cells []uint8) core.Initializer {
	return func(row, col int) bool {
		if row < 0 || row >= size.H || col < 0 || col >= size.W {
			return false
		}
		return cells[row*size.W+col] != 0
	}
}

func init() {
	core.RegisterSeeder("random", Random)
	core.RegisterSeeder("empty", Empty)
}
