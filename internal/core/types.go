package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Coord addresses a single cell.
type Coord struct {
	Row int
	Col int
}

// Config is the simulation configuration that travels with a grid.
type Config struct {
	Height   int
	Width    int
	CellSize int
}

// DefaultConfig returns the 100x100 grid drawn one pixel per cell.
func DefaultConfig() Config {
	return Config{Height: 100, Width: 100, CellSize: 1}
}

// MaxPixels caps the display area in pixels.
const MaxPixels = 1 << 26

// Validate rejects non-positive dimensions and boards whose cell count or
// pixel area would not fit in memory.
func (c Config) Validate() error {
	if c.Height <= 0 || c.Width <= 0 || c.CellSize <= 0 {
		return fmt.Errorf("%w: height=%d width=%d cell size=%d", ErrInvalidDimension, c.Height, c.Width, c.CellSize)
	}
	if c.Width > MaxCells/c.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimension, c.Height, c.Width, MaxCells)
	}
	// Each factor is checked against the running product so nothing overflows.
	if c.CellSize > MaxPixels/c.Width || c.CellSize > MaxPixels/c.Height ||
		c.Height*c.CellSize > MaxPixels/(c.Width*c.CellSize) {
		return fmt.Errorf("%w: %dx%d at cell size %d exceeds %d pixels", ErrInvalidDimension, c.Height, c.Width, c.CellSize, MaxPixels)
	}
	return nil
}

// PixelSize returns the display size in pixels.
func (c Config) PixelSize() Size {
	return Size{W: c.Width * c.CellSize, H: c.Height * c.CellSize}
}

// SeederOptions carries the knobs a seeder may read.
type SeederOptions struct {
	Seed int64
	// MaskPasses is the number of thinning passes for the random seeder.
	MaskPasses int
}

// Seeder builds the Initializer for a fresh grid of the given size.
type Seeder func(size Size, opts SeederOptions) Initializer

var seeders = map[string]Seeder{}

// RegisterSeeder adds an initial-population strategy under the provided name.
func RegisterSeeder(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of available seeders.
func Seeders() map[string]Seeder {
	return seeders
}

// SeederNames lists registered seeders in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
