package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension reports a non-positive height, width or cell size.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// MaxCells caps the cell count of a grid. Boards come from files and the
// command line, so the cap keeps a hostile header from exhausting memory.
const MaxCells = 1 << 26

// Initializer decides the starting state of the cell at (row, col).
type Initializer func(row, col int) bool

// Dead is an Initializer that leaves every cell dead.
func Dead(int, int) bool { return false }

// Grid stores a 2D field of alive/dead cells in row-major order.
type Grid struct {
	H, W int
	data []uint8
}

// NewGrid allocates a height x width grid populated by init. A nil init
// leaves every cell dead.
func NewGrid(h, w int, init Initializer) (*Grid, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidDimension, h, w)
	}
	if w > MaxCells/h {
		return nil, fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidDimension, h, w, MaxCells)
	}
	g := &Grid{H: h, W: w, data: make([]uint8, h*w)}
	if init == nil {
		return g, nil
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if init(row, col) {
				g.data[g.Index(row, col)] = 1
			}
		}
	}
	return g, nil
}

// Dimensions returns the height and width of the grid.
func (g *Grid) Dimensions() (int, int) { return g.H, g.W }

// Cells exposes the backing slice (1 alive, 0 dead) for renderers.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) (bool, error) {
	if !g.Contains(row, col) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.H, g.W)
	}
	return g.data[g.Index(row, col)] != 0, nil
}

// Alive is the bounded lookup used for neighbourhoods: anything off the grid
// is dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.Contains(row, col) {
		return false
	}
	return g.data[g.Index(row, col)] != 0
}

// Set stores the alive state of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.Contains(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.H, g.W)
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(row, col)] = v
	return nil
}

// Toggle flips the cell at (row, col) and returns its new state.
func (g *Grid) Toggle(row, col int) (bool, error) {
	if !g.Contains(row, col) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.H, g.W)
	}
	idx := g.Index(row, col)
	g.data[idx] ^= 1
	return g.data[idx] != 0, nil
}

// SameShape reports whether both grids have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool { return o != nil && g.H == o.H && g.W == o.W }

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// LiveCells lists the coordinates of every live cell in row-major order.
func (g *Grid) LiveCells() []Coord {
	var out []Coord
	for i, c := range g.data {
		if c != 0 {
			out = append(out, Coord{Row: i / g.W, Col: i % g.W})
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{H: g.H, W: g.W, data: append([]uint8(nil), g.data...)}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
