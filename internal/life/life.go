// Package life implements Conway's Game of Life on a bounded grid. Cells
// beyond the edge are permanently dead; there is no wraparound.
package life

import (
	"lifegrid/internal/core"
)

// Rule reports the next state of a cell from its current state and live
// neighbour count: survival on 2 or 3, birth on 3.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Neighbors counts live cells in the Moore neighbourhood of (row, col).
func Neighbors(g *core.Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Alive(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// Step writes the generation following cur into nxt. Every read comes from
// cur, so births and deaths are simultaneous. Both grids must share a shape.
func Step(cur, nxt *core.Grid) {
	if !cur.SameShape(nxt) {
		panic("life: Step requires grids of the same shape")
	}
	h, w := cur.Dimensions()
	src, dst := cur.Cells(), nxt.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			dst[idx] = 0
			if Rule(src[idx] != 0, Neighbors(cur, row, col)) {
				dst[idx] = 1
			}
		}
	}
}

// NextGeneration returns a fresh grid holding the generation after g. The
// input is not modified.
func NextGeneration(g *core.Grid) *core.Grid {
	h, w := g.Dimensions()
	nxt, err := core.NewGrid(h, w, nil)
	if err != nil {
		// g already has positive dimensions.
		panic(err)
	}
	Step(g, nxt)
	return nxt
}

// Life owns a live grid and its generation buffer and swaps them each step.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
}

// New wraps grid with a matching generation buffer.
func New(grid *core.Grid) *Life {
	h, w := grid.Dimensions()
	nxt, err := core.NewGrid(h, w, nil)
	if err != nil {
		panic(err)
	}
	return &Life{cur: grid, nxt: nxt}
}

// Grid returns the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Step(l.cur, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
}
