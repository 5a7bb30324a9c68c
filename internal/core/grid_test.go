package core

import (
	"errors"
	"slices"
	"testing"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	cases := []struct{ h, w int }{
		{0, 5}, {5, 0}, {-1, 3}, {3, -2},
		{1 << 32, 1 << 32},
		{1_000_000_000, 1_000_000_000},
		{MaxCells, 2},
	}
	for _, tc := range cases {
		if _, err := NewGrid(tc.h, tc.w, nil); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d,%d) err=%v, want ErrInvalidDimension", tc.h, tc.w, err)
		}
	}
}

func TestNewGridUsesInitializer(t *testing.T) {
	g, err := NewGrid(3, 4, func(row, col int) bool { return row == col })
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if h, w := g.Dimensions(); h != 3 || w != 4 {
		t.Fatalf("Dimensions()=(%d,%d), want (3,4)", h, w)
	}
	want := []Coord{{0, 0}, {1, 1}, {2, 2}}
	if got := g.LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("LiveCells()=%v, want %v", got, want)
	}
	if g.Population() != 3 {
		t.Fatalf("Population()=%d, want 3", g.Population())
	}
}

func TestGetSetBounds(t *testing.T) {
	g, _ := NewGrid(2, 3, nil)
	if err := g.Set(1, 2, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	alive, err := g.Get(1, 2)
	if err != nil || !alive {
		t.Fatalf("Get(1,2)=(%v,%v), want (true,nil)", alive, err)
	}
	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if _, err := g.Get(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) err=%v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if err := g.Set(c.Row, c.Col, true); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err=%v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if g.Alive(c.Row, c.Col) {
			t.Fatalf("Alive(%d,%d) reported an off-grid cell alive", c.Row, c.Col)
		}
	}
	if g.Population() != 1 {
		t.Fatalf("out of range writes mutated the grid: population %d", g.Population())
	}
}

func TestToggle(t *testing.T) {
	g, _ := NewGrid(2, 2, nil)
	alive, err := g.Toggle(0, 1)
	if err != nil || !alive {
		t.Fatalf("first Toggle=(%v,%v), want (true,nil)", alive, err)
	}
	alive, _ = g.Toggle(0, 1)
	if alive {
		t.Fatal("second Toggle should kill the cell")
	}
	if _, err := g.Toggle(2, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Toggle out of range err=%v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(2, 2, func(int, int) bool { return true })
	c := g.Clone()
	g.Clear()
	if c.Population() != 4 {
		t.Fatalf("clone population %d after clearing original", c.Population())
	}
	if !g.SameShape(c) {
		t.Fatal("clone should share the original's shape")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []Config{
		{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-3, 4, 2},
		{1 << 32, 1 << 32, 1},
		{100, 100, 1 << 62},
		{1 << 20, 1, 1 << 20},
		{4096, 4096, 3},
	}
	for _, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("Validate(%+v) err=%v", c, err)
		}
	}
	if err := (Config{Height: 1024, Width: 1024, CellSize: 8}).Validate(); err != nil {
		t.Fatalf("8192x8192 pixel board rejected: %v", err)
	}
	if got := (Config{Height: 10, Width: 20, CellSize: 3}).PixelSize(); got != (Size{W: 60, H: 30}) {
		t.Fatalf("PixelSize()=%+v", got)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := make([]uint8, 64), make([]uint8, 64)
	NewRNG(42).FillBinary(a)
	NewRNG(42).FillBinary(b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different sequences")
	}
	for _, v := range a {
		if v > 1 {
			t.Fatalf("FillBinary produced %d", v)
		}
	}
}
