package seeders

import (
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func seed(t *testing.T, name string, size core.Size, opts core.SeederOptions) *core.Grid {
	t.Helper()
	s, ok := core.Seeders()[name]
	if !ok {
		t.Fatalf("seeder %q not registered", name)
	}
	g, err := core.NewGrid(size.H, size.W, s(size, opts))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	want := []string{"empty", "noise", "random"}
	if got := core.SeederNames(); !slices.Equal(got, want) {
		t.Fatalf("SeederNames()=%v, want %v", got, want)
	}
}

func TestSeedersDeterministic(t *testing.T) {
	size := core.Size{W: 40, H: 30}
	opts := core.SeederOptions{Seed: 99, MaskPasses: DefaultMaskPasses}
	for _, name := range []string{"random", "noise"} {
		a := seed(t, name, size, opts)
		b := seed(t, name, size, opts)
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("%s seeder not deterministic for a fixed seed", name)
		}
	}
}

func TestRandomMaskThinsPopulation(t *testing.T) {
	size := core.Size{W: 100, H: 100}
	dense := seed(t, "random", size, core.SeederOptions{Seed: 7, MaskPasses: 0})
	thin := seed(t, "random", size, core.SeederOptions{Seed: 7, MaskPasses: DefaultMaskPasses})

	total := size.W * size.H
	if p := dense.Population(); p < total*4/10 || p > total*6/10 {
		t.Fatalf("unmasked population %d outside 40%%..60%%", p)
	}
	if p := thin.Population(); p < total/20 || p > total/5 {
		t.Fatalf("masked population %d outside 5%%..20%%", p)
	}
}

func TestEmpty(t *testing.T) {
	g := seed(t, "empty", core.Size{W: 8, H: 8}, core.SeederOptions{Seed: 1})
	if g.Population() != 0 {
		t.Fatalf("empty seeder produced %d live cells", g.Population())
	}
}
