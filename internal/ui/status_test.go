package ui

import (
	"slices"
	"testing"

	"lifegrid/internal/sim"
)

func TestStatusLines(t *testing.T) {
	got := StatusLines(sim.Status{Generation: 12, Population: 340, Mode: sim.Paused})
	want := []string{"gen 12  pop 340", "PAUSED"}
	if !slices.Equal(got, want) {
		t.Fatalf("StatusLines=%q, want %q", got, want)
	}

	got = StatusLines(sim.Status{Mode: sim.Running, LastSave: "/tmp/saves/gameoflife-1.txt"})
	want = []string{"gen 0  pop 0", "RUNNING", "saved gameoflife-1.txt"}
	if !slices.Equal(got, want) {
		t.Fatalf("StatusLines=%q, want %q", got, want)
	}
}
