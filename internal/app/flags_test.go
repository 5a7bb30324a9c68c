package app

import (
	"errors"
	"flag"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/statefile"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	return cfg, cfg.Parse(fs, args)
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Board != (core.Config{Height: 100, Width: 100, CellSize: 1}) {
		t.Fatalf("default board %+v", cfg.Board)
	}
	if cfg.Seeder != "random" || cfg.MaskPasses != 2 {
		t.Fatalf("default seeder %q mask %d", cfg.Seeder, cfg.MaskPasses)
	}
}

func TestPositionalAndInterleavedFlags(t *testing.T) {
	cfg, err := parse(t, "40", "-seed", "3", "60", "--seeder", "noise", "5")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Board != (core.Config{Height: 40, Width: 60, CellSize: 5}) {
		t.Fatalf("board %+v", cfg.Board)
	}
	if cfg.Seed != 3 || cfg.Seeder != "noise" {
		t.Fatalf("seed %d seeder %q", cfg.Seed, cfg.Seeder)
	}
}

func TestPositionalErrors(t *testing.T) {
	if _, err := parse(t, "0", "10"); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("zero height err=%v", err)
	}
	if _, err := parse(t, "10", "10", "-2"); err == nil {
		t.Fatal("negative positional parsed as a flag or accepted")
	}
	if _, err := parse(t, "10", "x"); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("non-numeric width err=%v", err)
	}
	if _, err := parse(t, "10", "--", "10", "-2"); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("negative positional after terminator err=%v", err)
	}
	if _, err := parse(t, "1", "2", "3", "4"); err == nil {
		t.Fatal("fourth positional accepted")
	}
}

func TestTerminatorEndsFlags(t *testing.T) {
	cfg, err := parse(t, "-seed", "4", "--", "20", "30", "2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Board != (core.Config{Height: 20, Width: 30, CellSize: 2}) || cfg.Seed != 4 {
		t.Fatalf("board %+v seed %d", cfg.Board, cfg.Seed)
	}
}

func TestFileIgnoresPositional(t *testing.T) {
	cfg, err := parse(t, "--file", "board.txt", "abc", "-", "x", "y")
	if err != nil {
		t.Fatalf("Parse with -file: %v", err)
	}
	if cfg.Board != core.DefaultConfig() {
		t.Fatalf("positionals changed the board to %+v", cfg.Board)
	}
}

func TestColors(t *testing.T) {
	cfg, err := parse(t, "-alive", "#ff8000", "-dead", "102030")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	alive, dead, err := cfg.Colors()
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if alive != (color.RGBA{R: 0xff, G: 0x80, A: 0xff}) || dead != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Fatalf("colours %v %v", alive, dead)
	}
	for _, bad := range []string{"fff", "gg0000", "#12345678"} {
		if _, err := parse(t, "-alive", bad); err == nil {
			t.Fatalf("colour %q accepted", bad)
		}
	}
}

func TestLoadStateSeeds(t *testing.T) {
	cfg, err := parse(t, "12", "8", "2", "-seed", "5", "-seeder", "empty")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	st, err := LoadState(cfg)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if h, w := st.Grid.Dimensions(); h != 12 || w != 8 {
		t.Fatalf("grid %dx%d", h, w)
	}
	if st.Grid.Population() != 0 {
		t.Fatal("empty seeder produced life")
	}

	cfg.Seeder = "nope"
	if _, err := LoadState(cfg); err == nil {
		t.Fatal("unknown seeder accepted")
	}
}

func TestLoadStateFromFileIgnoresPositional(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte("3 4 6\n1 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := parse(t, "--file", path, "0", "0", "0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	st, err := LoadState(cfg)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if cfg.Board != (core.Config{Height: 3, Width: 4, CellSize: 6}) || st.Config != cfg.Board {
		t.Fatalf("board %+v state %+v", cfg.Board, st.Config)
	}
	if !st.Grid.Alive(1, 2) || st.Grid.Population() != 1 {
		t.Fatalf("loaded cells %v", st.Grid.LiveCells())
	}
}

func TestLoadStateRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte("3 3 1\n5 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ := parse(t, "-file", path)
	if _, err := LoadState(cfg); !errors.Is(err, statefile.ErrCoordinateOutOfRange) {
		t.Fatalf("LoadState err=%v", err)
	}
}
