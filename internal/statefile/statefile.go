// Package statefile reads and writes saved boards.
//
// The format is plain text: a header line "height width cellSize" followed by
// one "row col" line per live cell. Dead cells are implicit.
package statefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lifegrid/internal/core"
)

var (
	// ErrMalformedHeader reports a header without three positive integers or
	// one describing a board too large to hold.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrMalformedRecord reports a cell line without two integers.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrCoordinateOutOfRange reports a cell outside the declared grid.
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
)

// Save writes grid and cfg to w. The grid's dimensions win over cfg's so the
// header always describes the cells that follow.
func Save(w io.Writer, grid *core.Grid, cfg core.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h, wd := grid.Dimensions()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d\n", h, wd, cfg.CellSize)
	for _, c := range grid.LiveCells() {
		fmt.Fprintf(bw, "%d %d\n", c.Row, c.Col)
	}
	return bw.Flush()
}

// Load parses a saved board. Nothing is returned unless the whole input is
// valid.
func Load(r io.Reader) (*core.Grid, core.Config, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, core.Config{}, err
		}
		return nil, core.Config{}, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}
	cfg, err := parseHeader(sc.Text())
	if err != nil {
		return nil, core.Config{}, err
	}
	grid, err := core.NewGrid(cfg.Height, cfg.Width, nil)
	if err != nil {
		return nil, core.Config{}, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row, col, err := parseRecord(fields)
		if err != nil {
			return nil, core.Config{}, fmt.Errorf("line %d: %w", line, err)
		}
		if !grid.Contains(row, col) {
			return nil, core.Config{}, fmt.Errorf("line %d: %w: (%d,%d) in %dx%d",
				line, ErrCoordinateOutOfRange, row, col, cfg.Height, cfg.Width)
		}
		grid.Set(row, col, true)
	}
	if err := sc.Err(); err != nil {
		return nil, core.Config{}, err
	}
	return grid, cfg, nil
}

func parseHeader(s string) (core.Config, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return core.Config{}, fmt.Errorf("%w: want \"height width cellSize\", got %q", ErrMalformedHeader, s)
	}
	var vals [3]int
	for i := range vals {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return core.Config{}, fmt.Errorf("%w: %q is not an integer", ErrMalformedHeader, fields[i])
		}
		vals[i] = v
	}
	cfg := core.Config{Height: vals[0], Width: vals[1], CellSize: vals[2]}
	if err := cfg.Validate(); err != nil {
		return core.Config{}, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}
	return cfg, nil
}

func parseRecord(fields []string) (int, int, error) {
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: want \"row col\", got %q", ErrMalformedRecord, strings.Join(fields, " "))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrMalformedRecord, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", ErrMalformedRecord, fields[1])
	}
	return row, col, nil
}
