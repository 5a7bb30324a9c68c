package app

import (
	"lifegrid/internal/core"
	"lifegrid/internal/sim"
	"lifegrid/internal/statefile"
)

// LoadState builds the starting session: the saved board named by -file, or
// a freshly seeded board of the configured size. Any error is fatal to
// startup.
func LoadState(cfg *Config) (*sim.State, error) {
	if cfg.File != "" {
		grid, board, err := statefile.LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		cfg.Board = board
		return sim.NewState(grid, board)
	}
	if err := cfg.Board.Validate(); err != nil {
		return nil, err
	}
	populate, err := cfg.Initializer()
	if err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Board.Height, cfg.Board.Width, populate)
	if err != nil {
		return nil, err
	}
	return sim.NewState(grid, cfg.Board)
}
