package statefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"lifegrid/internal/core"
)

const (
	filePrefix = "gameoflife-"
	fileExt    = ".txt"
	stampFmt   = "20060102-150405.000"
	maxSuffix  = 1000
)

// Dir saves boards into a directory under time-stamped names. A name that is
// already taken gets a numeric suffix, so earlier saves are never replaced.
type Dir struct {
	Path string
	Now  func() time.Time
}

// NewDir returns a Dir rooted at path using the wall clock.
func NewDir(path string) *Dir {
	if path == "" {
		path = "."
	}
	return &Dir{Path: path, Now: time.Now}
}

// Save writes the board and returns the path of the new file.
func (d *Dir) Save(grid *core.Grid, cfg core.Config) (string, error) {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return "", err
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	stamp := now().Format(stampFmt)

	for i := 0; i < maxSuffix; i++ {
		name := filePrefix + stamp + fileExt
		if i > 0 {
			name = fmt.Sprintf("%s%s-%d%s", filePrefix, stamp, i, fileExt)
		}
		path := filepath.Join(d.Path, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if err := Save(f, grid, cfg); err != nil {
			f.Close()
			os.Remove(path)
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("statefile: no free name for %s in %s", stamp, d.Path)
}

// LoadFile reads a board from path.
func LoadFile(path string) (*core.Grid, core.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.Config{}, err
	}
	defer f.Close()
	grid, cfg, err := Load(f)
	if err != nil {
		return nil, core.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return grid, cfg, nil
}
