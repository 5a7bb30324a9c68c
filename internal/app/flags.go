package app

import (
	"encoding/hex"
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/seeders"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Board core.Config

	File       string
	Seeder     string
	Seed       int64
	MaskPasses int
	TPS        int
	GPS        int
	SaveDir    string
	Verbose    bool

	AliveColor string
	DeadColor  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Board:      core.DefaultConfig(),
		Seeder:     "random",
		Seed:       time.Now().UnixNano(),
		MaskPasses: seeders.DefaultMaskPasses,
		TPS:        60,
		SaveDir:    ".",
		AliveColor: "ffffff",
		DeadColor:  "000000",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "file", c.File, "load a saved board instead of seeding one; positional sizes are ignored")
	fs.StringVar(&c.Seeder, "seeder", c.Seeder, "initial population: "+strings.Join(core.SeederNames(), ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population")
	fs.IntVar(&c.MaskPasses, "mask", c.MaskPasses, "thinning passes for the random seeder")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second (0 means one per frame)")
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory for saved boards")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log ignored input")
	fs.StringVar(&c.AliveColor, "alive", c.AliveColor, "colour of live cells as RRGGBB hex")
	fs.StringVar(&c.DeadColor, "dead", c.DeadColor, "colour of dead cells as RRGGBB hex")
}

// Parse reads flags and up to three positional values "height width
// cellSize" from args. Flags and positionals may be interleaved; everything
// after a "--" terminator is positional. Positionals are ignored when -file
// is set.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		rest := fs.Args()
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	return c.applyPositional(positional)
}

// Colors decodes the -alive and -dead colours.
func (c *Config) Colors() (alive, dead color.RGBA, err error) {
	if alive, err = parseColor(c.AliveColor); err != nil {
		return alive, dead, fmt.Errorf("-alive: %w", err)
	}
	if dead, err = parseColor(c.DeadColor); err != nil {
		return alive, dead, fmt.Errorf("-dead: %w", err)
	}
	return alive, dead, nil
}

func parseColor(s string) (color.RGBA, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(b) != 3 {
		return color.RGBA{}, fmt.Errorf("%q is not an RRGGBB colour", s)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
}

func (c *Config) applyPositional(args []string) error {
	if c.File != "" {
		return nil
	}
	if len(args) > 3 {
		return fmt.Errorf("too many arguments: %q (want height width cellSize)", args)
	}
	dst := []*int{&c.Board.Height, &c.Board.Width, &c.Board.CellSize}
	names := []string{"height", "width", "cellSize"}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("%w: %s %q is not an integer", core.ErrInvalidDimension, names[i], a)
		}
		*dst[i] = v
	}
	return c.Board.Validate()
}

// Initializer resolves the configured seeder.
func (c *Config) Initializer() (core.Initializer, error) {
	s, ok := core.Seeders()[c.Seeder]
	if !ok {
		return nil, fmt.Errorf("unknown seeder %q (have %s)", c.Seeder, strings.Join(core.SeederNames(), ", "))
	}
	size := core.Size{W: c.Board.Width, H: c.Board.Height}
	return s(size, core.SeederOptions{Seed: c.Seed, MaskPasses: c.MaskPasses}), nil
}
