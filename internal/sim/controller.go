// Package sim drives a Game of Life board: generation stepping, pause state
// and cell toggling. Painting is delegated to a Renderer and input arrives as
// Events, so the package has no display dependency.
package sim

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// ErrPointerOutOfBounds reports a click outside the board's pixel area.
var ErrPointerOutOfBounds = errors.New("pointer out of bounds")

// Mode is the controller's run state.
type Mode int

const (
	Running Mode = iota
	Paused
)

func (m Mode) String() string {
	if m == Paused {
		return "paused"
	}
	return "running"
}

// Renderer receives paint commands for single cells and frame boundaries.
type Renderer interface {
	PaintCell(px, py, size int, c color.Color)
	PresentFrame()
}

// BulkFiller is an optional Renderer extension that paints a whole board at
// one pixel per cell. It reports false when the board does not match its
// surface.
type BulkFiller interface {
	Fill(cells []uint8, alive, dead color.Color) bool
}

// Saver persists a board and reports where it went.
type Saver interface {
	Save(grid *core.Grid, cfg core.Config) (string, error)
}

// State is everything a session knows about the board.
type State struct {
	Grid   *core.Grid
	Config core.Config
}

// NewState pairs a grid with its configuration after checking they agree.
func NewState(grid *core.Grid, cfg core.Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", core.ErrInvalidDimension)
	}
	if h, w := grid.Dimensions(); h != cfg.Height || w != cfg.Width {
		return nil, fmt.Errorf("%w: grid %dx%d does not match config %dx%d",
			core.ErrInvalidDimension, h, w, cfg.Height, cfg.Width)
	}
	return &State{Grid: grid, Config: cfg}, nil
}

// Status is a snapshot for display.
type Status struct {
	Generation int
	Population int
	Mode       Mode
	LastSave   string
}

// Controller mediates between the board, the rule engine and the collaborators.
type Controller struct {
	state    *State
	engine   *life.Life
	renderer Renderer
	saver    Saver

	mode       Mode
	quit       bool
	generation int
	lastSave   string

	// OnError, when set, is told about recoverable errors such as clicks
	// outside the board.
	OnError func(error)

	alive color.Color
	dead  color.Color
}

// New returns a Running controller for state. A nil renderer discards paint
// commands.
func New(state *State, r Renderer) *Controller {
	if r == nil {
		r = discard{}
	}
	return &Controller{
		state:    state,
		engine:   life.New(state.Grid),
		renderer: r,
		mode:     Running,
		alive:    color.White,
		dead:     color.Black,
	}
}

// Reload replaces the board with a freshly loaded state. The controller
// returns to Running at generation zero; pause state is never persisted.
func (c *Controller) Reload(state *State) {
	c.state = state
	c.engine = life.New(state.Grid)
	c.mode = Running
	c.generation = 0
	c.Redraw()
}

// SetRenderer redirects paint commands, e.g. after a reload changes the
// board's pixel size.
func (c *Controller) SetRenderer(r Renderer) {
	if r == nil {
		r = discard{}
	}
	c.renderer = r
}

// SetSaver configures where EventSave writes.
func (c *Controller) SetSaver(s Saver) { c.saver = s }

// SetColors overrides the alive and dead paint colours.
func (c *Controller) SetColors(alive, dead color.Color) {
	c.alive, c.dead = alive, dead
}

// State returns the session state.
func (c *Controller) State() *State { return c.state }

// Mode returns Running or Paused.
func (c *Controller) Mode() Mode { return c.mode }

// Quit reports whether a quit event has been seen.
func (c *Controller) Quit() bool { return c.quit }

// Status returns the counters shown on the HUD.
func (c *Controller) Status() Status {
	return Status{
		Generation: c.generation,
		Population: c.state.Grid.Population(),
		Mode:       c.mode,
		LastSave:   c.lastSave,
	}
}

// Handle applies a single event.
func (c *Controller) Handle(ev Event) error {
	switch ev.Kind {
	case EventQuit:
		c.quit = true
	case EventTogglePause:
		if c.mode == Running {
			c.mode = Paused
		} else {
			c.mode = Running
		}
	case EventPointerClick:
		return c.click(ev.X, ev.Y)
	case EventStepOnce:
		c.advance()
	case EventSave:
		if c.saver == nil {
			return errors.New("sim: no saver configured")
		}
		path, err := c.saver.Save(c.state.Grid, c.state.Config)
		if err != nil {
			return err
		}
		c.lastSave = path
	case EventClear:
		c.state.Grid.Clear()
		c.Redraw()
	default:
		return fmt.Errorf("sim: unknown event kind %d", ev.Kind)
	}
	return nil
}

// Drain applies events in order and reports whether the loop should stop.
// Events after a quit are dropped. Recoverable errors go to OnError.
func (c *Controller) Drain(evs []Event) bool {
	for _, ev := range evs {
		if c.quit {
			break
		}
		if err := c.Handle(ev); err != nil && c.OnError != nil {
			c.OnError(err)
		}
	}
	return c.quit
}

// Tick advances one generation when Running and reports whether it did.
func (c *Controller) Tick() bool {
	if c.mode != Running || c.quit {
		return false
	}
	c.advance()
	return true
}

// Iterate is one pass of the cooperative loop: drain input, tick at most
// once, present the frame. It reports whether the loop should stop.
func (c *Controller) Iterate(evs []Event) bool {
	if c.Drain(evs) {
		return true
	}
	c.Tick()
	c.Present()
	return false
}

// Run loops over Iterate until a quit event arrives or ctx is done.
func (c *Controller) Run(ctx context.Context, src InputSource) error {
	c.Redraw()
	c.Present()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Iterate(src.Poll()) {
			return nil
		}
	}
}

// Redraw paints every cell.
func (c *Controller) Redraw() {
	g := c.state.Grid
	if bf, ok := c.renderer.(BulkFiller); ok && c.state.Config.CellSize == 1 {
		if bf.Fill(g.Cells(), c.alive, c.dead) {
			return
		}
	}
	h, w := g.Dimensions()
	cells := g.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c.paint(row, col, cells[row*w+col] != 0)
		}
	}
}

// Present tells the renderer the frame is complete.
func (c *Controller) Present() { c.renderer.PresentFrame() }

// CellAt maps a pixel position to the cell drawn there.
func (c *Controller) CellAt(px, py int) (core.Coord, error) {
	size := c.state.Config.CellSize
	if px < 0 || py < 0 {
		return core.Coord{}, fmt.Errorf("%w: pixel (%d,%d)", ErrPointerOutOfBounds, px, py)
	}
	cell := core.Coord{Row: py / size, Col: px / size}
	if !c.state.Grid.Contains(cell.Row, cell.Col) {
		return core.Coord{}, fmt.Errorf("%w: pixel (%d,%d)", ErrPointerOutOfBounds, px, py)
	}
	return cell, nil
}

func (c *Controller) click(px, py int) error {
	cell, err := c.CellAt(px, py)
	if err != nil {
		return err
	}
	alive, err := c.state.Grid.Toggle(cell.Row, cell.Col)
	if err != nil {
		return err
	}
	c.paint(cell.Row, cell.Col, alive)
	return nil
}

func (c *Controller) advance() {
	c.engine.Step()
	c.state.Grid = c.engine.Grid()
	c.generation++
	c.Redraw()
}

func (c *Controller) paint(row, col int, alive bool) {
	size := c.state.Config.CellSize
	fill := c.dead
	if alive {
		fill = c.alive
	}
	c.renderer.PaintCell(col*size, row*size, size, fill)
}

type discard struct{}

func (discard) PaintCell(int, int, int, color.Color) {}
func (discard) PresentFrame()                        {}
