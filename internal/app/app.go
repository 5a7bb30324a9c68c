//go:build ebiten

package app

import (
	"errors"
	"log"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/sim"
	"lifegrid/internal/statefile"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sim.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *sim.Controller
	painter *render.Painter
	input   sim.InputSource
	pacer   *core.FixedStep
	hud     *ui.HUD
	overlay *ui.Overlay
	verbose bool
}

// New constructs a Game for the provided session.
func New(state *sim.State, cfg *Config) *Game {
	px := state.Config.PixelSize()
	g := &Game{
		painter: render.NewPainter(px.W, px.H),
		input:   ebitenInput{},
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(state.Config),
		verbose: cfg.Verbose,
	}
	if cfg.GPS > 0 {
		g.pacer = core.NewFixedStep(cfg.GPS)
	}
	g.ctrl = sim.New(state, g.painter)
	if alive, dead, err := cfg.Colors(); err == nil {
		g.ctrl.SetColors(alive, dead)
	}
	g.ctrl.SetSaver(statefile.NewDir(cfg.SaveDir))
	g.ctrl.OnError = g.reportError
	g.ctrl.Redraw()
	g.ctrl.Present()
	return g
}

func (g *Game) reportError(err error) {
	if errors.Is(err, sim.ErrPointerOutOfBounds) {
		if g.verbose {
			log.Printf("ignored click: %v", err)
		}
		return
	}
	log.Printf("error: %v", err)
}

// Update drains input, advances at most one generation and presents the frame.
func (g *Game) Update() error {
	g.hud.Update()
	g.overlay.Update()

	last := g.ctrl.Status().LastSave
	if g.ctrl.Drain(g.input.Poll()) {
		return ebiten.Termination
	}
	if st := g.ctrl.Status(); st.LastSave != last {
		log.Printf("saved %s", st.LastSave)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.reload()
	}

	if g.pacer == nil || g.pacer.ShouldStep() {
		g.ctrl.Tick()
	}
	g.ctrl.Present()
	return nil
}

func (g *Game) reload() {
	path := g.ctrl.Status().LastSave
	if path == "" {
		log.Printf("nothing saved yet")
		return
	}
	grid, board, err := statefile.LoadFile(path)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	state, err := sim.NewState(grid, board)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if board.PixelSize() != g.ctrl.State().Config.PixelSize() {
		px := board.PixelSize()
		g.painter = render.NewPainter(px.W, px.H)
		g.ctrl.SetRenderer(g.painter)
		ebiten.SetWindowSize(px.W, px.H)
	}
	g.overlay.SetConfig(board)
	g.ctrl.Reload(state)
	log.Printf("loaded %s", path)
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.ctrl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	px := g.ctrl.State().Config.PixelSize()
	return px.W, px.H
}
