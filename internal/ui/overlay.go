//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridCellSize is the smallest cell size for which grid lines stay legible.
const minGridCellSize = 4

// Overlay draws optional cell boundaries and highlights the cell under the
// cursor.
type Overlay struct {
	cfg      core.Config
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay for a board of the given configuration.
func NewOverlay(cfg core.Config) *Overlay {
	o := &Overlay{cfg: cfg}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetConfig follows a reload to a board of a different shape.
func (o *Overlay) SetConfig(cfg core.Config) { o.cfg = cfg }

// Update toggles the grid lines.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.cfg.CellSize
	px := o.cfg.PixelSize()
	if size <= 0 || px.W <= 0 || px.H <= 0 {
		return
	}

	if o.showGrid && size >= minGridCellSize {
		line := color.RGBA{R: 60, G: 60, B: 70, A: 255}
		for col := 1; col < o.cfg.Width; col++ {
			o.drawRect(screen, col*size, 0, 1, px.H, line)
		}
		for row := 1; row < o.cfg.Height; row++ {
			o.drawRect(screen, 0, row*size, px.W, 1, line)
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= px.W || my >= px.H {
		return
	}
	x, y := (mx/size)*size, (my/size)*size
	o.drawRect(screen, x, y, size, size, color.RGBA{R: 64, G: 164, B: 223, A: 90})
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
