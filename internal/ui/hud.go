//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudPadding    = 4
)

// HUD prints the generation counter and run state over the board.
type HUD struct {
	visible  bool
	showHelp bool
	backdrop *ebiten.Image
}

// NewHUD returns a visible HUD.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.backdrop = ebiten.NewImage(1, 1)
	h.backdrop.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})
	return h
}

// Update handles the HUD's own key bindings.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		h.showHelp = !h.showHelp
	}
}

// Draw renders the status lines in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, st sim.Status) {
	if h == nil || !h.visible {
		return
	}
	lines := StatusLines(st)
	if h.showHelp {
		lines = append(lines, HelpLine)
	}
	width := 0
	for _, l := range lines {
		if w := len(l) * basicfont.Face7x13.Advance; w > width {
			width = w
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*hudPadding), float64(len(lines)*hudLineHeight+hudPadding))
	screen.DrawImage(h.backdrop, op)

	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, hudPadding, (i+1)*hudLineHeight, color.White)
	}
}
