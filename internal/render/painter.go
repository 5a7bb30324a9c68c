//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter mirrors a Framebuffer into an ebiten image, uploading only on
// frames that changed.
type Painter struct {
	*Framebuffer
	img *ebiten.Image
}

// NewPainter allocates a painter for a w x h pixel board.
func NewPainter(w, h int) *Painter {
	p := &Painter{Framebuffer: NewFramebuffer(w, h)}
	p.img = ebiten.NewImage(w, h)
	p.OnPresent = p.img.WritePixels
	return p
}

// Draw copies the last presented frame onto dst.
func (p *Painter) Draw(dst *ebiten.Image) {
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}
