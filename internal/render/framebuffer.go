package render

import (
	"image"
	"image/color"
)

// Framebuffer is an in-memory RGBA surface that accepts per-cell paint
// commands. It satisfies sim.Renderer.
type Framebuffer struct {
	w, h   int
	pix    []byte
	frames int
	dirty  bool

	// OnPresent, when set, receives the pixels at each frame boundary.
	OnPresent func(pix []byte)
}

// NewFramebuffer allocates a w x h pixel surface cleared to transparent black.
func NewFramebuffer(w, h int) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Framebuffer{w: w, h: h, pix: make([]byte, 4*w*h)}
}

// PaintCell fills a size x size block with top-left corner (px, py). Parts
// of the block outside the surface are clipped.
func (f *Framebuffer) PaintCell(px, py, size int, c color.Color) {
	x0, y0 := max(px, 0), max(py, 0)
	x1, y1 := min(px+size, f.w), min(py+size, f.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	fillRectRGBA(f.pix, f.w, x0, y0, x1-x0, y1-y0, rgba8(c))
	f.dirty = true
}

// PresentFrame marks the end of a frame.
func (f *Framebuffer) PresentFrame() {
	f.frames++
	if f.OnPresent != nil && f.dirty {
		f.OnPresent(f.pix)
	}
	f.dirty = false
}

// Fill paints the surface from binary cell data at one pixel per cell. It
// reports false, painting nothing, unless cells holds exactly w*h entries.
func (f *Framebuffer) Fill(cells []uint8, on, off color.Color) bool {
	if len(cells) != f.w*f.h {
		return false
	}
	fillBinaryRGBA(f.pix, cells, on, off)
	f.dirty = true
	return true
}

// Frames counts presented frames.
func (f *Framebuffer) Frames() int { return f.frames }

// At returns the colour of a single pixel.
func (f *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return color.RGBA{}
	}
	i := (y*f.w + x) * 4
	return color.RGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// Image copies the surface into an image.RGBA.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	copy(img.Pix, f.pix)
	return img
}
