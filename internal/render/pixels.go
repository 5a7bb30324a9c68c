package render

import "image/color"

// rgba8 converts a colour to 8-bit RGBA components.
func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillRectRGBA paints a w x h rectangle at (x, y) into an RGBA buffer whose
// rows are stride pixels wide. The rectangle must already be clipped.
func fillRectRGBA(buf []byte, stride, x, y, w, h int, px [4]byte) {
	for row := y; row < y+h; row++ {
		base := (row*stride + x) * 4
		for i := 0; i < w; i++ {
			copy(buf[base+i*4:base+i*4+4], px[:])
		}
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	pOn, pOff := rgba8(on), rgba8(off)
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			copy(buf[base:base+4], pOn[:])
			continue
		}
		copy(buf[base:base+4], pOff[:])
	}
}
