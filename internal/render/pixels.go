package render

import "image"

// Pixels is a Surface backed by an RGBA byte buffer. Rectangles are clipped to
// the buffer, so cells hanging off the canvas edge are drawn partially.
type Pixels struct {
	w, h    int
	buf     []byte
	palette Palette
}

// NewPixels allocates a w*h buffer painted through palette.
func NewPixels(w, h int, palette Palette) *Pixels {
	p := &Pixels{palette: palette}
	p.Resize(w, h)
	return p
}

// Resize reallocates the buffer when the dimensions change.
func (p *Pixels) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == p.w && h == p.h && p.buf != nil {
		return
	}
	p.w, p.h = w, h
	p.buf = make([]byte, 4*w*h)
}

// Size reports the buffer dimensions.
func (p *Pixels) Size() (int, int) { return p.w, p.h }

// Bytes exposes the RGBA buffer in row-major order.
func (p *Pixels) Bytes() []byte { return p.buf }

// FillRect paints the clipped rectangle with palette entry colorIndex.
func (p *Pixels) FillRect(colorIndex, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, p.w, p.h))
	if r.Empty() {
		return
	}
	col := p.palette.Color(colorIndex)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		base := (py*p.w + r.Min.X) * 4
		for px := r.Min.X; px < r.Max.X; px++ {
			p.buf[base+0] = col.R
			p.buf[base+1] = col.G
			p.buf[base+2] = col.B
			p.buf[base+3] = col.A
			base += 4
		}
	}
}

// Image wraps the buffer as an *image.RGBA sharing its memory.
func (p *Pixels) Image() *image.RGBA {
	return &image.RGBA{Pix: p.buf, Stride: 4 * p.w, Rect: image.Rect(0, 0, p.w, p.h)}
}
