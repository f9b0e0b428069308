package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Canvas is a Surface drawing into an off-screen gg context, used to export
// snapshots of the pattern.
type Canvas struct {
	dc      *gg.Context
	palette Palette
	err     error
}

// NewCanvas creates a w*h canvas painted through palette.
func NewCanvas(w, h int, palette Palette) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h), palette: palette}
}

// Size reports the canvas dimensions.
func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

// FillRect paints a rectangle with palette entry colorIndex.
func (c *Canvas) FillRect(colorIndex, x, y, w, h int) {
	c.dc.SetColor(c.palette.Color(colorIndex))
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = err
	}
}

// Err returns the first fill error, if any.
func (c *Canvas) Err() error { return c.err }

// Image returns the rendered image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Close releases the context's resources.
func (c *Canvas) Close() error { return c.dc.Close() }
