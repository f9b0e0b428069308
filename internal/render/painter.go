//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a Pixels buffer into an ebiten image and draws it.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter returns an empty painter; the image is allocated on first
// Blit.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

// Blit uploads the pixels and draws them at the origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, px *Pixels) {
	w, h := px.Size()
	if w == 0 || h == 0 {
		return
	}
	if gp.img == nil || gp.w != w || gp.h != h {
		if gp.img != nil {
			gp.img.Deallocate()
		}
		gp.img = ebiten.NewImage(w, h)
		gp.w, gp.h = w, h
	}
	gp.img.WritePixels(px.Bytes())
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
