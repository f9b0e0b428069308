//go:build ebiten

package ui

import (
	"image/color"

	"kent-pattern/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws feedback on top of the pattern: a red flash along the edge
// the view cannot pan past, and optional cell grid lines.
type Overlay struct {
	view     *viewport.Controller
	showGrid bool

	flashX      int
	flashY      int
	lastRedraws int
}

const (
	flashTicks    = 20
	flashWidth    = 4
	minGridCell   = 8
	gridLineWidth = 1
)

// NewOverlay constructs an overlay for the given controller.
func NewOverlay(view *viewport.Controller) *Overlay {
	return &Overlay{view: view}
}

// Update toggles the grid with G and refreshes the edge flashes.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if o.flashX > 0 {
		o.flashX--
	}
	if o.flashY > 0 {
		o.flashY--
	}
	n := o.view.Redraws()
	if n == o.lastRedraws {
		return
	}
	o.lastRedraws = n
	x, y := o.view.Clamped()
	if x {
		o.flashX = flashTicks
	}
	if y {
		o.flashY = flashTicks
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := o.view.State()
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	if o.showGrid && s.CellSize >= minGridCell {
		o.drawGrid(screen, s)
	}
	if o.flashX > 0 {
		vector.DrawFilledRect(screen, 0, 0, flashWidth, float32(s.Height), flashColor(o.flashX), false)
	}
	if o.flashY > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(s.Width), flashWidth, flashColor(o.flashY), false)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, s viewport.ViewState) {
	col := color.RGBA{R: 128, G: 128, B: 140, A: 90}
	for x := -(s.OffsetX % s.CellSize); x < s.Width; x += s.CellSize {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(s.Height), gridLineWidth, col, false)
	}
	for y := -(s.OffsetY % s.CellSize); y < s.Height; y += s.CellSize {
		vector.StrokeLine(screen, 0, float32(y), float32(s.Width), float32(y), gridLineWidth, col, false)
	}
}

// flashColor fades the edge marker out over flashTicks.
func flashColor(remaining int) color.RGBA {
	a := uint8(200 * remaining / flashTicks)
	return color.RGBA{R: a, A: a}
}
