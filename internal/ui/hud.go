//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"kent-pattern/internal/core"
	"kent-pattern/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the pattern view: the zoom,
// move and fullscreen buttons plus a readout of the current parameters.
type HUD struct {
	params     core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	buttons      []hudButton
	panelOffsetX int

	pixel *ebiten.Image
}

type hudButton struct {
	action viewport.Action
	rect   image.Rectangle
}

// NewHUD constructs a HUD reading from params with the given panel width.
func NewHUD(params core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{params: params, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutButtons()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the parameter readout and returns the actions of any
// buttons clicked this tick.
func (h *HUD) Update(panelOffsetX int) []viewport.Action {
	if h == nil {
		return nil
	}
	h.panelOffsetX = panelOffsetX
	if h.params != nil {
		h.snapshot = h.params.Parameters()
	}
	return h.handleInput()
}

func (h *HUD) handleInput() []viewport.Action {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return nil
	}
	px := mx - h.panelOffsetX
	for _, b := range h.buttons {
		if pointInRect(px, my, b.rect) {
			return []viewport.Action{b.action}
		}
	}
	return nil
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawButtons()
	h.drawReadout()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawReadout() {
	face := basicfont.Face7x13
	y := readoutTop
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
		y += groupGap
	}
}

func (h *HUD) drawButtons() {
	for _, b := range h.buttons {
		h.drawButton(b.rect, b.action.String())
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layoutButtons arranges the controls as a zoom row above a direction pad.
func (h *HUD) layoutButtons() {
	grid := []struct {
		action   viewport.Action
		col, row int
	}{
		{viewport.ZoomIn, 0, 0},
		{viewport.ZoomOut, 1, 0},
		{viewport.ToggleFullscreen, 2, 0},
		{viewport.MoveUp, 1, 1},
		{viewport.MoveLeft, 0, 2},
		{viewport.MoveDown, 1, 2},
		{viewport.MoveRight, 2, 2},
	}
	h.buttons = h.buttons[:0]
	for _, g := range grid {
		x := panelPadding + g.col*(buttonSize+buttonGap)
		y := panelPadding + g.row*(buttonSize+buttonGap)
		h.buttons = append(h.buttons, hudButton{
			action: g.action,
			rect:   image.Rect(x, y, x+buttonSize, y+buttonSize),
		})
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding = 12
	lineHeight   = 16
	groupGap     = 8
	buttonSize   = 30
	buttonGap    = 6
	readoutTop   = panelPadding + 3*(buttonSize+buttonGap) + 18
)
