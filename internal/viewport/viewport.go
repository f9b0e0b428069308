// Package viewport maps the pixel canvas onto the pattern grid. It owns the
// zoom level, pan offset and canvas size, turns input events into changes of
// that state, and repaints the visible cells after every change.
package viewport

import (
	"fmt"
	"math"

	"kent-pattern/internal/core"
	"kent-pattern/internal/pattern"
)

const (
	// MinCellSize is the smallest cell edge in pixels. It bounds how much of
	// the pattern a single redraw can request.
	MinCellSize = 2
	// DefaultCellSize is the initial cell edge in pixels.
	DefaultCellSize = 4
	// MaxCellSize caps zooming in. A single cell this size covers any canvas.
	MaxCellSize = math.MaxInt32
)

// ErrConfiguration reports a controller built without a store or surface.
var ErrConfiguration = fmt.Errorf("viewport: %w", pattern.ErrConfiguration)

// Store is the range query the controller draws from.
type Store interface {
	GetArea(x, y, w, h int) (*core.ByteGrid, error)
}

// Display is the host window system used for fullscreen.
type Display interface {
	// DisplaySize reports the full size of the screen.
	DisplaySize() (w, h int)
	// RequestFullscreen asks the host to enter fullscreen. The host reports
	// the outcome later with a FullscreenChanged event.
	RequestFullscreen()
}

// Config holds optional controller settings.
type Config struct {
	CellSize int
	Display  Display
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{CellSize: DefaultCellSize}
}

// ViewState is the controller's view of the canvas. Offsets are in pixels and
// never negative; the remaining fields are derived from them.
type ViewState struct {
	CellSize int
	OffsetX  int
	OffsetY  int
	Width    int
	Height   int

	CellsWide     int
	CellsHigh     int
	HalfCellsWide int
	HalfCellsHigh int
	CellX         int
	CellY         int
}

type fullscreenState int

const (
	windowed fullscreenState = iota
	fullscreenPending
	fullscreenActive
)

// Controller renders the visible part of a pattern onto a surface.
type Controller struct {
	store   Store
	surface core.Surface
	display Display

	state    ViewState
	clampedX bool
	clampedY bool
	redraws  int

	dragging     bool
	lastX, lastY int

	fs             fullscreenState
	savedW, savedH int
}

// New builds a controller sized to the surface. Nothing is drawn until the
// first Redraw or state change.
func New(store Store, surface core.Surface, cfg Config) (*Controller, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil store", ErrConfiguration)
	}
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrConfiguration)
	}
	c := &Controller{store: store, surface: surface, display: cfg.Display}
	c.state.Width, c.state.Height = surface.Size()
	c.state.CellSize = clampCellSize(cfg.CellSize)
	c.recalculate()
	return c, nil
}

func clampCellSize(px int) int {
	switch {
	case px < MinCellSize:
		return MinCellSize
	case px > MaxCellSize:
		return MaxCellSize
	}
	return px
}

// State returns a copy of the current view state.
func (c *Controller) State() ViewState { return c.state }

// Redraws reports how many times the visible area has been painted.
func (c *Controller) Redraws() int { return c.redraws }

// Clamped reports which axes the most recent offset change pushed past the
// origin.
func (c *Controller) Clamped() (x, y bool) { return c.clampedX, c.clampedY }

// Fullscreen reports whether the host confirmed fullscreen.
func (c *Controller) Fullscreen() bool { return c.fs == fullscreenActive }

// Resize sets the canvas size and redraws.
func (c *Controller) Resize(w, h int) error {
	c.setSize(w, h)
	return c.Redraw()
}

func (c *Controller) setSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.state.Width, c.state.Height = w, h
	c.recalculate()
}

// SetCellSize sets the zoom level and redraws. Sizes outside
// [MinCellSize, MaxCellSize] are clamped.
func (c *Controller) SetCellSize(px int) error {
	c.state.CellSize = clampCellSize(px)
	c.recalculate()
	return c.Redraw()
}

// IncreaseZoom doubles the cell size, shifting the offset so the zoom stays
// centred on the canvas. It does nothing once doubling would pass
// MaxCellSize.
func (c *Controller) IncreaseZoom() error {
	if c.state.CellSize > MaxCellSize/2 {
		return nil
	}
	c.state.CellSize *= 2
	c.shift(float64(c.state.Width)/4, float64(c.state.Height)/4)
	return c.Redraw()
}

// DecreaseZoom halves the cell size unless that would go below MinCellSize.
func (c *Controller) DecreaseZoom() error {
	if c.state.CellSize/2 < MinCellSize {
		return nil
	}
	c.state.CellSize /= 2
	c.shift(-float64(c.state.Width)/4, -float64(c.state.Height)/4)
	return c.Redraw()
}

// PanBy moves the view by (dx, dy) pixels. The view cannot move above or to
// the left of the first cell; the excess is dropped.
func (c *Controller) PanBy(dx, dy int) error {
	c.shift(float64(dx), float64(dy))
	return c.Redraw()
}

// Direction names a control-button pan.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Move pans by half the visible cell span in the given direction.
func (c *Controller) Move(d Direction) error {
	stepX := c.state.HalfCellsWide * c.state.CellSize
	stepY := c.state.HalfCellsHigh * c.state.CellSize
	switch d {
	case Up:
		return c.PanBy(0, -stepY)
	case Down:
		return c.PanBy(0, stepY)
	case Left:
		return c.PanBy(-stepX, 0)
	case Right:
		return c.PanBy(stepX, 0)
	}
	return nil
}

func (c *Controller) shift(dx, dy float64) {
	x := int(math.Round(float64(c.state.OffsetX) + dx))
	y := int(math.Round(float64(c.state.OffsetY) + dy))
	c.clampedX, c.clampedY = x < 0, y < 0
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	c.state.OffsetX, c.state.OffsetY = x, y
	c.recalculate()
}

func (c *Controller) recalculate() {
	s := &c.state
	s.CellsWide = ceilDiv(s.Width, s.CellSize)
	s.CellsHigh = ceilDiv(s.Height, s.CellSize)
	s.HalfCellsWide = s.CellsWide / 2
	s.HalfCellsHigh = s.CellsHigh / 2
	s.CellX = s.OffsetX / s.CellSize
	s.CellY = s.OffsetY / s.CellSize
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a-1)/b + 1
}

// Redraw paints every cell that overlaps the canvas. One extra column and
// row cover the partial cells exposed by a sub-cell offset.
func (c *Controller) Redraw() error {
	s := c.state
	area, err := c.store.GetArea(s.CellX, s.CellY, s.CellsWide+1, s.CellsHigh+1)
	if err != nil {
		return fmt.Errorf("viewport: redraw: %w", err)
	}
	originX := -(s.OffsetX % s.CellSize)
	originY := -(s.OffsetY % s.CellSize)
	for row := 0; row < area.H; row++ {
		for col, v := range area.Row(row) {
			c.surface.FillRect(int(v),
				originX+col*s.CellSize, originY+row*s.CellSize,
				s.CellSize, s.CellSize)
		}
	}
	c.redraws++
	return nil
}

// EnterFullscreen saves the windowed size, resizes to the display and asks
// the host for fullscreen. It does nothing without a Display or when
// fullscreen is already active or requested.
func (c *Controller) EnterFullscreen() error {
	if c.display == nil || c.fs != windowed {
		return nil
	}
	c.savedW, c.savedH = c.state.Width, c.state.Height
	c.fs = fullscreenPending
	w, h := c.display.DisplaySize()
	if err := c.Resize(w, h); err != nil {
		return err
	}
	c.display.RequestFullscreen()
	return nil
}

func (c *Controller) fullscreenChanged(active bool) error {
	switch {
	case active:
		if c.fs == windowed {
			c.savedW, c.savedH = c.state.Width, c.state.Height
		}
		c.fs = fullscreenActive
	case c.fs != windowed:
		c.fs = windowed
		return c.Resize(c.savedW, c.savedH)
	}
	return nil
}

// Parameters describes the view for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	s := c.state
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "View",
		Params: []core.Parameter{
			core.IntParam("cell", "Cell size", s.CellSize),
			core.IntParam("offset_x", "Offset X", s.OffsetX),
			core.IntParam("offset_y", "Offset Y", s.OffsetY),
			core.IntParam("cell_x", "Column", s.CellX),
			core.IntParam("cell_y", "Row", s.CellY),
			core.BoolParam("fullscreen", "Fullscreen", c.Fullscreen()),
		},
	}}}
}
