package viewport

// Event is one input notification from the host. The concrete types below
// are the complete set; Handle dispatches on them.
type Event interface {
	event()
}

// PointerDown starts a drag at screen position (X, Y).
type PointerDown struct{ X, Y int }

// PointerMove reports the pointer at (X, Y).
type PointerMove struct{ X, Y int }

// PointerUp ends a drag.
type PointerUp struct{}

// PointerLeave reports the pointer leaving the canvas. It ends a drag.
type PointerLeave struct{}

// PointerEnter reports the pointer entering the canvas. Buttons is the
// pressed-button bitmask; bit 0 is the primary button.
type PointerEnter struct {
	X, Y    int
	Buttons int
}

// Wheel carries a signed vertical scroll delta. Positive values zoom in.
type Wheel struct{ DeltaY float64 }

// WindowResized is a host resize notification. It is honoured only while
// fullscreen is active.
type WindowResized struct{ W, H int }

// FullscreenChanged reports the host's fullscreen state.
type FullscreenChanged struct{ Active bool }

// Action is a discrete control, from a HUD button or a key.
type Action int

const (
	ZoomIn Action = iota
	ZoomOut
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	ToggleFullscreen
)

// String returns the action's short label.
func (a Action) String() string {
	switch a {
	case ZoomIn:
		return "+"
	case ZoomOut:
		return "-"
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Dn"
	case MoveLeft:
		return "Lt"
	case MoveRight:
		return "Rt"
	case ToggleFullscreen:
		return "FS"
	}
	return "?"
}

// Control triggers an Action.
type Control struct{ Action Action }

func (PointerDown) event()       {}
func (PointerMove) event()       {}
func (PointerUp) event()         {}
func (PointerLeave) event()      {}
func (PointerEnter) event()      {}
func (Wheel) event()             {}
func (WindowResized) event()     {}
func (FullscreenChanged) event() {}
func (Control) event()           {}

// Handle applies one input event.
func (c *Controller) Handle(ev Event) error {
	switch e := ev.(type) {
	case PointerDown:
		c.startDrag(e.X, e.Y)
	case PointerEnter:
		if e.Buttons%2 == 1 {
			c.startDrag(e.X, e.Y)
		}
	case PointerMove:
		if !c.dragging {
			return nil
		}
		dx, dy := e.X-c.lastX, e.Y-c.lastY
		c.lastX, c.lastY = e.X, e.Y
		if dx == 0 && dy == 0 {
			return nil
		}
		return c.PanBy(-dx, -dy)
	case PointerUp, PointerLeave:
		c.dragging = false
	case Wheel:
		switch {
		case e.DeltaY > 0:
			return c.IncreaseZoom()
		case e.DeltaY < 0:
			return c.DecreaseZoom()
		}
	case WindowResized:
		if c.fs == fullscreenActive {
			return c.Resize(e.W, e.H)
		}
	case FullscreenChanged:
		return c.fullscreenChanged(e.Active)
	case Control:
		return c.apply(e.Action)
	}
	return nil
}

// Dragging reports whether a pointer drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

func (c *Controller) startDrag(x, y int) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

func (c *Controller) apply(a Action) error {
	switch a {
	case ZoomIn:
		return c.IncreaseZoom()
	case ZoomOut:
		return c.DecreaseZoom()
	case MoveUp:
		return c.Move(Up)
	case MoveDown:
		return c.Move(Down)
	case MoveLeft:
		return c.Move(Left)
	case MoveRight:
		return c.Move(Right)
	case ToggleFullscreen:
		return c.EnterFullscreen()
	}
	return nil
}
