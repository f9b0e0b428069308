package viewport

import "testing"

func TestDragPans(t *testing.T) {
	c, _ := newController(t, 80, 80, DefaultConfig())
	_ = c.PanBy(20, 20)

	events := []Event{
		PointerMove{X: 0, Y: 0}, // ignored: not dragging
		PointerDown{X: 10, Y: 10},
		PointerMove{X: 4, Y: 6},
		PointerUp{},
		PointerMove{X: 100, Y: 100}, // ignored: drag ended
	}
	for _, ev := range events {
		if err := c.Handle(ev); err != nil {
			t.Fatalf("Handle(%T): %v", ev, err)
		}
	}
	s := c.State()
	if s.OffsetX != 26 || s.OffsetY != 24 {
		t.Fatalf("offset = (%d,%d), want (26,24)", s.OffsetX, s.OffsetY)
	}
	if c.Dragging() {
		t.Fatal("drag should have ended")
	}
}

func TestPointerMoveWithoutDeltaDoesNotRedraw(t *testing.T) {
	c, _ := newController(t, 16, 16, DefaultConfig())
	_ = c.Handle(PointerDown{X: 3, Y: 3})
	_ = c.Handle(PointerMove{X: 3, Y: 3})
	if c.Redraws() != 0 {
		t.Fatalf("zero-delta move redrew %d times", c.Redraws())
	}
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	c, _ := newController(t, 16, 16, DefaultConfig())
	_ = c.Handle(PointerDown{X: 1, Y: 1})
	_ = c.Handle(PointerLeave{})
	if c.Dragging() {
		t.Fatal("leave should end the drag")
	}
}

func TestPointerEnterResumesDragWithPrimaryButton(t *testing.T) {
	c, _ := newController(t, 16, 16, DefaultConfig())
	_ = c.Handle(PointerEnter{X: 5, Y: 5, Buttons: 2})
	if c.Dragging() {
		t.Fatal("secondary button must not start a drag")
	}
	_ = c.Handle(PointerEnter{X: 5, Y: 5, Buttons: 3})
	if !c.Dragging() {
		t.Fatal("primary button held on enter should start a drag")
	}
	_ = c.Handle(PointerMove{X: 1, Y: 5})
	if c.State().OffsetX != 4 {
		t.Fatalf("offset x = %d, want 4", c.State().OffsetX)
	}
}

func TestWheelZooms(t *testing.T) {
	c, _ := newController(t, 40, 40, DefaultConfig())
	_ = c.Handle(Wheel{DeltaY: 3})
	if c.State().CellSize != 8 {
		t.Fatalf("cell size %d after wheel down, want 8", c.State().CellSize)
	}
	_ = c.Handle(Wheel{DeltaY: -1})
	if c.State().CellSize != 4 {
		t.Fatalf("cell size %d after wheel up, want 4", c.State().CellSize)
	}
	redraws := c.Redraws()
	_ = c.Handle(Wheel{})
	if c.Redraws() != redraws {
		t.Fatal("zero wheel delta must be ignored")
	}
}

func TestControlActions(t *testing.T) {
	c, _ := newController(t, 40, 40, DefaultConfig())
	steps := []struct {
		action Action
		cell   int
		x, y   int
	}{
		{ZoomIn, 8, 10, 10},
		{MoveRight, 8, 26, 10},
		{MoveDown, 8, 26, 26},
		{MoveLeft, 8, 10, 26},
		{MoveUp, 8, 10, 10},
		{ZoomOut, 4, 0, 0},
	}
	for _, step := range steps {
		if err := c.Handle(Control{Action: step.action}); err != nil {
			t.Fatalf("%v: %v", step.action, err)
		}
		s := c.State()
		if s.CellSize != step.cell || s.OffsetX != step.x || s.OffsetY != step.y {
			t.Fatalf("after %v: %+v", step.action, s)
		}
	}
}

func TestFullscreenRoundTrip(t *testing.T) {
	display := &fakeDisplay{w: 1920, h: 1080}
	c, _ := newController(t, 400, 300, Config{CellSize: 4, Display: display})

	if err := c.Handle(WindowResized{W: 10, H: 10}); err != nil {
		t.Fatal(err)
	}
	if s := c.State(); s.Width != 400 || s.Height != 300 {
		t.Fatalf("resize notification outside fullscreen applied: %+v", s)
	}

	if err := c.Handle(Control{Action: ToggleFullscreen}); err != nil {
		t.Fatal(err)
	}
	if s := c.State(); s.Width != 1920 || s.Height != 1080 {
		t.Fatalf("fullscreen size %+v", s)
	}
	if display.requested != 1 || c.Fullscreen() {
		t.Fatalf("requested=%d fullscreen=%v", display.requested, c.Fullscreen())
	}
	_ = c.EnterFullscreen()
	if display.requested != 1 {
		t.Fatal("pending request must not be repeated")
	}

	_ = c.Handle(FullscreenChanged{Active: true})
	if !c.Fullscreen() {
		t.Fatal("host confirmation should activate fullscreen")
	}
	_ = c.Handle(WindowResized{W: 1280, H: 720})
	if s := c.State(); s.Width != 1280 || s.Height != 720 {
		t.Fatalf("resize while fullscreen ignored: %+v", s)
	}

	_ = c.Handle(FullscreenChanged{Active: false})
	if s := c.State(); s.Width != 400 || s.Height != 300 || c.Fullscreen() {
		t.Fatalf("exit did not restore: %+v", s)
	}
	_ = c.Handle(WindowResized{W: 10, H: 10})
	if c.State().Width != 400 {
		t.Fatal("resize notifications must stop after exit")
	}
}

func TestFullscreenWithoutDisplay(t *testing.T) {
	c, _ := newController(t, 40, 40, DefaultConfig())
	if err := c.Handle(Control{Action: ToggleFullscreen}); err != nil {
		t.Fatal(err)
	}
	if c.Redraws() != 0 || c.State().Width != 40 {
		t.Fatal("fullscreen without a display must be a no-op")
	}
}
