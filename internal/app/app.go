//go:build ebiten

package app

import (
	"time"

	"kent-pattern/internal/core"
	"kent-pattern/internal/pattern"
	"kent-pattern/internal/render"
	"kent-pattern/internal/ui"
	"kent-pattern/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panRate = 30

// Game adapts the pattern viewport to the ebiten.Game interface. It polls
// ebiten's input once per tick and feeds it to the controller as events.
type Game struct {
	cfg     *Config
	store   *pattern.Store
	view    *viewport.Controller
	pixels  *render.Pixels
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	panStep *core.FixedStep

	outW, outH   int
	seenW, seenH int
	lastX, lastY int
	inside       bool
	fullscreen   bool
}

// display reports the monitor size less the HUD panel.
type display struct{ hudWidth int }

func (d display) DisplaySize() (int, int) {
	w, h := ebiten.Monitor().Size()
	return w - d.hudWidth, h
}

func (display) RequestFullscreen() { ebiten.SetFullscreen(true) }

// New constructs a Game from the configuration.
func New(cfg *Config) (*Game, error) {
	store, err := cfg.NewStore()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.ParsePalette()
	if err != nil {
		return nil, err
	}
	pixels := render.NewPixels(cfg.Width, cfg.Height, palette)
	view, err := viewport.New(store, pixels, viewport.Config{CellSize: cfg.CellSize, Display: display{hudWidth: cfg.HUDWidth}})
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		store:   store,
		view:    view,
		pixels:  pixels,
		painter: render.NewGridPainter(),
		hud:     ui.NewHUD(paramsOf{store, view}, cfg.HUDWidth),
		overlay: ui.NewOverlay(view),
		panStep: core.NewFixedStep(panRate),
		outW:    cfg.Width + cfg.HUDWidth,
		outH:    cfg.Height,
	}
	g.seenW, g.seenH = g.outW, g.outH
	if err := view.Redraw(); err != nil {
		return nil, err
	}
	return g, nil
}

type paramsOf struct {
	store *pattern.Store
	view  *viewport.Controller
}

func (p paramsOf) Parameters() core.ParameterSnapshot {
	return core.Merge(p.view.Parameters(), p.store.Parameters())
}

// Reset drops the generated pattern. A non-zero seed also reseeds the
// starting sequence.
func (g *Game) Reset(seed int64) error {
	if seed != 0 {
		g.cfg.Seed = seed
		factory := core.Sequences()[g.cfg.Sequence]
		if err := g.store.Configure(g.cfg.Base, factory(g.cfg.Base, seed)); err != nil {
			return err
		}
	} else {
		g.store.Reset()
	}
	return g.view.Redraw()
}

// Update handles per-tick input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(0); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if err := g.syncWindow(); err != nil {
		return err
	}
	for _, ev := range g.events() {
		if err := g.view.Handle(ev); err != nil {
			return err
		}
	}
	if err := g.handlePanKeys(); err != nil {
		return err
	}
	for _, action := range g.hud.Update(g.canvasWidth()) {
		if err := g.control(action); err != nil {
			return err
		}
	}
	g.overlay.Update()
	return g.syncSurface()
}

// syncWindow forwards fullscreen transitions and window size changes.
// Resize notifications go through the controller's event path only while
// fullscreen is active; otherwise the canvas simply follows the window.
func (g *Game) syncWindow() error {
	if fs := ebiten.IsFullscreen(); fs != g.fullscreen {
		g.fullscreen = fs
		if err := g.view.Handle(viewport.FullscreenChanged{Active: fs}); err != nil {
			return err
		}
	}
	if g.outW == g.seenW && g.outH == g.seenH {
		return nil
	}
	g.seenW, g.seenH = g.outW, g.outH
	if g.view.Fullscreen() {
		return g.view.Handle(viewport.WindowResized{W: g.canvasWidth(), H: g.outH})
	}
	return g.view.Resize(g.canvasWidth(), g.outH)
}

// events translates this tick's pointer, wheel and key state into controller
// events.
func (g *Game) events() []viewport.Event {
	var evs []viewport.Event

	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.canvasWidth() && y < g.outH
	switch {
	case inside && !g.inside:
		buttons := 0
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			buttons |= 1
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			buttons |= 2
		}
		evs = append(evs, viewport.PointerEnter{X: x, Y: y, Buttons: buttons})
	case !inside && g.inside:
		evs = append(evs, viewport.PointerLeave{})
	}
	g.inside = inside

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		evs = append(evs, viewport.PointerDown{X: x, Y: y})
	}
	if x != g.lastX || y != g.lastY {
		evs = append(evs, viewport.PointerMove{X: x, Y: y})
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		evs = append(evs, viewport.PointerUp{})
	}

	// ebiten reports scrolling up as positive; the controller zooms in on
	// positive deltas, which belong to scrolling down.
	if _, dy := ebiten.Wheel(); dy != 0 && inside {
		evs = append(evs, viewport.Wheel{DeltaY: -dy})
	}

	keys := []struct {
		key    ebiten.Key
		action viewport.Action
	}{
		{ebiten.KeyEqual, viewport.ZoomIn},
		{ebiten.KeyNumpadAdd, viewport.ZoomIn},
		{ebiten.KeyMinus, viewport.ZoomOut},
		{ebiten.KeyNumpadSubtract, viewport.ZoomOut},
		{ebiten.KeyPageUp, viewport.MoveUp},
		{ebiten.KeyPageDown, viewport.MoveDown},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			evs = append(evs, viewport.Control{Action: k.action})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFullscreen()
	}
	return evs
}

// handlePanKeys pans by one cell per step while an arrow key is held.
func (g *Game) handlePanKeys() error {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		g.panStep.Reset()
		return nil
	}
	if !g.panStep.ShouldStep() {
		return nil
	}
	cell := g.view.State().CellSize
	return g.view.PanBy(dx*cell, dy*cell)
}

func (g *Game) control(a viewport.Action) error {
	if a == viewport.ToggleFullscreen {
		g.toggleFullscreen()
		return nil
	}
	return g.view.Handle(viewport.Control{Action: a})
}

func (g *Game) toggleFullscreen() {
	if g.view.Fullscreen() {
		ebiten.SetFullscreen(false)
		return
	}
	if err := g.view.EnterFullscreen(); err != nil {
		pattern.Logger().Error("enter fullscreen", "err", err)
	}
}

// syncSurface keeps the pixel buffer the same size as the controller's
// canvas, repainting after a reallocation.
func (g *Game) syncSurface() error {
	s := g.view.State()
	if w, h := g.pixels.Size(); w == s.Width && h == s.Height {
		return nil
	}
	g.pixels.Resize(s.Width, s.Height)
	return g.view.Redraw()
}

func (g *Game) canvasWidth() int {
	w := g.outW - g.hud.Width()
	if w < 0 {
		return 0
	}
	return w
}

// Draw renders the current view.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.pixels)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.canvasWidth(), g.outH)
}

// Layout tracks the outside size so Update can forward resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
