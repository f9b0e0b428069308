// Command kent-snapshot renders one view of the Kent Pattern to a PNG file.
package main

import (
	"flag"
	"log"

	"kent-pattern/internal/app"
	"kent-pattern/internal/render"
	"kent-pattern/internal/viewport"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	x := flag.Int("x", 0, "horizontal pixel offset into the pattern")
	y := flag.Int("y", 0, "vertical pixel offset into the pattern")
	zoom := flag.Int("zoom", 0, "zoom steps to apply after panning (negative zooms out)")
	out := flag.String("out", "kent.png", "output PNG path")
	flag.Parse()
	cfg.SetupLogging()
	if err := cfg.ApplyAspect(); err != nil {
		log.Fatalf("kent-snapshot: %v", err)
	}

	if err := snapshot(cfg, *x, *y, *zoom, *out); err != nil {
		log.Fatalf("kent-snapshot: %v", err)
	}
}

func snapshot(cfg *app.Config, x, y, zoom int, out string) error {
	store, err := cfg.NewStore()
	if err != nil {
		return err
	}
	palette, err := cfg.ParsePalette()
	if err != nil {
		return err
	}
	canvas := render.NewCanvas(cfg.Width, cfg.Height, palette)
	defer canvas.Close()

	view, err := viewport.New(store, canvas, viewport.Config{CellSize: cfg.CellSize})
	if err != nil {
		return err
	}
	if err := view.PanBy(x, y); err != nil {
		return err
	}
	for ; zoom > 0; zoom-- {
		if err := view.IncreaseZoom(); err != nil {
			return err
		}
	}
	for ; zoom < 0; zoom++ {
		if err := view.DecreaseZoom(); err != nil {
			return err
		}
	}
	if err := canvas.Err(); err != nil {
		return err
	}
	if err := canvas.SavePNG(out); err != nil {
		return err
	}
	s := view.State()
	log.Printf("wrote %s: %dx%d px, cell %d, top-left cell (%d,%d), %d cells generated",
		out, s.Width, s.Height, s.CellSize, s.CellX, s.CellY, store.Generated())
	return nil
}
