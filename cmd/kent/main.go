//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"kent-pattern/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.SetupLogging()
	if err := cfg.ApplyAspect(); err != nil {
		log.Fatalf("kent: %v", err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("kent: %v", err)
	}

	ebiten.SetWindowTitle("Kent Pattern")
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
