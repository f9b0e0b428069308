package app

import (
	"errors"
	"flag"
	"testing"

	"kent-pattern/internal/pattern"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("kent", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-base", "3", "-seq", "counter", "-palette", "#FFF,#F00,#000", "-cell", "8"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Base != 3 || cfg.Sequence != "counter" || cfg.CellSize != 8 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	store, err := cfg.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if store.Base() != 3 {
		t.Fatalf("store base %d", store.Base())
	}
	p, err := cfg.ParsePalette()
	if err != nil || len(p) != 3 {
		t.Fatalf("ParsePalette = %v, %v", p, err)
	}
}

func TestPaletteMustCoverBase(t *testing.T) {
	cfg := NewConfig()
	cfg.Base = 4
	if _, err := cfg.ParsePalette(); !errors.Is(err, pattern.ErrConfiguration) {
		t.Fatalf("short palette err = %v", err)
	}
	cfg.Palette = "not-a-color"
	if _, err := cfg.ParsePalette(); !errors.Is(err, pattern.ErrConfiguration) {
		t.Fatalf("bad palette err = %v", err)
	}
}

func TestDefaultsBuild(t *testing.T) {
	cfg := NewConfig()
	cfg.SetupLogging()
	if _, err := cfg.NewStore(); err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := cfg.ParsePalette(); err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
}

func TestAspectDerivesHeight(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("kent", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "1000", "-aspect", "1.5"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := cfg.ApplyAspect(); err != nil {
		t.Fatalf("ApplyAspect: %v", err)
	}
	if cfg.Height != 667 {
		t.Fatalf("height = %d, want 667", cfg.Height)
	}

	cfg = NewConfig()
	if err := cfg.ApplyAspect(); err != nil || cfg.Height != 600 {
		t.Fatalf("unset aspect changed height to %d (%v)", cfg.Height, err)
	}
	cfg.Aspect = -2
	if err := cfg.ApplyAspect(); !errors.Is(err, pattern.ErrConfiguration) {
		t.Fatalf("negative aspect err = %v", err)
	}
}
