package app

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"kent-pattern/internal/core"
	"kent-pattern/internal/pattern"
	"kent-pattern/internal/render"
	"kent-pattern/internal/viewport"
)

// Config represents the command-line parameters shared by the explorer and
// the snapshot tool.
type Config struct {
	Base     int
	Sequence string
	Seed     int64
	Palette  string
	CellSize int
	Width    int
	Height   int
	Aspect   float64
	HUDWidth int
	Debug    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	pc := pattern.DefaultConfig()
	return &Config{
		Base:     pc.Base,
		Sequence: pc.Sequence,
		Seed:     pc.Seed,
		Palette:  render.DefaultPalette().String(),
		CellSize: viewport.DefaultCellSize,
		Width:    800,
		Height:   600,
		HUDWidth: 180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Base, "base", c.Base, "modulus of the pattern (2-256)")
	fs.StringVar(&c.Sequence, "seq", c.Sequence, fmt.Sprintf("starting sequence %v", core.SequenceNames()))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random starting sequences")
	fs.StringVar(&c.Palette, "palette", c.Palette, "comma-separated hex colors, one per value")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "initial cell size in pixels")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.Float64Var(&c.Aspect, "aspect", c.Aspect, "width/height ratio; overrides -height when set")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log pattern generation statistics")
}

// ApplyAspect derives Height from Width when an aspect ratio is set.
func (c *Config) ApplyAspect() error {
	if c.Aspect == 0 {
		return nil
	}
	if !(c.Aspect > 0) || math.IsInf(c.Aspect, 1) {
		return fmt.Errorf("%w: aspect ratio %v must be positive and finite", pattern.ErrConfiguration, c.Aspect)
	}
	c.Height = int(math.Ceil(float64(c.Width) / c.Aspect))
	return nil
}

// PatternConfig returns the store settings.
func (c *Config) PatternConfig() pattern.Config {
	return pattern.Config{Base: c.Base, Sequence: c.Sequence, Seed: c.Seed}
}

// NewStore builds the pattern store described by the configuration.
func (c *Config) NewStore() (*pattern.Store, error) {
	return pattern.NewWithConfig(c.PatternConfig())
}

// ParsePalette parses the palette and checks it has a color for every value.
func (c *Config) ParsePalette() (render.Palette, error) {
	p, err := render.ParsePalette(c.Palette)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pattern.ErrConfiguration, err)
	}
	if len(p) < c.Base {
		return nil, fmt.Errorf("%w: palette has %d colors, base %d needs %d", pattern.ErrConfiguration, len(p), c.Base, c.Base)
	}
	return p, nil
}

// SetupLogging routes generation diagnostics to stderr when Debug is set.
func (c *Config) SetupLogging() {
	if !c.Debug {
		pattern.SetLogger(nil)
		return
	}
	pattern.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
