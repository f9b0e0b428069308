//go:build !ebiten

package ui

import (
	"kent-pattern/internal/core"
	"kent-pattern/internal/viewport"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterProvider, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update reports no actions in the headless build.
func (h *HUD) Update(int) []viewport.Action { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
