//go:build !ebiten

package ui

import "wireworld/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Toggle always reports hidden in headless builds.
func (o *Overlay) Toggle() bool { return false }

// Visible always reports hidden in headless builds.
func (o *Overlay) Visible() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, core.Viewport, int) {}
