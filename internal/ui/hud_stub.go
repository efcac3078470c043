//go:build !ebiten

package ui

// Status is what the HUD shows about the running board.
type Status struct {
	Generation int
	Rows, Cols int
	Paused     bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns an inert HUD in the headless build.
func NewHUD() *HUD { return &HUD{} }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}
