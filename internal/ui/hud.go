//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is what the HUD shows about the running board.
type Status struct {
	Generation int
	Rows, Cols int
	Paused     bool
}

// HUD renders the status strip along the top of the board view.
type HUD struct {
	face   *basicfont.Face
	shadow color.Color
	ink    color.Color
}

// NewHUD constructs a HUD using the fixed 7x13 bitmap face.
func NewHUD() *HUD {
	return &HUD{
		face:   basicfont.Face7x13,
		shadow: color.Black,
		ink:    color.White,
	}
}

// Draw paints the status line. The generation counter is zero padded to
// five digits so the line width stays put during playback.
func (h *HUD) Draw(dst *ebiten.Image, st Status) {
	mode := "running"
	if st.Paused {
		mode = "paused"
	}
	line := fmt.Sprintf("step %05d  %dx%d  %s", st.Generation, st.Rows, st.Cols, mode)
	// Offset shadow keeps the text readable over yellow conductors.
	text.Draw(dst, line, h.face, 5, 14, h.shadow)
	text.Draw(dst, line, h.face, 4, 13, h.ink)
}
