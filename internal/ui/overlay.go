//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"wireworld/internal/core"
)

// Overlay highlights the editing viewport as a rectangle outline over the
// board.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// Toggle flips the overlay visibility and reports the new state.
func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

// Visible reports whether the viewport outline is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Draw outlines the viewport in screen pixels, one cell-scale thick.
func (o *Overlay) Draw(dst *ebiten.Image, v core.Viewport, scale int) {
	if !o.visible {
		return
	}
	x := float64(v.Left * scale)
	y := float64(v.Top * scale)
	w := float64(v.Cols * scale)
	ht := float64(v.Rows * scale)

	o.edge(dst, x, y, w, 1)
	o.edge(dst, x, y+ht-1, w, 1)
	o.edge(dst, x, y, 1, ht)
	o.edge(dst, x+w-1, y, 1, ht)
}

func (o *Overlay) edge(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	dst.DrawImage(o.pixel, op)
}
