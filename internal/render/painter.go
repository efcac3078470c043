//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"wireworld/internal/core"
)

// GridPainter keeps a single RGBA image in sync with a Wireworld board.
// After the initial Blit it only rewrites pixels named by change sets, so
// large mostly-static boards cost almost nothing per frame.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	primed     bool
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit repaints every cell from the grid and draws the image scaled into dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, scale int) {
	cells := g.Cells()
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillRGBA(gp.buf, cells)
	gp.img.WritePixels(gp.buf)
	gp.primed = true
	gp.draw(dst, scale)
}

// Apply folds a change set into the image, rewriting only modified cells,
// and draws the result. Falls back to a full Blit before the first prime.
func (gp *GridPainter) Apply(dst *ebiten.Image, g *core.Grid, cs core.ChangeSet, scale int) {
	if !gp.primed {
		gp.Blit(dst, g, scale)
		return
	}
	if len(cs) > 0 {
		applyRGBA(gp.buf, gp.cols, cs)
		gp.img.WritePixels(gp.buf)
	}
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the painter dimensions as (rows, cols).
func (gp *GridPainter) Size() (int, int) { return gp.rows, gp.cols }
