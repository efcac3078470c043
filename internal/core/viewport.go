package core

// Viewport frames a movable sub-rectangle of a grid for focused editing or
// display. It never affects simulation semantics. Every operation clamps, so
// a viewport is always fully inside the grid it was last clamped against.
type Viewport struct {
	Top, Left  int
	Rows, Cols int
}

// NewViewport returns a viewport of at most rows x cols anchored at (0,0)
// and clamped to the grid.
func NewViewport(g *Grid, rows, cols int) Viewport {
	v := Viewport{Rows: rows, Cols: cols}
	v.SetDims(g, rows, cols)
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTo positions the top-left corner, clamping each axis independently
// into [0, gridDim - viewportDim].
func (v *Viewport) MoveTo(g *Grid, top, left int) {
	v.Top = clamp(top, 0, g.rows-v.Rows)
	v.Left = clamp(left, 0, g.cols-v.Cols)
}

// MoveBy offsets the current position by delta on the given axis (0 = rows,
// 1 = cols), then clamps.
func (v *Viewport) MoveBy(g *Grid, axis, delta int) {
	if axis == 0 {
		v.MoveTo(g, v.Top+delta, v.Left)
		return
	}
	v.MoveTo(g, v.Top, v.Left+delta)
}

// SetDims resizes the viewport, clamping dimensions to the grid's own and to
// a 1x1 minimum, then re-clamps the position. Call it with unchanged
// dimensions to re-validate after the grid itself shrank.
func (v *Viewport) SetDims(g *Grid, rows, cols int) {
	v.Rows = clamp(rows, 1, g.rows)
	v.Cols = clamp(cols, 1, g.cols)
	v.MoveTo(g, v.Top, v.Left)
}

// Contains reports whether the grid coordinate falls inside the viewport.
func (v Viewport) Contains(row, col int) bool {
	return row >= v.Top && row < v.Top+v.Rows && col >= v.Left && col < v.Left+v.Cols
}
