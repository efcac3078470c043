package core

import "fmt"

// Change records a single cell taking a new state.
type Change struct {
	Row, Col int
	State    State
}

// ChangeSet lists every cell that differs between two grid snapshots. A set
// derived from one comparison holds at most one record per coordinate.
type ChangeSet []Change

// Diff compares two grids of identical dimensions and returns one Change per
// coordinate whose state differs, carrying the value from next. Diff(g, g)
// is always empty.
func Diff(prev, next *Grid) (ChangeSet, error) {
	if prev.rows != next.rows || prev.cols != next.cols {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
			prev.rows, prev.cols, next.rows, next.cols)
	}
	var cs ChangeSet
	for i, s := range next.cells {
		if prev.cells[i] != s {
			cs = append(cs, Change{Row: i / prev.cols, Col: i % prev.cols, State: s})
		}
	}
	return cs, nil
}

// Apply replays every change onto g. Applying Diff(a, b) to a clone of a
// yields a grid equal to b.
func (cs ChangeSet) Apply(g *Grid) error {
	for _, ch := range cs {
		if err := g.Set(ch.Row, ch.Col, ch.State); err != nil {
			return err
		}
	}
	return nil
}
