package core

import "fmt"

// Edge identifies one side of the grid for resize operations.
type Edge int

// Grid edges, named like compass faces.
const (
	North Edge = iota
	South
	East
	West
)

// Axis returns 0 for row-axis edges (North/South) and 1 for column-axis
// edges (East/West).
func (e Edge) Axis() int {
	if e == North || e == South {
		return 0
	}
	return 1
}

func (e Edge) String() string {
	switch e {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Resize grows or shrinks the grid along one edge. A positive count inserts
// that many all-Empty rows or columns at the edge; a negative count deletes
// them. Existing content is preserved.
//
// The returned axis and shift tell the caller how existing content moved
// relative to (0,0): shift equals count for North/West edges and 0 for
// South/East, where growth happens past the far edge. Callers use it to
// reposition a viewport over the same logical region.
func Resize(g *Grid, edge Edge, count int) (*Grid, int, int, error) {
	axis := edge.Axis()
	if count == 0 {
		return nil, axis, 0, fmt.Errorf("%w: count must be nonzero", ErrInvalidResize)
	}

	rows, cols := g.rows, g.cols
	if count < 0 {
		dim := rows
		if axis == 1 {
			dim = cols
		}
		if dim+count < 1 {
			return nil, axis, 0, fmt.Errorf("%w: deleting %d from %s leaves dimension below 1",
				ErrInvalidResize, -count, edge)
		}
	}

	newRows, newCols := rows, cols
	if axis == 0 {
		newRows += count
	} else {
		newCols += count
	}

	out := &Grid{rows: newRows, cols: newCols, cells: make([]State, newRows*newCols)}

	// Offsets from old coordinates to new ones. Only North/West edges move
	// existing content.
	rowOff, colOff := 0, 0
	switch edge {
	case North:
		rowOff = count
	case West:
		colOff = count
	}

	for r := 0; r < rows; r++ {
		nr := r + rowOff
		if nr < 0 || nr >= newRows {
			continue
		}
		for c := 0; c < cols; c++ {
			nc := c + colOff
			if nc < 0 || nc >= newCols {
				continue
			}
			out.cells[out.Index(nr, nc)] = g.cells[g.Index(r, c)]
		}
	}

	shift := 0
	if edge == North || edge == West {
		shift = count
	}
	return out, axis, shift, nil
}
