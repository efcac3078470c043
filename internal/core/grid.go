package core

import "fmt"

// State is the value held by a single Wireworld cell.
type State uint8

// The four Wireworld cell states. The numeric encoding matches the board
// file format, so it must not be reordered.
const (
	Empty State = iota
	ElectronHead
	ElectronTail
	Conductor

	numStates
)

// Valid reports whether s is one of the four Wireworld states.
func (s State) Valid() bool { return s < numStates }

// CoerceState maps an arbitrary integer onto a valid state. Anything outside
// the recognized set becomes Empty; this is silent and total so that loaded
// boards with stray values remain usable.
func CoerceState(v int) State {
	if v < 0 || v >= int(numStates) {
		return Empty
	}
	return State(v)
}

// Grid stores a rectangular Wireworld board in row-major order. Both
// dimensions are always at least 1.
type Grid struct {
	rows, cols int
	cells      []State
}

// New allocates an all-Empty grid with the given dimensions.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]State, rows*cols)}, nil
}

// FromRows builds a grid from raw integer rows, typically a deserialized
// board file. The input must be rectangular and non-empty; individual
// values are coerced, never rejected.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidShape)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrInvalidShape, i, len(row), cols)
		}
	}
	g := &Grid{rows: len(rows), cols: cols, cells: make([]State, len(rows)*cols)}
	for r, row := range rows {
		for c, v := range row {
			g.cells[r*cols+c] = CoerceState(v)
		}
	}
	return g, nil
}

// Dims returns the grid dimensions as (rows, cols).
func (g *Grid) Dims() (int, int) { return g.rows, g.cols }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state at (row, col).
func (g *Grid) Get(row, col int) (State, error) {
	if !g.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[g.Index(row, col)], nil
}

// Set stores a state at (row, col). Invalid states are coerced to Empty
// rather than rejected.
func (g *Grid) Set(row, col int, s State) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	if !s.Valid() {
		s = Empty
	}
	g.cells[g.Index(row, col)] = s
	return nil
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []State { return g.cells }

// Clone returns a deep copy sharing no storage with the receiver.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([]State, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Rows exports the grid as integer rows for serialization.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = int(g.cells[g.Index(r, c)])
		}
		out[r] = row
	}
	return out
}

// Equal reports whether two grids have identical dimensions and content.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, s := range g.cells {
		if other.cells[i] != s {
			return false
		}
	}
	return true
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}
