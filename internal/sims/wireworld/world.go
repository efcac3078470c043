package wireworld

import (
	"wireworld/internal/core"
)

// defaultBoard is the demonstration circuit loaded when no board file is
// given: two electron loops feeding a central wire.
var defaultBoard = [][]int{
	{0, 0, 0, 3, 0, 0, 0},
	{0, 3, 0, 3, 0, 3, 0},
	{3, 0, 3, 0, 3, 0, 3},
	{1, 0, 0, 3, 0, 0, 1},
	{2, 0, 3, 3, 3, 0, 2},
	{0, 3, 0, 3, 0, 3, 0},
	{0, 0, 0, 3, 0, 0, 0},
}

// DefaultBoard returns a fresh grid holding the demonstration circuit.
func DefaultBoard() *core.Grid {
	g, err := core.FromRows(defaultBoard)
	if err != nil {
		// The board literal is rectangular; failure here is a programming error.
		panic(err)
	}
	return g
}

// World owns one running Wireworld board: the current grid, the step-zero
// snapshot used for reset, a generation counter and the editing viewport.
// It is synchronous and single-threaded; callers that drive periodic
// stepping must not overlap calls.
type World struct {
	grid       *core.Grid
	original   *core.Grid
	generation int
	viewport   core.Viewport
}

// New creates a World over the given grid, snapshotting it as generation
// zero. The viewport starts at (0,0) as a 10x10 editing window, clamped to
// the board.
func New(g *core.Grid) *World {
	w := &World{}
	w.Load(g)
	return w
}

// Load replaces the board wholesale, re-snapshots the original and resets
// the generation counter. The viewport keeps its dimensions where the new
// board allows.
func (w *World) Load(g *core.Grid) {
	rows, cols := 10, 10
	if w.grid != nil {
		rows, cols = w.viewport.Rows, w.viewport.Cols
	}
	w.grid = g.Clone()
	w.original = g.Clone()
	w.generation = 0
	w.viewport = core.NewViewport(w.grid, rows, cols)
}

// Grid returns the current board. Callers must treat it as read-only;
// edits go through SetCell or CycleCell so they produce change sets.
func (w *World) Grid() *core.Grid { return w.grid }

// Generation returns the number of steps taken since load or reset.
func (w *World) Generation() int { return w.generation }

// Viewport returns the current editing viewport.
func (w *World) Viewport() core.Viewport { return w.viewport }

// Advance steps the board by one generation and returns the cells that
// changed, for incremental repainting.
func (w *World) Advance() core.ChangeSet {
	next := Step(w.grid)
	cs, err := core.Diff(w.grid, next)
	if err != nil {
		// Step preserves dimensions, so a mismatch cannot happen.
		panic(err)
	}
	w.grid = next
	w.generation++
	return cs
}

// SetCell edits a single cell and reports the edit as a one-record change
// set, so edits flow to observers the same way step diffs do. A no-op edit
// returns an empty set.
func (w *World) SetCell(row, col int, s core.State) (core.ChangeSet, error) {
	prev, err := w.grid.Get(row, col)
	if err != nil {
		return nil, err
	}
	if err := w.grid.Set(row, col, s); err != nil {
		return nil, err
	}
	cur, _ := w.grid.Get(row, col)
	if cur == prev {
		return nil, nil
	}
	return core.ChangeSet{{Row: row, Col: col, State: cur}}, nil
}

// CycleCell rotates a cell backwards through the states (Empty, Conductor,
// ElectronTail, ElectronHead, Empty...). Conductor is the most commonly
// drawn state, so it comes first from Empty.
func (w *World) CycleCell(row, col int) (core.ChangeSet, error) {
	cur, err := w.grid.Get(row, col)
	if err != nil {
		return nil, err
	}
	next := core.Conductor
	if cur > core.Empty {
		next = cur - 1
	}
	return w.SetCell(row, col, next)
}

// Reset restores the step-zero snapshot and returns the cells that change
// as a result.
func (w *World) Reset() core.ChangeSet {
	cs, err := core.Diff(w.grid, w.original)
	if err != nil {
		// Resizes re-snapshot, so current and original always share dimensions.
		panic(err)
	}
	w.grid = w.original.Clone()
	w.generation = 0
	return cs
}

// Clear empties the whole board and makes the cleared state the new
// step-zero snapshot.
func (w *World) Clear() {
	w.grid.Clear()
	w.original = w.grid.Clone()
	w.generation = 0
}

// Resize grows or shrinks the board along an edge, keeps the viewport over
// the same logical content via the reported shift, and re-snapshots the
// resized board as the reset point.
func (w *World) Resize(edge core.Edge, count int) error {
	next, axis, shift, err := core.Resize(w.grid, edge, count)
	if err != nil {
		return err
	}
	w.grid = next
	w.original = next.Clone()
	w.viewport.SetDims(w.grid, w.viewport.Rows, w.viewport.Cols)
	if shift != 0 {
		w.viewport.MoveBy(w.grid, axis, shift)
	}
	return nil
}

// MoveViewport shifts the editing viewport by delta on the given axis.
func (w *World) MoveViewport(axis, delta int) {
	w.viewport.MoveBy(w.grid, axis, delta)
}

// ResizeViewport changes the viewport dimensions, clamped to the board, and
// re-clamps its position.
func (w *World) ResizeViewport(rows, cols int) {
	w.viewport.SetDims(w.grid, rows, cols)
}

// CenterViewport moves the viewport so the given cell sits as close to its
// center as clamping allows.
func (w *World) CenterViewport(row, col int) {
	w.viewport.MoveTo(w.grid, row-w.viewport.Rows/2, col-w.viewport.Cols/2)
}

// Scatter redraws the board as random conductor wiring with the given cell
// density, seeds one electron head on a conductor when any exist, and makes
// the result the new step-zero snapshot.
func (w *World) Scatter(seed int64, density float64) {
	rng := core.NewRNG(seed)
	cells := w.grid.Cells()
	conductors := 0
	for i := range cells {
		if rng.Chance(density) {
			cells[i] = core.Conductor
			conductors++
		} else {
			cells[i] = core.Empty
		}
	}
	if conductors > 0 {
		pick := rng.IntN(conductors)
		for i := range cells {
			if cells[i] != core.Conductor {
				continue
			}
			if pick == 0 {
				cells[i] = core.ElectronHead
				break
			}
			pick--
		}
	}
	w.original = w.grid.Clone()
	w.generation = 0
}
