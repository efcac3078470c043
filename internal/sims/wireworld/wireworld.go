package wireworld

import "wireworld/internal/core"

// Step computes one Wireworld generation and returns it as a new grid. The
// input grid is never mutated and every cell is evaluated against the
// pre-step grid, so mutation order cannot leak between cells:
//
//	Empty         -> Empty
//	ElectronHead  -> ElectronTail
//	ElectronTail  -> Conductor
//	Conductor     -> ElectronHead iff 1 or 2 Moore neighbors are heads
//
// The neighborhood is clipped at the grid boundary, not wrapped: a corner
// cell sees at most 3 neighbors, an edge cell at most 5.
func Step(g *core.Grid) *core.Grid {
	rows, cols := g.Dims()
	cur := g.Cells()
	out := g.Clone()
	nxt := out.Cells()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := g.Index(r, c)
			switch cur[idx] {
			case core.ElectronHead:
				nxt[idx] = core.ElectronTail
			case core.ElectronTail:
				nxt[idx] = core.Conductor
			case core.Conductor:
				if n := headNeighbors(g, r, c); n == 1 || n == 2 {
					nxt[idx] = core.ElectronHead
				}
			}
		}
	}
	return out
}

// headNeighbors counts ElectronHead cells in the clipped Moore neighborhood
// of (row, col).
func headNeighbors(g *core.Grid, row, col int) int {
	cells := g.Cells()
	heads := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if !g.InBounds(nr, nc) {
				continue
			}
			if cells[g.Index(nr, nc)] == core.ElectronHead {
				heads++
			}
		}
	}
	return heads
}
