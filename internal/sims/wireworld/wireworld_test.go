package wireworld

import (
	"testing"

	"wireworld/internal/core"
)

func gridFrom(t *testing.T, rows [][]int) *core.Grid {
	t.Helper()
	g, err := core.FromRows(rows)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return g
}

func TestSurroundedHeadPropagation(t *testing.T) {
	g := gridFrom(t, [][]int{
		{3, 3, 3},
		{3, 1, 3},
		{3, 3, 3},
	})

	// Every conductor sees exactly one head, so all eight fire at once.
	next := Step(g)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := core.ElectronHead
			if r == 1 && c == 1 {
				want = core.ElectronTail
			}
			if s, _ := next.Get(r, c); s != want {
				t.Fatalf("step 1: cell (%d,%d) = %d, expected %d", r, c, s, want)
			}
		}
	}

	// The center conductor now sees eight heads, far past the 1-or-2 rule.
	after := Step(next)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := core.ElectronTail
			if r == 1 && c == 1 {
				want = core.Conductor
			}
			if s, _ := after.Get(r, c); s != want {
				t.Fatalf("step 2: cell (%d,%d) = %d, expected %d", r, c, s, want)
			}
		}
	}
}

func TestLoneConductorIsAFixedPoint(t *testing.T) {
	g := gridFrom(t, [][]int{{3}})
	cur := g
	for i := 0; i < 5; i++ {
		cur = Step(cur)
		if s, _ := cur.Get(0, 0); s != core.Conductor {
			t.Fatalf("after %d steps lone conductor = %d, expected Conductor", i+1, s)
		}
	}
}

func TestUnconditionalTransitions(t *testing.T) {
	g := gridFrom(t, [][]int{{0, 1, 2}})
	next := Step(g)
	want := []core.State{core.Empty, core.ElectronTail, core.Conductor}
	for c, s := range next.Cells() {
		if s != want[c] {
			t.Fatalf("cell (0,%d) = %d, expected %d", c, s, want[c])
		}
	}
}

func TestConductorFiresOnOneOrTwoHeads(t *testing.T) {
	cases := []struct {
		name  string
		rows  [][]int
		fires bool
	}{
		{"one head", [][]int{{1, 3}}, true},
		{"two heads", [][]int{{1, 3, 1}}, true},
		{"three heads", [][]int{{1, 1, 0}, {1, 3, 0}}, false},
		{"no heads", [][]int{{0, 3}}, false},
	}
	for _, tc := range cases {
		g := gridFrom(t, tc.rows)
		next := Step(g)
		rows, cols := g.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				before, _ := g.Get(r, c)
				if before != core.Conductor {
					continue
				}
				after, _ := next.Get(r, c)
				fired := after == core.ElectronHead
				if fired != tc.fires {
					t.Fatalf("%s: conductor (%d,%d) fired=%v, expected %v", tc.name, r, c, fired, tc.fires)
				}
			}
		}
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := gridFrom(t, [][]int{{1, 3, 3}})
	snapshot := g.Clone()
	_ = Step(g)
	if !g.Equal(snapshot) {
		t.Fatal("Step mutated its input grid")
	}
}

func TestStepIsDeterministic(t *testing.T) {
	g := DefaultBoard()
	a, b := g.Clone(), g.Clone()
	for i := 0; i < 10; i++ {
		a = Step(a)
		b = Step(b)
		if !a.Equal(b) {
			t.Fatalf("runs diverged at step %d", i+1)
		}
	}
}

func TestWorldAdvanceCommitsAndCounts(t *testing.T) {
	w := New(gridFrom(t, [][]int{{1, 3, 3}}))

	cs := w.Advance()
	if w.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", w.Generation())
	}
	// Head becomes tail, first conductor fires: two changes.
	if len(cs) != 2 {
		t.Fatalf("change set has %d records, expected 2", len(cs))
	}
	if s, _ := w.Grid().Get(0, 0); s != core.ElectronTail {
		t.Fatalf("cell (0,0) = %d, expected ElectronTail", s)
	}
	if s, _ := w.Grid().Get(0, 1); s != core.ElectronHead {
		t.Fatalf("cell (0,1) = %d, expected ElectronHead", s)
	}
}

func TestWorldResetRestoresStepZero(t *testing.T) {
	start := gridFrom(t, [][]int{{1, 3, 3}})
	w := New(start)
	w.Advance()
	w.Advance()

	cs := w.Reset()
	if w.Generation() != 0 {
		t.Fatalf("generation after reset = %d, expected 0", w.Generation())
	}
	if !w.Grid().Equal(start) {
		t.Fatal("reset did not restore the original board")
	}
	if len(cs) == 0 {
		t.Fatal("reset after two steps should report changed cells")
	}
}

func TestWorldSetCellReportsSingleChange(t *testing.T) {
	w := New(gridFrom(t, [][]int{{0, 0}, {0, 0}}))

	cs, err := w.SetCell(1, 0, core.Conductor)
	if err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if len(cs) != 1 || cs[0].Row != 1 || cs[0].Col != 0 || cs[0].State != core.Conductor {
		t.Fatalf("change set = %+v, expected single (1,0)=Conductor", cs)
	}

	// Re-setting the same value is a no-op and reports nothing.
	cs, err = w.SetCell(1, 0, core.Conductor)
	if err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if len(cs) != 0 {
		t.Fatalf("no-op edit reported %d changes", len(cs))
	}

	if _, err := w.SetCell(5, 5, core.Conductor); err == nil {
		t.Fatal("SetCell outside the grid should fail")
	}
}

func TestWorldCycleCellOrder(t *testing.T) {
	w := New(gridFrom(t, [][]int{{0}}))
	want := []core.State{core.Conductor, core.ElectronTail, core.ElectronHead, core.Empty}
	for i, expected := range want {
		if _, err := w.CycleCell(0, 0); err != nil {
			t.Fatalf("CycleCell failed: %v", err)
		}
		if s, _ := w.Grid().Get(0, 0); s != expected {
			t.Fatalf("cycle %d: state = %d, expected %d", i+1, s, expected)
		}
	}
}

func TestWorldResizeShiftsViewport(t *testing.T) {
	g, _ := core.New(20, 20)
	w := New(g)
	w.CenterViewport(10, 10)
	before := w.Viewport()

	if err := w.Resize(core.West, 3); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	after := w.Viewport()
	if after.Left != before.Left+3 {
		t.Fatalf("viewport left = %d, expected %d", after.Left, before.Left+3)
	}
	if after.Top != before.Top {
		t.Fatalf("viewport top moved to %d on a column resize", after.Top)
	}
	if _, cols := w.Grid().Dims(); cols != 23 {
		t.Fatalf("cols = %d after west grow, expected 23", cols)
	}

	if err := w.Resize(core.East, 2); err != nil {
		t.Fatalf("east resize failed: %v", err)
	}
	if w.Viewport().Left != after.Left {
		t.Fatal("east resize must not move the viewport")
	}
}

func TestWorldResizeRejectsInvalidCounts(t *testing.T) {
	w := New(gridFrom(t, [][]int{{3, 3}}))
	if err := w.Resize(core.North, 0); err == nil {
		t.Fatal("zero-count resize should fail")
	}
	if err := w.Resize(core.North, -1); err == nil {
		t.Fatal("deleting the only row should fail")
	}
}

func TestWorldScatterSeedsDeterministically(t *testing.T) {
	g1, _ := core.New(16, 16)
	g2, _ := core.New(16, 16)
	w1, w2 := New(g1), New(g2)

	w1.Scatter(7, 0.4)
	w2.Scatter(7, 0.4)
	if !w1.Grid().Equal(w2.Grid()) {
		t.Fatal("same seed produced different boards")
	}

	heads := 0
	for _, s := range w1.Grid().Cells() {
		if s == core.ElectronHead {
			heads++
		}
	}
	if heads != 1 {
		t.Fatalf("scattered board has %d heads, expected exactly 1", heads)
	}
	if w1.Generation() != 0 {
		t.Fatalf("generation = %d after scatter, expected 0", w1.Generation())
	}
}

func TestDefaultBoardShape(t *testing.T) {
	g := DefaultBoard()
	if r, c := g.Dims(); r != 7 || c != 7 {
		t.Fatalf("default board is %dx%d, expected 7x7", r, c)
	}
	// The demo circuit carries both electron loops.
	heads := 0
	for _, s := range g.Cells() {
		if s == core.ElectronHead {
			heads++
		}
	}
	if heads != 2 {
		t.Fatalf("default board has %d heads, expected 2", heads)
	}
}
