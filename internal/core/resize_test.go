package core

import (
	"errors"
	"testing"
)

func sampleGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := FromRows([][]int{{1, 2, 3}, {3, 0, 1}})
	if err != nil {
		t.Fatalf("sample grid: %v", err)
	}
	return g
}

func TestResizeNorthRoundTrip(t *testing.T) {
	g := sampleGrid(t)

	grown, axis, shift, err := Resize(g, North, 2)
	if err != nil {
		t.Fatalf("grow failed: %v", err)
	}
	if axis != 0 || shift != 2 {
		t.Fatalf("grow north reported axis=%d shift=%d, expected 0/2", axis, shift)
	}
	if r, c := grown.Dims(); r != 4 || c != 3 {
		t.Fatalf("grown dims = %dx%d, expected 4x3", r, c)
	}
	// Inserted rows are empty, content shifted down by two.
	for col := 0; col < 3; col++ {
		for row := 0; row < 2; row++ {
			if s, _ := grown.Get(row, col); s != Empty {
				t.Fatalf("inserted cell (%d,%d) = %d, expected Empty", row, col, s)
			}
		}
	}
	if s, _ := grown.Get(2, 2); s != Conductor {
		t.Fatalf("shifted cell (2,2) = %d, expected Conductor", s)
	}

	back, axis, shift, err := Resize(grown, North, -2)
	if err != nil {
		t.Fatalf("shrink failed: %v", err)
	}
	if axis != 0 || shift != -2 {
		t.Fatalf("shrink north reported axis=%d shift=%d, expected 0/-2", axis, shift)
	}
	if !back.Equal(g) {
		t.Fatal("north grow/shrink round trip did not restore the grid")
	}
}

func TestResizeShiftReporting(t *testing.T) {
	g := sampleGrid(t)

	_, axis, shift, err := Resize(g, West, 1)
	if err != nil {
		t.Fatalf("west insert failed: %v", err)
	}
	if axis != 1 || shift != 1 {
		t.Fatalf("west insert reported axis=%d shift=%d, expected 1/1", axis, shift)
	}

	_, axis, shift, err = Resize(g, East, 1)
	if err != nil {
		t.Fatalf("east insert failed: %v", err)
	}
	if axis != 1 || shift != 0 {
		t.Fatalf("east insert reported axis=%d shift=%d, expected 1/0", axis, shift)
	}

	_, axis, shift, err = Resize(g, South, 3)
	if err != nil {
		t.Fatalf("south insert failed: %v", err)
	}
	if axis != 0 || shift != 0 {
		t.Fatalf("south insert reported axis=%d shift=%d, expected 0/0", axis, shift)
	}
}

func TestResizeEastPreservesContentInPlace(t *testing.T) {
	g := sampleGrid(t)
	grown, _, _, err := Resize(g, East, 2)
	if err != nil {
		t.Fatalf("east grow failed: %v", err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			want, _ := g.Get(r, c)
			got, _ := grown.Get(r, c)
			if got != want {
				t.Fatalf("cell (%d,%d) = %d after east grow, expected %d", r, c, got, want)
			}
		}
	}
	for r := 0; r < 2; r++ {
		for c := 3; c < 5; c++ {
			if s, _ := grown.Get(r, c); s != Empty {
				t.Fatalf("new cell (%d,%d) = %d, expected Empty", r, c, s)
			}
		}
	}
}

func TestResizeRejectsZeroCount(t *testing.T) {
	g := sampleGrid(t)
	if _, _, _, err := Resize(g, North, 0); !errors.Is(err, ErrInvalidResize) {
		t.Fatalf("zero count err = %v, expected ErrInvalidResize", err)
	}
}

func TestResizeRejectsDeletionBelowOne(t *testing.T) {
	g := sampleGrid(t)
	if _, _, _, err := Resize(g, North, -2); !errors.Is(err, ErrInvalidResize) {
		t.Fatalf("deleting both rows err = %v, expected ErrInvalidResize", err)
	}
	if _, _, _, err := Resize(g, East, -3); !errors.Is(err, ErrInvalidResize) {
		t.Fatalf("deleting all columns err = %v, expected ErrInvalidResize", err)
	}
	// Deleting down to exactly one rank is allowed.
	if _, _, _, err := Resize(g, South, -1); err != nil {
		t.Fatalf("deleting to one row failed: %v", err)
	}
}

func TestResizeSouthDeletionDropsFarRows(t *testing.T) {
	g := sampleGrid(t)
	shrunk, _, shift, err := Resize(g, South, -1)
	if err != nil {
		t.Fatalf("south delete failed: %v", err)
	}
	if shift != 0 {
		t.Fatalf("south delete reported shift=%d, expected 0", shift)
	}
	if r, c := shrunk.Dims(); r != 1 || c != 3 {
		t.Fatalf("dims = %dx%d, expected 1x3", r, c)
	}
	want := []State{ElectronHead, ElectronTail, Conductor}
	for c, s := range shrunk.Cells() {
		if s != want[c] {
			t.Fatalf("cell (0,%d) = %d, expected %d", c, s, want[c])
		}
	}
}
