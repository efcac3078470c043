package worldio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wireworld/internal/core"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	g, err := core.FromRows([][]int{{0, 1, 2}, {3, 3, 0}})
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}

	path, err := Save(filepath.Join(t.TempDir(), "board"), g)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(path, ".yaml") {
		t.Fatalf("saved path %q lacks the .yaml suffix", path)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Equal(g) {
		t.Fatal("loaded board differs from the saved one")
	}
}

func TestSaveKeepsExistingSuffixAndHeader(t *testing.T) {
	g, _ := core.New(1, 2)
	want := filepath.Join(t.TempDir(), "board.yaml")
	path, err := Save(want, g)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != want {
		t.Fatalf("path = %q, expected %q", path, want)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.HasPrefix(string(raw), "# this file should be YAML format") {
		t.Fatal("saved file lacks the instructional header")
	}
	if !strings.Contains(string(raw), "[0, 0]") {
		t.Fatalf("saved file does not use flow-style rows:\n%s", raw)
	}
}

func TestLoadCoercesStrayValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	content := "- [0, 9]\n- [3, -1]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []core.State{core.Empty, core.Empty, core.Conductor, core.Empty}
	for i, s := range g.Cells() {
		if s != want[i] {
			t.Fatalf("cell %d = %d, expected %d", i, s, want[i])
		}
	}
}

func TestLoadRejectsJaggedBoards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("- [0, 1]\n- [0, 1, 2]\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, core.ErrInvalidShape) {
		t.Fatalf("jagged board err = %v, expected core.ErrInvalidShape", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("{ not: [valid"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed YAML should fail to load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("loading a missing file should fail")
	}
}
