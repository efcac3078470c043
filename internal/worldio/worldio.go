// Package worldio reads and writes Wireworld boards as human-editable YAML:
// a plain list of integer rows, one flow-style sequence per board row.
package worldio

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"wireworld/internal/core"
)

// Suffix is appended to save paths that do not already carry it.
const Suffix = ".yaml"

// fileHeader instructs anyone editing the file by hand.
const fileHeader = `# this file should be YAML format containing a rectangular array of states (0-3) for use in Wireworld
# there should be no other YAML content
# e.g.
# - [0, 1, 2]
# - [1, 0, 1]
# - [3, 3, 3]

`

// Save writes the board to path, appending the .yaml suffix when missing,
// and returns the path actually written.
func Save(path string, g *core.Grid) (string, error) {
	if !strings.HasSuffix(path, Suffix) {
		path += Suffix
	}

	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range g.Rows() {
		rowNode := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			rowNode.Content = append(rowNode.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: fmt.Sprintf("%d", v),
			})
		}
		doc.Content = append(doc.Content, rowNode)
	}

	body, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode board: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), body...), 0o644); err != nil {
		return "", fmt.Errorf("write board file: %w", err)
	}
	return path, nil
}

// Load reads a board file. Shape problems surface as core.ErrInvalidShape;
// out-of-range cell values are silently coerced to Empty.
func Load(path string) (*core.Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}
	var rows [][]int
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse board file %s: %w", path, err)
	}
	g, err := core.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("board file %s: %w", path, err)
	}
	return g, nil
}
