// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/echelon/matrix"
)

// Document is the mapping form of a matrix file:
//
//	rows:
//	  - [2, 4, 6, 18]
//	  - [4, 5, 6, 24]
//
// A bare list of rows is accepted as well. JSON files use the same shapes.
type Document struct {
	Rows [][]float64 `yaml:"rows" json:"rows"`
}

// ParseYAML decodes a YAML (or JSON) document holding either a Document
// mapping or a bare list of rows.
func ParseYAML(r io.Reader) (*matrix.Dense, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMatrix
		}

		return nil, fmt.Errorf("ParseYAML: %w", err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var rows [][]float64
	switch root.Kind {
	case yaml.MappingNode:
		var doc Document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("ParseYAML: %v: %w", err, ErrNotNumeric)
		}
		rows = doc.Rows
	case yaml.SequenceNode:
		if err := root.Decode(&rows); err != nil {
			return nil, fmt.Errorf("ParseYAML: %v: %w", err, ErrNotNumeric)
		}
	default:
		return nil, fmt.Errorf("ParseYAML: line %d: expected a list of rows: %w", root.Line, ErrNotNumeric)
	}

	return Build(rows)
}

// LoadFile reads a matrix from path on fs. Files ending in .yaml, .yml or
// .json go through ParseYAML; anything else is parsed as text.
func LoadFile(fs afero.Fs, path string) (*matrix.Dense, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m *matrix.Dense
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		m, err = ParseYAML(f)
	default:
		m, err = ParseText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
