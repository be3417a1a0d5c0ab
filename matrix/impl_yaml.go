// SPDX-License-Identifier: MIT

// Package matrix - YAML snapshot.
//
// Shape of the document:
//
//	rows: 2
//	cols: 1
//	data: [[[1, 2, 3]], [[4, 5, 6]]]
//
// data holds one list per row, each element as an [x, y, z] triple.

package matrix

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vecmat/vector"
)

const ctxYAML = "UnmarshalYAML"

// yamlSnapshot is the serialized form of a Dense.
type yamlSnapshot struct {
	Rows int            `yaml:"rows"`
	Cols int            `yaml:"cols"`
	Data [][][3]float64 `yaml:"data,flow"`
}

// Compile-time assertions for yaml conformance.
var (
	_ yaml.Marshaler   = (*Dense)(nil)
	_ yaml.Unmarshaler = (*Dense)(nil)
)

// MarshalYAML implements yaml.Marshaler.
func (m *Dense) MarshalYAML() (interface{}, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MarshalYAML", err)
	}
	snap := yamlSnapshot{Rows: m.r, Cols: m.c, Data: make([][][3]float64, m.r)}
	var i, j int
	for i = 0; i < m.r; i++ {
		row := make([][3]float64, m.c)
		for j = 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			row[j] = [3]float64{v.X, v.Y, v.Z}
		}
		snap.Data[i] = row
	}

	return snap, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The receiver is replaced only
// when the whole document is valid.
//
// Errors:
//   - ErrBadShape for negative rows/cols; ErrDimensionMismatch when data does
//     not match rows×cols; yaml decoding errors as-is.
func (m *Dense) UnmarshalYAML(node *yaml.Node) error {
	var snap yamlSnapshot
	if err := node.Decode(&snap); err != nil {
		return matrixErrorf(ctxYAML, err)
	}
	if snap.Rows < 0 || snap.Cols < 0 {
		return denseErrorf(ctxYAML, snap.Rows, snap.Cols, ErrBadShape)
	}
	if len(snap.Data) != snap.Rows {
		return fmt.Errorf("%s: %d data rows, want %d: %w", ctxYAML, len(snap.Data), snap.Rows, ErrDimensionMismatch)
	}
	// cols is trusted only once every row proves it, so the buffer below is
	// bounded by the decoded data.
	for i, row := range snap.Data {
		if len(row) != snap.Cols {
			return fmt.Errorf("%s: row %d has %d elements, want %d: %w", ctxYAML, i, len(row), snap.Cols, ErrDimensionMismatch)
		}
	}

	buf := make([]vector.Vec3, snap.Rows*snap.Cols)
	for i, row := range snap.Data {
		for j, t := range row {
			buf[i*snap.Cols+j] = vector.New(t[0], t[1], t[2])
		}
	}
	m.r, m.c, m.data = snap.Rows, snap.Cols, buf

	return nil
}
