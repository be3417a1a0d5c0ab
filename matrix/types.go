// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Operations accept Matrix and return *Dense; a *Dense operand unlocks the
// flat-buffer fast path, any other implementation is served via At/Set.
package matrix

import "github.com/katalvlaran/vecmat/vector"

// Matrix represents a two-dimensional mutable grid of vector.Vec3 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (vector.Vec3, error)

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v vector.Vec3) error
}
