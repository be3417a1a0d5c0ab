// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/katalvlaran/vecmat/vector"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new rows×cols matrix of zero vectors.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewFilled returns a rows×cols matrix with every element set to v.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v vector.Vec3) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDense(m.Rows(), m.Cols()), nil
}

// CloneMatrix returns an independent *Dense copy of any Matrix.
func CloneMatrix(m Matrix) (*Dense, error) {
	out := &Dense{}
	if err := out.CopyFrom(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return out, nil
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul (first-component product).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// ScaleBy is an alias for Scale.
func ScaleBy(m Matrix, s float64) (*Dense, error) { return Scale(m, s) }

// ---------- Comparison ----------

// AllClose checks componentwise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every component satisfies the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrNilMatrix, ErrDimensionMismatch).
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Use AllClose where floating rounding is expected; Equal is exact.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
