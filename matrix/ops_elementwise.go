// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise kernels (ew*) behind public facades.
//   - Keep loops deterministic with a Dense fast-path over the flat buffer.

package matrix

import (
	"math"

	"github.com/katalvlaran/vecmat/vector"
)

// closeTo reports |x-y| ≤ atol + rtol*|y| for one component.
// Equal infinities are close; NaN is never close.
func closeTo(x, y, rtol, atol float64) bool {
	if x == y {
		return true
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// vecClose applies closeTo to all three components.
func vecClose(a, b vector.Vec3, rtol, atol float64) bool {
	return closeTo(a.X, b.X, rtol, atol) &&
		closeTo(a.Y, b.Y, rtol, atol) &&
		closeTo(a.Z, b.Z, rtol, atol)
}

// ewAllClose is the kernel behind AllClose.
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !vecClose(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At.
	r, c := a.Rows(), a.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !vecClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
