// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, the first-component matrix product,
// scalar scaling, equality and ordering by total magnitude. All functions
// perform fail-fast validation and return fresh *Dense results that share
// no storage with their operands.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecmat/vector"
)

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opScale = "Scale"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new matrix containing the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	return elementwise(opAdd, a, b, vector.Vec3.Add)
}

// Sub returns a new matrix containing the element-wise difference a - b.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (*Dense, error) {
	return elementwise(opSub, a, b, vector.Vec3.Sub)
}

// elementwise is the shared kernel of Add and Sub.
func elementwise(op string, a, b Matrix, f func(x, y vector.Vec3) vector.Vec3) (*Dense, error) {
	// Stage 1: Validate
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Stage 2: Allocate result
	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(op, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(op, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Mul returns the a.Rows()×b.Cols() product of a and b.
// Cell (i,j) starts at the zero vector and, for k in [0,a.Cols()), accumulates
// a(i,k) scaled by the X component of b(k,j). Y and Z of b are ignored.
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): triple loop, with fast-path for *Dense.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols)

	var i, j, k int
	// Stage 3: Fast-path for two Dense matrices.
	// i-k-j order keeps the per-cell accumulation in ascending k.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var av vector.Vec3
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] = res.data[rowR+j].Add(av.Scale(db.data[rowB+j].X))
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum := vector.Zero
			for k = 0; k < aCols; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum = sum.Add(av.Scale(bv.X))
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Scale returns a new matrix where each element of m is multiplied by s.
// Fails only on a nil operand. Complexity: O(r·c).
func Scale(m Matrix, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols)

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v.Scale(s)
		}

		return res, nil
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v.Scale(s)
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and componentwise
// equal elements. A shape mismatch is simply false, never an error.
// Two nil operands are equal; a nil and a non-nil are not.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !da.data[idx].Equal(db.data[idx]) {
					return false
				}
			}

			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || !av.Equal(bv) {
				return false
			}
		}
	}

	return true
}

// NotEqual reports !Equal(a, b).
func NotEqual(a, b Matrix) bool { return !Equal(a, b) }

// TotalMagnitude returns the sum of Length() over all elements in row-major
// order. It is the sole basis for ordering. A nil matrix has magnitude 0.
// An implementation whose At fails inside its own bounds yields NaN, which
// makes Less and Greater false against every operand.
func TotalMagnitude(m Matrix) float64 {
	if ValidateNotNil(m) != nil {
		return 0
	}
	sum := 0.0
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			sum += v.Length()
		}

		return sum
	}

	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return math.NaN()
			}
			sum += v.Length()
		}
	}

	return sum
}

// Less reports TotalMagnitude(a) < TotalMagnitude(b).
func Less(a, b Matrix) bool { return TotalMagnitude(a) < TotalMagnitude(b) }

// Greater reports TotalMagnitude(a) > TotalMagnitude(b).
func Greater(a, b Matrix) bool { return TotalMagnitude(a) > TotalMagnitude(b) }

// LessOrEqual is defined as !Greater(a, b), so magnitude ties satisfy both
// LessOrEqual and GreaterOrEqual regardless of shape or values.
func LessOrEqual(a, b Matrix) bool { return !Greater(a, b) }

// GreaterOrEqual is defined as !Less(a, b).
func GreaterOrEqual(a, b Matrix) bool { return !Less(a, b) }

// Compare returns -1 when a is Less than b, +1 when Greater, 0 otherwise.
// Suitable for slices.SortFunc.
func Compare(a, b Matrix) int {
	ma, mb := TotalMagnitude(a), TotalMagnitude(b)
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	default:
		return 0
	}
}

// ---------- Dense method forms ----------

// Add returns m + o. See Add.
func (m *Dense) Add(o Matrix) (*Dense, error) { return Add(m, o) }

// Sub returns m - o. See Sub.
func (m *Dense) Sub(o Matrix) (*Dense, error) { return Sub(m, o) }

// Mul returns the product m × o. See Mul.
func (m *Dense) Mul(o Matrix) (*Dense, error) { return Mul(m, o) }

// Scale returns a new matrix with every element of m scaled by s.
func (m *Dense) Scale(s float64) *Dense {
	res := newDense(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = v.Scale(s)
	}

	return res
}

// Equal reports Equal(m, o).
func (m *Dense) Equal(o Matrix) bool { return Equal(m, o) }

// NotEqual reports NotEqual(m, o).
func (m *Dense) NotEqual(o Matrix) bool { return NotEqual(m, o) }

// TotalMagnitude returns TotalMagnitude(m).
func (m *Dense) TotalMagnitude() float64 { return TotalMagnitude(m) }

// Less reports Less(m, o).
func (m *Dense) Less(o Matrix) bool { return Less(m, o) }

// Greater reports Greater(m, o).
func (m *Dense) Greater(o Matrix) bool { return Greater(m, o) }

// LessOrEqual reports LessOrEqual(m, o).
func (m *Dense) LessOrEqual(o Matrix) bool { return LessOrEqual(m, o) }

// GreaterOrEqual reports GreaterOrEqual(m, o).
func (m *Dense) GreaterOrEqual(o Matrix) bool { return GreaterOrEqual(m, o) }
