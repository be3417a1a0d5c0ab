// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a single contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Ref/Set return errors instead of panicking.
//   - Own the storage exclusively: Clone/CopyFrom deep-copy, Take transfers, Release empties.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Ref/Set: O(1); Clone/CopyFrom: O(r*c); Take/Release: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecmat/vector"
)

// ---------- error context tags ----------

const (
	ctxNew  = "NewDense"
	ctxFrom = "NewDenseFrom"
	ctxRows = "NewDenseFromRows"
	ctxAt   = "At"
	ctxRef  = "Ref"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxCol  = "Col"
	ctxCopy = "CopyFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtRowTerm = "\n"
)

// denseErrorf wraps a sentinel with a uniform Dense context and coordinates.
// Format: "Dense.<method>(row,col): %w". Errors.Is still matches the sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// denseIndexErrorf is denseErrorf for single-index methods (rows or columns).
func denseIndexErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, idx, err)
}

// Dense is a concrete row-major matrix of vector.Vec3.
//   - r,c hold dimensions (rows, cols); either may be zero (empty matrix).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a valid empty (0×0) matrix.
type Dense struct {
	r, c int           // row and column counts (>=0)
	data []vector.Vec3 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an rows×cols matrix of zero vectors.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; zero dimensions are legal.
//
// Implementation:
//   - Stage 1: reject negative dimensions with ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer of rows*cols elements.
//
// Behavior highlights:
//   - A 0×N or N×0 result has no addressable elements; At always fails on it.
//
// Errors:
//   - ErrBadShape (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrBadShape)
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 0.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]vector.Vec3, rows*cols)}
}

// NewDenseFrom builds a rows×cols matrix from a row-major slice.
// The slice is copied; later changes to data do not affect the result.
//
// Errors:
//   - ErrBadShape (negative dimensions), ErrDimensionMismatch (len(data) != rows*cols).
func NewDenseFrom(rows, cols int, data []vector.Vec3) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxFrom, rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(ctxFrom, rows, cols, ErrDimensionMismatch)
	}
	m := newDense(rows, cols)
	copy(m.data, data)

	return m, nil
}

// NewDenseFromRows builds a matrix from a slice of equally sized rows.
// An empty input yields the 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch when rows differ in length.
func NewDenseFromRows(rows [][]vector.Vec3) (*Dense, error) {
	if len(rows) == 0 {
		return newDense(0, 0), nil
	}
	cols := len(rows[0])
	m := newDense(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf(ctxRows, i, len(row), ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix has no addressable elements.
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns the ValidateIndex error; public methods wrap it with their context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read; never panics on out-of-range coordinates.
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,Rows) or col ∉ [0,Cols).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (vector.Vec3, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return vector.Zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Ref returns a pointer to the element at (row, col) for in-place updates.
// MAIN DESCRIPTION:
//   - Mutable accessor; writes through the pointer land in the matrix.
//
// Notes:
//   - Every structural edit (Insert*/Delete*) rebuilds the buffer and
//     invalidates previously returned pointers; so do Take, Release and CopyFrom.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
func (m *Dense) Ref(row, col int) (*vector.Vec3, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Set stores v at (row, col); the shape never changes.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
func (m *Dense) Set(row, col int, v vector.Vec3) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]vector.Vec3, error) {
	if i < 0 || i >= m.r {
		return nil, denseIndexErrorf(ctxRow, i, ErrOutOfRange)
	}
	out := make([]vector.Vec3, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]vector.Vec3, error) {
	if j < 0 || j >= m.c {
		return nil, denseIndexErrorf(ctxCol, j, ErrOutOfRange)
	}
	out := make([]vector.Vec3, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy with identical shape and elements.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]vector.Vec3, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Copy-assignment: the receiver adopts src's shape and values, sharing nothing.
//
// Behavior highlights:
//   - Self-assignment (src == m) is a no-op.
//   - Non-*Dense sources are read via At.
//
// Errors:
//   - ErrNilMatrix when src is nil; any error returned by src.At.
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopy, err)
	}
	if d, ok := src.(*Dense); ok {
		if d == m {
			return nil
		}
		cp := d.Clone()
		m.r, m.c, m.data = cp.r, cp.c, cp.data

		return nil
	}

	rows, cols := src.Rows(), src.Cols()
	buf := make([]vector.Vec3, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return fmt.Errorf("Dense.%s: %w", ctxCopy, err)
			}
			buf[i*cols+j] = v
		}
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// Take transfers ownership of the storage to a new *Dense in O(1).
// The receiver is left empty (0×0, no storage).
func (m *Dense) Take() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data}
	m.Release()

	return out
}

// Release drops the storage and leaves the receiver as the 0×0 matrix.
// Calling Release on an already empty matrix is a no-op.
func (m *Dense) Release() {
	m.r, m.c, m.data = 0, 0, nil
}

// Do visits each element in row-major order; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v vector.Vec3) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
func (m *Dense) Apply(f func(i, j int, v vector.Vec3) vector.Vec3) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String renders the text stream form: one line per row, elements
// separated by a single space, each element as "x y z".
// The output is accepted by ReadText for a matrix of the same shape.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.data[base+j].String())
		}
		b.WriteString(_fmtRowTerm)
	}

	return b.String()
}
