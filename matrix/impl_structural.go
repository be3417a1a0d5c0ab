// SPDX-License-Identifier: MIT

// Package matrix - structural edits on Dense.
//
// Purpose:
//   - Resize the grid (rows/columns in or out) while relocating the kept
//     elements to their correct row-major positions.
//   - Overwrite a rectangular region (InsertSubmatrix) or a single cell.
//
// Policy:
//   - Validate first, then allocate a fresh buffer and copy what is kept.
//     A failed edit never leaves a partially resized matrix.
//   - No amortized growth: each row/column edit costs O(r*c).
//   - Pointers obtained via Ref are invalidated by every resizing edit.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/vecmat/vector"
)

const (
	ctxDeleteRow    = "DeleteRow"
	ctxDeleteColumn = "DeleteColumn"
	ctxInsertRow    = "InsertRow"
	ctxInsertColumn = "InsertColumn"
	ctxInsertSub    = "InsertSubmatrix"
	ctxDeleteItem   = "DeleteItem"
	ctxAddItem      = "AddItem"
	ctxAddVectorAt  = "AddVectorAt"
)

// DeleteRow removes row `row`; rows below it move up by one.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < Rows.
//   - Stage 2: copy the prefix [0,row) and suffix (row,Rows) into a buffer of (Rows-1)*Cols.
//
// Errors:
//   - ErrOutOfRange; the matrix is unchanged on error.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) DeleteRow(row int) error {
	if row < 0 || row >= m.r {
		return denseIndexErrorf(ctxDeleteRow, row, ErrOutOfRange)
	}

	buf := make([]vector.Vec3, (m.r-1)*m.c)
	copy(buf, m.data[:row*m.c])
	copy(buf[row*m.c:], m.data[(row+1)*m.c:])

	m.data = buf
	m.r--

	return nil
}

// DeleteColumn removes column `col`; columns to its right move left by one.
//
// Implementation:
//   - Stage 1: validate 0 ≤ col < Cols.
//   - Stage 2: per row, copy [0,col) and (col,Cols) into the new row of width Cols-1.
//
// Errors:
//   - ErrOutOfRange; the matrix is unchanged on error.
func (m *Dense) DeleteColumn(col int) error {
	if col < 0 || col >= m.c {
		return denseIndexErrorf(ctxDeleteColumn, col, ErrOutOfRange)
	}

	nc := m.c - 1
	buf := make([]vector.Vec3, m.r*nc)
	var i, src, dst int
	for i = 0; i < m.r; i++ {
		src = i * m.c
		dst = i * nc
		copy(buf[dst:dst+col], m.data[src:src+col])
		copy(buf[dst+col:dst+nc], m.data[src+col+1:src+m.c])
	}

	m.data = buf
	m.c = nc

	return nil
}

// InsertRow inserts a copy of newRow so that it becomes row `index`.
// MAIN DESCRIPTION:
//   - index may equal Rows (append). Rows [index,Rows) shift down by one.
//
// Behavior highlights:
//   - newRow must hold exactly Cols elements.
//   - On the 0×0 matrix the row defines the width: the result is 1×len(newRow).
//
// Errors:
//   - ErrOutOfRange when index ∉ [0,Rows]; checked first.
//   - ErrDimensionMismatch when len(newRow) != Cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) InsertRow(index int, newRow []vector.Vec3) error {
	if index < 0 || index > m.r {
		return denseIndexErrorf(ctxInsertRow, index, ErrOutOfRange)
	}
	cols := m.c
	if m.r == 0 && m.c == 0 {
		cols = len(newRow) // empty grid adopts the row width
	}
	if len(newRow) != cols {
		return fmt.Errorf("Dense.%s(%d): len %d, want %d: %w",
			ctxInsertRow, index, len(newRow), cols, ErrDimensionMismatch)
	}

	buf := make([]vector.Vec3, (m.r+1)*cols)
	copy(buf, m.data[:index*cols])
	copy(buf[index*cols:(index+1)*cols], newRow)
	copy(buf[(index+1)*cols:], m.data[index*cols:])

	m.data = buf
	m.c = cols
	m.r++

	return nil
}

// InsertColumn inserts a copy of newColumn so that it becomes column `index`.
// MAIN DESCRIPTION:
//   - index may equal Cols (append). Columns [index,Cols) shift right by one.
//
// Behavior highlights:
//   - newColumn[i] lands in row i; it must hold exactly Rows elements.
//   - On the 0×0 matrix the column defines the height: the result is len(newColumn)×1.
//
// Errors:
//   - ErrOutOfRange when index ∉ [0,Cols]; checked first.
//   - ErrDimensionMismatch when len(newColumn) != Rows.
func (m *Dense) InsertColumn(index int, newColumn []vector.Vec3) error {
	if index < 0 || index > m.c {
		return denseIndexErrorf(ctxInsertColumn, index, ErrOutOfRange)
	}
	rows := m.r
	if m.r == 0 && m.c == 0 {
		rows = len(newColumn) // empty grid adopts the column height
	}
	if len(newColumn) != rows {
		return fmt.Errorf("Dense.%s(%d): len %d, want %d: %w",
			ctxInsertColumn, index, len(newColumn), rows, ErrDimensionMismatch)
	}

	nc := m.c + 1
	buf := make([]vector.Vec3, rows*nc)
	var i, src, dst int
	for i = 0; i < rows; i++ {
		src = i * m.c
		dst = i * nc
		copy(buf[dst:dst+index], m.data[src:src+index])
		buf[dst+index] = newColumn[i]
		copy(buf[dst+index+1:dst+nc], m.data[src+index:src+m.c])
	}

	m.data = buf
	m.r = rows
	m.c = nc

	return nil
}

// InsertSubmatrix overwrites the block starting at (startRow, startCol) with sub.
// MAIN DESCRIPTION:
//   - Pure overwrite: the shape never changes and nothing is shifted.
//
// Implementation:
//   - Stage 1: validate sub non-nil and that the block fits.
//   - Stage 2: copy row segments (Dense fast-path) or element-wise via At.
//
// Behavior highlights:
//   - Elements outside the block are untouched.
//   - An empty sub is a no-op as long as the anchor fits.
//   - For a non-*Dense sub, values are read into scratch before writing, so
//     an At failure leaves the receiver untouched.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when startRow+sub.Rows > Rows or startCol+sub.Cols > Cols.
//
// Complexity:
//   - Time O(h*w), Space O(1) on the fast path.
func (m *Dense) InsertSubmatrix(sub Matrix, startRow, startCol int) error {
	if err := ValidateNotNil(sub); err != nil {
		return denseErrorf(ctxInsertSub, startRow, startCol, err)
	}
	h, w := sub.Rows(), sub.Cols()
	if err := ValidatePlacement(m, startRow, startCol, h, w); err != nil {
		return denseErrorf(ctxInsertSub, startRow, startCol, err)
	}

	var i, j, dst int
	if d, ok := sub.(*Dense); ok {
		for i = 0; i < h; i++ {
			dst = (startRow+i)*m.c + startCol
			copy(m.data[dst:dst+w], d.data[i*w:(i+1)*w])
		}

		return nil
	}

	scratch := make([]vector.Vec3, h*w)
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			v, err := sub.At(i, j)
			if err != nil {
				return denseErrorf(ctxInsertSub, startRow, startCol, err)
			}
			scratch[i*w+j] = v
		}
	}
	for i = 0; i < h; i++ {
		dst = (startRow+i)*m.c + startCol
		copy(m.data[dst:dst+w], scratch[i*w:(i+1)*w])
	}

	return nil
}

// DeleteItem resets the element at (row, col) to the zero vector.
// The cell stays in the grid; the shape never changes.
func (m *Dense) DeleteItem(row, col int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxDeleteItem, row, col, err)
	}
	m.data[off] = vector.Zero

	return nil
}

// AddItem overwrites the element at (row, col) with v.
func (m *Dense) AddItem(row, col int, v vector.Vec3) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAddItem, row, col, err)
	}
	m.data[off] = v

	return nil
}

// AddVectorAt accumulates v into the element at (row, col): e = e + v.
func (m *Dense) AddVectorAt(row, col int, v vector.Vec3) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAddVectorAt, row, col, err)
	}
	m.data[off] = m.data[off].Add(v)

	return nil
}
