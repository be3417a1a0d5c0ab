// SPDX-License-Identifier: MIT

// Package matrix is a resizable row-major grid of vector.Vec3 elements.
//
// The matrix package provides:
//
//   - Dense: a single contiguous buffer of rows*cols elements with
//     bounds-checked access (At/Ref/Set), deep copy (Clone/CopyFrom) and
//     ownership transfer (Take/Release).
//   - Structural edits: DeleteRow, DeleteColumn, InsertRow, InsertColumn,
//     InsertSubmatrix and single-item edits. Every edit validates first and
//     then rebuilds the buffer, so a failed edit leaves the matrix untouched.
//   - Arithmetic and ordering: Add, Sub, Mul, Scale, Equal and comparisons
//     by total magnitude (the sum of element lengths).
//   - Persistence: a whitespace text form, a raw binary file format
//     (Save/Load/LoadMapped) and a YAML snapshot.
//
// Mul multiplies each left element by the X component of the matching right
// element; Y and Z of the right operand never contribute.
//
// Dense is not safe for concurrent mutation; callers serialize access.
package matrix
