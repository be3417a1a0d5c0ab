// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (wrapped with call-site context)
// and tests check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Call sites wrap with fmt.Errorf("Op: %w", ErrX); callers match via errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> index/shape -> length of supplied row/column -> I/O -> payload.

var (
	// ErrBadShape is returned when requested dimensions are negative.
	// Zero rows or zero columns are a legal empty shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row/column index, an insertion index, or a
	// submatrix placement outside the current bounds. It is always detected
	// before any mutation.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes (Add/Sub with
	// different shapes, Mul with a.Cols != b.Rows) or a supplied row/column
	// whose length does not match the matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrIO indicates that a file could not be opened, created or mapped for
	// the requested direction. The underlying *os.PathError is wrapped too.
	ErrIO = errors.New("matrix: i/o failure")

	// ErrCorruptFile indicates a binary payload that is truncated, oversized
	// or carries dimensions that cannot describe the payload.
	ErrCorruptFile = errors.New("matrix: corrupt binary payload")

	// ErrNaNInf signals a NaN or ±Inf where a finite parameter is required
	// (e.g. AllClose tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrParse indicates text input that does not hold enough numeric tokens.
	ErrParse = errors.New("matrix: cannot parse text")
)
