// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities shared by the tests.

package matrix_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback paths in code under test.
type hide struct{ matrix.Matrix }

// v is shorthand for vector.New.
func v(x, y, z float64) vector.Vec3 { return vector.New(x, y, z) }

// vx is a vector with only the X component set.
func vx(x float64) vector.Vec3 { return vector.New(x, 0, 0) }

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows ...[]vector.Vec3) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// SeqDense returns an r×c matrix whose element (i,j) is (k, k+0.5, -k) with k = i*c+j+1.
func SeqDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	m.Apply(func(i, j int, _ vector.Vec3) vector.Vec3 {
		k := float64(i*c + j + 1)
		return v(k, k+0.5, -k)
	})

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) vector.Vec3 {
	t.Helper()
	got, err := m.At(i, j)
	require.NoError(t, err)

	return got
}

// MustDims asserts the shape of m.
func MustDims(t *testing.T, m matrix.Matrix, r, c int) {
	t.Helper()
	require.Equal(t, r, m.Rows(), "rows")
	require.Equal(t, c, m.Cols(), "cols")
}

// RequireRows compares every row of m with want and prints a cmp diff on mismatch.
func RequireRows(t *testing.T, want [][]vector.Vec3, m *matrix.Dense) {
	t.Helper()
	MustDims(t, m, len(want), colsOf(want))
	got := make([][]vector.Vec3, m.Rows())
	for i := range got {
		row, err := m.Row(i)
		require.NoError(t, err)
		got[i] = row
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func colsOf(rows [][]vector.Vec3) int {
	if len(rows) == 0 {
		return 0
	}

	return len(rows[0])
}

// TempPath returns a file path inside a per-test temporary directory.
func TempPath(t *testing.T, name string) string {
	t.Helper()

	return filepath.Join(t.TempDir(), name)
}
