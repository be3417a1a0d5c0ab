// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/matrix"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 0, 0)))
	require.NoError(t, matrix.ValidateNotNil(hide{MustDense(t, 1, 1)}))
}

func TestValidateShapes(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulShape(a, MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulShape(a, MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)

	// composite validator checks nil before shape
	err := matrix.ValidateBinarySameShape(nil, MustDense(t, 9, 9))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidateIndex(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateIndex(m, 1, 2))
	for _, ij := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		require.ErrorIs(t, matrix.ValidateIndex(m, ij[0], ij[1]), matrix.ErrOutOfRange)
	}
	require.ErrorIs(t, matrix.ValidateIndex(MustDense(t, 0, 0), 0, 0), matrix.ErrOutOfRange)
}

func TestValidatePlacement(t *testing.T) {
	m := MustDense(t, 4, 4)
	require.NoError(t, matrix.ValidatePlacement(m, 2, 2, 2, 2))
	require.NoError(t, matrix.ValidatePlacement(m, 4, 4, 0, 0))
	require.ErrorIs(t, matrix.ValidatePlacement(m, 3, 3, 2, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidatePlacement(m, -1, 0, 1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidatePlacement(m, 0, 0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidatePlacement(m, 5, 0, 0, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidatePlacement(m, math.MaxInt, 0, 1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidatePlacement(m, 0, math.MaxInt, 1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidatePlacement(m, 1, 1, math.MaxInt, math.MaxInt), matrix.ErrOutOfRange)
}
