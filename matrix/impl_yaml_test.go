// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

func TestYAML_Document(t *testing.T) {
	m := MustRows(t, []vector.Vec3{v(1, 2, 3)}, []vector.Vec3{v(4, 5, 6.5)})

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, "rows: 2\ncols: 1\ndata: [[[1, 2, 3]], [[4, 5, 6.5]]]\n", string(out))

	var got matrix.Dense
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.True(t, matrix.Equal(m, &got))
}

func TestYAML_EmptyShapes(t *testing.T) {
	for _, m := range []*matrix.Dense{MustDense(t, 0, 0), MustDense(t, 2, 0)} {
		out, err := yaml.Marshal(m)
		require.NoError(t, err)

		var got matrix.Dense
		require.NoError(t, yaml.Unmarshal(out, &got))
		MustDims(t, &got, m.Rows(), m.Cols())
	}
}

func TestYAML_Invalid(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"negative rows":  {"rows: -1\ncols: 1\ndata: []\n", matrix.ErrBadShape},
		"missing row":    {"rows: 2\ncols: 1\ndata: [[[1, 2, 3]]]\n", matrix.ErrDimensionMismatch},
		"ragged row":     {"rows: 1\ncols: 2\ndata: [[[1, 2, 3]]]\n", matrix.ErrDimensionMismatch},
		"extra elements": {"rows: 1\ncols: 1\ndata: [[[1, 2, 3], [4, 5, 6]]]\n", matrix.ErrDimensionMismatch},
		// cols contradicted by data; rows*cols must never be allocated
		"huge cols":           {"rows: 2\ncols: 4611686018427387904\ndata: [[], []]\n", matrix.ErrDimensionMismatch},
		"overflowing product": {"rows: 4\ncols: 4611686018427387904\ndata: [[], [], [], []]\n", matrix.ErrDimensionMismatch},
	}
	for name, tc := range cases {
		m := SeqDense(t, 1, 1)
		before := m.Clone()
		var err error
		require.NotPanics(t, func() { err = yaml.Unmarshal([]byte(tc.doc), m) }, name)
		require.ErrorIs(t, err, tc.want, name)
		require.True(t, matrix.Equal(before, m), name)
	}

	// a component triple of the wrong length is a yaml decoding error
	m := SeqDense(t, 1, 1)
	require.Error(t, yaml.Unmarshal([]byte("rows: 1\ncols: 1\ndata: [[[1, 2]]]\n"), m))
}

func TestYAML_MarshalNil(t *testing.T) {
	var m *matrix.Dense
	var (
		out interface{}
		err error
	)
	require.NotPanics(t, func() { out, err = m.MarshalYAML() })
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Nil(t, out)
}

func TestYAML_ZeroRowsIgnoresCols(t *testing.T) {
	var m matrix.Dense
	require.NoError(t, yaml.Unmarshal([]byte("rows: 0\ncols: 3\ndata: []\n"), &m))
	MustDims(t, &m, 0, 3)
	require.True(t, m.IsEmpty())
}
