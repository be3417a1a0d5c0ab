// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// loaders are the two file readers; both must accept exactly what Save writes.
var loaders = map[string]func(string, ...matrix.Option) (*matrix.Dense, error){
	"Load":       matrix.Load,
	"LoadMapped": matrix.LoadMapped,
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, v(1, 2, 3)))
	require.NoError(t, m.Set(1, 1, v(4, 5, 6)))

	path := TempPath(t, "m.bin")
	require.NoError(t, matrix.Save(path, m))

	for name, load := range loaders {
		got, err := load(path)
		require.NoError(t, err, name)
		MustDims(t, got, 2, 2)
		require.Equal(t, 3.0, MustAt(t, got, 0, 0).Z, name)
		require.Equal(t, 5.0, MustAt(t, got, 1, 1).Y, name)
		require.True(t, matrix.Equal(m, got), name)
	}
}

func TestSaveLoad_Shapes(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 0}, {0, 5}, {5, 0}, {1, 1}, {3, 7}} {
		m := SeqDense(t, tc.r, tc.c)
		path := TempPath(t, "shape.bin")
		require.NoError(t, matrix.Save(path, m))

		info, err := os.Stat(path)
		require.NoError(t, err)
		want, ok := matrix.PayloadSize(tc.r, tc.c)
		require.True(t, ok)
		require.Equal(t, want, info.Size())

		for name, load := range loaders {
			got, err := load(path)
			require.NoError(t, err, "%s %dx%d", name, tc.r, tc.c)
			MustDims(t, got, tc.r, tc.c)
			require.True(t, matrix.Equal(m, got))
		}
	}
}

func TestSave_GenericSource(t *testing.T) {
	m := SeqDense(t, 2, 3)
	path := TempPath(t, "generic.bin")
	require.NoError(t, matrix.Save(path, hide{m}))

	got, err := matrix.Load(path)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, got))
}

func TestSave_Overwrites(t *testing.T) {
	path := TempPath(t, "over.bin")
	require.NoError(t, matrix.Save(path, SeqDense(t, 4, 4)))
	require.NoError(t, matrix.Save(path, SeqDense(t, 1, 2)))

	got, err := matrix.Load(path)
	require.NoError(t, err)
	MustDims(t, got, 1, 2)
}

func TestSaveLoad_IOError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "m.bin")

	err := matrix.Save(missing, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)

	for name, load := range loaders {
		got, err := load(missing)
		require.ErrorIs(t, err, matrix.ErrIO, name)
		require.Nil(t, got, name)
	}

	require.ErrorIs(t, matrix.Save(TempPath(t, "nil.bin"), nil), matrix.ErrNilMatrix)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := TempPath(t, "m.bin")
	require.NoError(t, matrix.Save(path, SeqDense(t, 3, 3)))
	full, err := os.ReadFile(path)
	require.NoError(t, err)

	cases := map[string][]byte{
		"empty":          {},
		"short header":   full[:matrix.HeaderSize-1],
		"header only":    full[:matrix.HeaderSize],
		"truncated":      full[:len(full)-1],
		"trailing bytes": append(bytes.Clone(full), 0),
	}
	for name, content := range cases {
		bad := TempPath(t, "bad.bin")
		require.NoError(t, os.WriteFile(bad, content, 0o600))
		for lname, load := range loaders {
			got, err := load(bad)
			require.ErrorIs(t, err, matrix.ErrCorruptFile, "%s/%s", name, lname)
			require.Nil(t, got)
		}
	}
}

func TestLoad_HugeHeaderDoesNotAllocate(t *testing.T) {
	var head [matrix.HeaderSize]byte
	binary.NativeEndian.PutUint64(head[0:8], 1<<40)
	binary.NativeEndian.PutUint64(head[8:16], 1<<40)
	path := TempPath(t, "huge.bin")
	require.NoError(t, os.WriteFile(path, head[:], 0o600))

	for name, load := range loaders {
		_, err := load(path)
		require.ErrorIs(t, err, matrix.ErrCorruptFile, name)
	}
}

func TestSaveLoad_ByteOrder(t *testing.T) {
	m := SeqDense(t, 2, 2)
	path := TempPath(t, "be.bin")
	require.NoError(t, matrix.Save(path, m, matrix.WithByteOrder(binary.BigEndian)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, uint64(2), binary.BigEndian.Uint64(raw[0:8]))
	require.Equal(t, uint64(2), binary.BigEndian.Uint64(raw[8:16]))

	got, err := matrix.LoadMapped(path, matrix.WithByteOrder(binary.BigEndian))
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, got))
}

func TestSave_NativeLayout(t *testing.T) {
	m := MustRows(t, []vector.Vec3{v(1, 2, 3)})
	path := TempPath(t, "native.bin")
	require.NoError(t, matrix.Save(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, matrix.HeaderSize+vector.Size)
	require.Equal(t, uint64(1), binary.NativeEndian.Uint64(raw[0:8]))
	require.Equal(t, uint64(1), binary.NativeEndian.Uint64(raw[8:16]))
	require.Equal(t, v(1, 2, 3), vector.ReadBinary(raw[matrix.HeaderSize:], binary.NativeEndian))
}

func TestEncodeDecode_Stream(t *testing.T) {
	a := SeqDense(t, 2, 3)
	b := SeqDense(t, 1, 1)

	var buf bytes.Buffer
	require.NoError(t, matrix.Encode(&buf, a, matrix.WithByteOrder(binary.LittleEndian)))
	require.NoError(t, matrix.Encode(&buf, b, matrix.WithByteOrder(binary.LittleEndian)))

	// two matrices back to back: Decode stops at the end of each payload
	gotA, err := matrix.Decode(&buf, matrix.WithByteOrder(binary.LittleEndian))
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, gotA))
	gotB, err := matrix.Decode(&buf, matrix.WithByteOrder(binary.LittleEndian))
	require.NoError(t, err)
	require.True(t, matrix.Equal(b, gotB))
	require.Zero(t, buf.Len())

	_, err = matrix.Decode(&buf)
	require.ErrorIs(t, err, matrix.ErrCorruptFile)
}

func TestDecodeBytes_ExactLength(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.Encode(&buf, SeqDense(t, 2, 2), matrix.WithByteOrder(binary.BigEndian)))
	img := buf.Bytes()

	m, err := matrix.DecodeBytes_TestOnly(img, binary.BigEndian)
	require.NoError(t, err)
	MustDims(t, m, 2, 2)

	_, err = matrix.DecodeBytes_TestOnly(img[:len(img)-vector.Size], binary.BigEndian)
	require.ErrorIs(t, err, matrix.ErrCorruptFile)
}

func TestPayloadSize(t *testing.T) {
	n, ok := matrix.PayloadSize(2, 3)
	require.True(t, ok)
	require.Equal(t, int64(matrix.HeaderSize+6*vector.Size), n)

	_, ok = matrix.PayloadSize(-1, 3)
	require.False(t, ok)
	_, ok = matrix.PayloadSize(1<<40, 1<<40)
	require.False(t, ok)
}

func TestSaveLoad_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	path := TempPath(t, "logged.bin")
	require.NoError(t, matrix.Save(path, SeqDense(t, 2, 2), matrix.WithLogger(logger)))
	_, err := matrix.Load(path, matrix.WithLogger(logger))
	require.NoError(t, err)
	_, err = matrix.LoadMapped(path, matrix.WithLogger(logger))
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("matrix saved").Len())
	require.Equal(t, 1, logs.FilterMessage("matrix loaded").Len())
	mapped := logs.FilterMessage("matrix mapped").All()
	require.Len(t, mapped, 1)
	require.Equal(t, path, mapped[0].ContextMap()["path"])
	require.Equal(t, int64(2), mapped[0].ContextMap()["rows"])

	// default options stay silent
	require.NoError(t, matrix.Save(path, SeqDense(t, 1, 1)))
	require.Equal(t, 3, logs.Len())
}
