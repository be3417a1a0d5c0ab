// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose unexported kernels and storage facts to matrix_test ONLY.
//   - The file is a _test.go file in package matrix, so it never reaches production builds.

import (
	"encoding/binary"

	"github.com/katalvlaran/vecmat/vector"
)

// BufferLen_TestOnly reports len of the backing buffer (must equal Rows*Cols).
func BufferLen_TestOnly(m *Dense) int { return len(m.data) }

// SharesStorage_TestOnly reports whether a and b alias the same backing array.
func SharesStorage_TestOnly(a, b *Dense) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}

	return &a.data[0] == &b.data[0]
}

// DecodeBytes_TestOnly exposes decodeBytes (the LoadMapped decoder).
func DecodeBytes_TestOnly(b []byte, order binary.ByteOrder) (*Dense, error) {
	return decodeBytes(b, order)
}

// EwAllClose_TestOnly exposes the AllClose kernel.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// VecClose_TestOnly exposes the per-element tolerance check.
func VecClose_TestOnly(a, b vector.Vec3, rtol, atol float64) bool {
	return vecClose(a, b, rtol, atol)
}

// OptionsSnapshot_TestOnly resolves opts into (byte order, logger present).
func OptionsSnapshot_TestOnly(opts ...Option) (binary.ByteOrder, bool) {
	o := gatherOptions(opts...)

	return o.byteOrder, o.logger != nil
}
