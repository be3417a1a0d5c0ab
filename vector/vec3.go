// SPDX-License-Identifier: MIT

// Package vector - three-component element type stored by matrix.Dense.
//
// Purpose:
//   - Provide the value type (x, y, z) with its arithmetic, equality and magnitude.
//   - Define a fixed 24-byte binary form (three IEEE-754 float64) and a
//     whitespace-delimited text form of exactly three numeric tokens.
//
// Determinism:
//   - All operations are pure value operations; Vec3 is copied by value.
package vector

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is the byte width of one Vec3 in binary form.
const Size = 3 * 8

// componentCount is the number of numeric tokens in the text form.
const componentCount = 3

// ErrParse is returned when text does not hold three numeric tokens.
var ErrParse = errors.New("vector: cannot parse Vec3")

// Vec3 is a three-component vector. The zero value is the zero vector.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the additive identity.
var Zero = Vec3{}

// New returns Vec3{x, y, z}.
func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Equal reports exact componentwise equality.
// NaN components are never equal, matching float64 comparison.
func (v Vec3) Equal(o Vec3) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

// Length returns the Euclidean norm sqrt(x²+y²+z²).
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// IsZero reports whether v equals the zero vector.
func (v Vec3) IsZero() bool { return v.Equal(Zero) }

// String renders v as "x y z" using %g per component.
// The output round-trips through Parse.
func (v Vec3) String() string {
	return strconv.FormatFloat(v.X, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Y, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Z, 'g', -1, 64)
}

// Parse reads exactly three whitespace-separated numeric tokens.
func Parse(s string) (Vec3, error) {
	fields := strings.Fields(s)
	if len(fields) != componentCount {
		return Zero, fmt.Errorf("Parse(%q): %d tokens: %w", s, len(fields), ErrParse)
	}
	var out [componentCount]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Zero, fmt.Errorf("Parse(%q): %w: %v", s, ErrParse, err)
		}
		out[i] = x
	}

	return Vec3{out[0], out[1], out[2]}, nil
}

// PutBinary writes v into dst[:Size] in the given byte order.
// It panics if len(dst) < Size, like binary.ByteOrder.PutUint64.
func (v Vec3) PutBinary(dst []byte, order binary.ByteOrder) {
	_ = dst[Size-1] // bounds check hint
	order.PutUint64(dst[0:8], math.Float64bits(v.X))
	order.PutUint64(dst[8:16], math.Float64bits(v.Y))
	order.PutUint64(dst[16:24], math.Float64bits(v.Z))
}

// ReadBinary decodes a Vec3 from src[:Size] in the given byte order.
func ReadBinary(src []byte, order binary.ByteOrder) Vec3 {
	_ = src[Size-1] // bounds check hint
	return Vec3{
		X: math.Float64frombits(order.Uint64(src[0:8])),
		Y: math.Float64frombits(order.Uint64(src[8:16])),
		Z: math.Float64frombits(order.Uint64(src[16:24])),
	}
}
