// SPDX-License-Identifier: MIT

// Package matrix - text stream form.
//
// Layout: one line per row; elements separated by a single space; each
// element written as its three components "x y z" (%g, shortest repr).
// Reading is shape-driven: the destination must already have the stored
// shape, and exactly rows*cols*3 numeric tokens are consumed.

package matrix

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/vecmat/vector"
)

const (
	ctxWriteText = "WriteText"
	ctxReadText  = "ReadText"
)

// WriteText writes m to w in the text stream form.
// Rows with zero columns still produce an empty line.
//
// Errors:
//   - ErrNilMatrix; any At error; write errors from w.
func WriteText(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxWriteText, err)
	}
	if d, ok := m.(*Dense); ok {
		if _, err := io.WriteString(w, d.String()); err != nil {
			return matrixErrorf(ctxWriteText, err)
		}

		return nil
	}

	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(ctxWriteText, err)
			}
			if j > 0 {
				_, _ = bw.WriteString(_fmtSep)
			}
			_, _ = bw.WriteString(v.String())
		}
		_, _ = bw.WriteString(_fmtRowTerm)
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(ctxWriteText, err)
	}

	return nil
}

// ReadText fills m, in its current shape, from rows*cols*3 whitespace
// separated numeric tokens read from r (line breaks count as whitespace).
// MAIN DESCRIPTION:
//   - No dimension negotiation: size m correctly before reading.
//
// Behavior highlights:
//   - Tokens are parsed into scratch first; on any failure m is unchanged.
//   - r is read token by token via fmt.Fscan; nothing past the last token
//     is consumed when r implements io.RuneScanner (e.g. *bufio.Reader).
//
// Errors:
//   - ErrNilMatrix; ErrParse on a missing or non-numeric token.
func ReadText(r io.Reader, m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxReadText, err)
	}

	scratch := make([]vector.Vec3, len(m.data))
	for idx := range scratch {
		v := &scratch[idx]
		if _, err := fmt.Fscan(r, &v.X, &v.Y, &v.Z); err != nil {
			return fmt.Errorf("%s: element (%d,%d): %w: %w",
				ctxReadText, idx/max(m.c, 1), idx%max(m.c, 1), ErrParse, err)
		}
	}
	copy(m.data, scratch)

	return nil
}
