// SPDX-License-Identifier: MIT

// Package matrix - binary persistence.
//
// File layout (no magic, no padding, byte order = Options.byteOrder, native by default):
//
//	[uint64 rows][uint64 cols][Vec3 × rows*cols, row-major]
//
// Each Vec3 is three IEEE-754 float64 (X, Y, Z), vector.Size bytes in total.
// The uint64 header width is the native unsigned word on 64-bit targets.
//
// Guarantees:
//   - Files are closed on every exit path.
//   - Load/LoadMapped check the header against the file length before they
//     allocate, so a corrupt header cannot trigger a huge allocation.
//   - A failed load never returns a partially filled matrix.

package matrix

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"go.uber.org/zap"

	"github.com/katalvlaran/vecmat/vector"
)

// HeaderSize is the byte length of the rows/cols header.
const HeaderSize = 2 * 8

// decodeChunk caps the elements preallocated by Decode before payload bytes
// actually arrive from the stream.
const decodeChunk = 1 << 16

const (
	ctxSave       = "Save"
	ctxLoad       = "Load"
	ctxLoadMapped = "LoadMapped"
	ctxEncode     = "Encode"
	ctxDecode     = "Decode"
)

// ioErrorf wraps a persistence failure: "<op>(<path>): <sentinel>: <cause>".
// Both the sentinel and the cause stay reachable via errors.Is/As.
func ioErrorf(op, path string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s(%s): %w", op, path, sentinel)
	}

	return fmt.Errorf("%s(%s): %w: %w", op, path, sentinel, cause)
}

// PayloadSize returns the exact file length for a rows×cols matrix,
// or false when the size is not representable.
func PayloadSize(rows, cols int) (int64, bool) {
	if rows < 0 || cols < 0 {
		return 0, false
	}
	if cols != 0 && rows > (math.MaxInt-HeaderSize)/vector.Size/cols {
		return 0, false
	}

	return HeaderSize + int64(rows)*int64(cols)*vector.Size, true
}

// putHeader / parseHeader encode the two dimension words.
func putHeader(dst []byte, rows, cols int, order binary.ByteOrder) {
	order.PutUint64(dst[0:8], uint64(rows))
	order.PutUint64(dst[8:16], uint64(cols))
}

func parseHeader(src []byte, order binary.ByteOrder) (rows, cols int, err error) {
	r, c := order.Uint64(src[0:8]), order.Uint64(src[8:16])
	if r > math.MaxInt || c > math.MaxInt {
		return 0, 0, ErrCorruptFile
	}
	rows, cols = int(r), int(c)
	if _, ok := PayloadSize(rows, cols); !ok {
		return 0, 0, ErrCorruptFile
	}

	return rows, cols, nil
}

// Encode writes m to w in the binary layout.
// Non-*Dense sources are read via At.
//
// Errors:
//   - ErrNilMatrix; any At error; write errors from w (unwrapped cause kept).
func Encode(w io.Writer, m Matrix, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxEncode, err)
	}
	o := gatherOptions(opts...)
	rows, cols := m.Rows(), m.Cols()

	var head [HeaderSize]byte
	putHeader(head[:], rows, cols, o.byteOrder)
	if _, err := w.Write(head[:]); err != nil {
		return matrixErrorf(ctxEncode, err)
	}

	// One row per Write keeps syscalls low without buffering the whole grid.
	row := make([]byte, cols*vector.Size)
	dm, dense := m.(*Dense)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			var v vector.Vec3
			if dense {
				v = dm.data[i*cols+j]
			} else {
				var err error
				if v, err = m.At(i, j); err != nil {
					return matrixErrorf(ctxEncode, err)
				}
			}
			v.PutBinary(row[j*vector.Size:], o.byteOrder)
		}
		if _, err := w.Write(row); err != nil {
			return matrixErrorf(ctxEncode, err)
		}
	}

	return nil
}

// Decode reads one matrix in the binary layout from r.
// The stream is consumed up to the end of the payload; trailing bytes are
// left unread.
//
// Errors:
//   - ErrCorruptFile when the header is short or invalid, or the payload is truncated.
func Decode(r io.Reader, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	rows, cols, err := readHeader(r, o.byteOrder)
	if err != nil {
		return nil, matrixErrorf(ctxDecode, err)
	}
	m, err := readPayload(r, rows, cols, o.byteOrder)
	if err != nil {
		return nil, matrixErrorf(ctxDecode, err)
	}

	return m, nil
}

// readHeader reads and validates the dimension words.
func readHeader(r io.Reader, order binary.ByteOrder) (rows, cols int, err error) {
	var head [HeaderSize]byte
	if _, err = io.ReadFull(r, head[:]); err != nil {
		return 0, 0, fmt.Errorf("header: %w: %w", ErrCorruptFile, err)
	}

	return parseHeader(head[:], order)
}

// readPayload reads rows*cols elements; memory grows with bytes received.
func readPayload(r io.Reader, rows, cols int, order binary.ByteOrder) (*Dense, error) {
	n := rows * cols
	data := make([]vector.Vec3, 0, min(n, decodeChunk))
	var buf [vector.Size]byte
	for len(data) < n {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("element %d of %d: %w: %w", len(data), n, ErrCorruptFile, err)
		}
		data = append(data, vector.ReadBinary(buf[:], order))
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Save writes m to path in the binary layout, creating or truncating it.
// MAIN DESCRIPTION:
//   - Open for writing, buffer, Encode, flush, close; the close error is reported.
//
// Errors:
//   - ErrNilMatrix; ErrIO (wrapping *os.PathError) when the file cannot be
//     created; ErrIO when writing, flushing or closing fails.
func Save(path string, m Matrix, opts ...Option) (err error) {
	if err = ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxSave, err)
	}
	o := gatherOptions(opts...)

	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(ctxSave, path, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(ctxSave, path, ErrIO, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = Encode(bw, m, opts...); err != nil {
		if errors.Is(err, ErrNilMatrix) || errors.Is(err, ErrOutOfRange) {
			return err
		}
		return ioErrorf(ctxSave, path, ErrIO, err)
	}
	if err = bw.Flush(); err != nil {
		return ioErrorf(ctxSave, path, ErrIO, err)
	}

	size, _ := PayloadSize(m.Rows(), m.Cols())
	o.logger.Debug("matrix saved",
		zap.String("path", path),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int64("bytes", size))

	return nil
}

// Load reads a matrix previously written by Save.
// MAIN DESCRIPTION:
//   - Open for reading, read the header, compare the expected length with the
//     file size, then read rows*cols elements in row-major order.
//
// Errors:
//   - ErrIO (wrapping *os.PathError) when the file cannot be opened or stat'ed.
//   - ErrCorruptFile when the header is invalid or the length does not match.
func Load(path string, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(ctxLoad, path, ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErrorf(ctxLoad, path, ErrIO, err)
	}

	br := bufio.NewReader(f)
	rows, cols, err := readHeader(br, o.byteOrder)
	if err != nil {
		return nil, ioErrorf(ctxLoad, path, err, nil)
	}
	if want, _ := PayloadSize(rows, cols); want != info.Size() {
		return nil, ioErrorf(ctxLoad, path, ErrCorruptFile,
			fmt.Errorf("size %d, header %dx%d needs %d", info.Size(), rows, cols, want))
	}
	m, err := readPayload(br, rows, cols, o.byteOrder)
	if err != nil {
		return nil, ioErrorf(ctxLoad, path, err, nil)
	}

	o.logger.Debug("matrix loaded",
		zap.String("path", path),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int64("bytes", info.Size()))

	return m, nil
}

// LoadMapped is Load over a read-only memory mapping of the file.
// The mapping is released before returning; the result owns its own buffer.
//
// Errors:
//   - ErrIO when the file cannot be opened or mapped.
//   - ErrCorruptFile as in Load.
func LoadMapped(path string, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(ctxLoadMapped, path, ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErrorf(ctxLoadMapped, path, ErrIO, err)
	}
	// mmap rejects zero-length regions; anything shorter than a header is corrupt anyway.
	if info.Size() < HeaderSize {
		return nil, ioErrorf(ctxLoadMapped, path, ErrCorruptFile,
			fmt.Errorf("size %d below header", info.Size()))
	}

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, ioErrorf(ctxLoadMapped, path, ErrIO, err)
	}
	defer region.Unmap()

	m, err := decodeBytes(region, o.byteOrder)
	if err != nil {
		return nil, ioErrorf(ctxLoadMapped, path, err, nil)
	}

	o.logger.Debug("matrix mapped",
		zap.String("path", path),
		zap.Int("rows", m.r),
		zap.Int("cols", m.c),
		zap.Int("bytes", len(region)))

	return m, nil
}

// decodeBytes decodes a complete in-memory image (header + payload).
// The image length must match the header exactly.
func decodeBytes(b []byte, order binary.ByteOrder) (*Dense, error) {
	if len(b) < HeaderSize {
		return nil, ErrCorruptFile
	}
	rows, cols, err := parseHeader(b[:HeaderSize], order)
	if err != nil {
		return nil, err
	}
	if want, _ := PayloadSize(rows, cols); want != int64(len(b)) {
		return nil, fmt.Errorf("size %d, header %dx%d needs %d: %w", len(b), rows, cols, want, ErrCorruptFile)
	}

	m := newDense(rows, cols)
	payload := b[HeaderSize:]
	for idx := range m.data {
		m.data[idx] = vector.ReadBinary(payload[idx*vector.Size:], order)
	}

	return m, nil
}
