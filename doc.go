// Package vecmat is a small engine for resizable two-dimensional matrices
// whose elements are 3-component vectors.
//
// What is inside?
//
//   - vector/  - Vec3: arithmetic, Euclidean length, text and binary forms
//   - matrix/  - Dense storage, structural editing (insert/delete rows,
//     columns and blocks), arithmetic and ordering, persistence
//     (text, binary file, memory-mapped load, YAML snapshot)
//   - cmd/vecmat - a command line front end over the binary file format
//
// Quick example:
//
//	m, _ := matrix.NewDense(2, 2)
//	_ = m.Set(0, 0, vector.New(1, 2, 3))
//	_ = m.InsertRow(0, []vector.Vec3{vector.New(4, 5, 6), vector.Zero})
//	_ = matrix.Save("m.bin", m)
//
// Matrices multiply with the first-component product: cell (i,j) is the sum
// over k of a(i,k) scaled by the X component of b(k,j).
//
//	go get github.com/katalvlaran/vecmat
package vecmat
