// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides statically ranked, dense arrays for ndgraph.
//
// # Overview
//
// Arrays are the values flowing through ndgraph's computational graph. This
// package provides:
//   - Generic arrays (Array[T, I]) over any numeric element type
//   - Rank fixed at compile time by the index tuple type I
//   - Row-major storage with precomputed strides
//   - Elementwise arithmetic and matrix multiplication
//
// # Basic Usage
//
//	import "github.com/born-ml/ndgraph/tensor"
//
//	func main() {
//	    a := tensor.Must(tensor.Matrix([][]int{{0, 1, 2}, {3, 4, 5}}))
//	    b := tensor.Must(tensor.Matrix([][]int{{1, 0}, {0, 1}, {0, 0}}))
//
//	    c := tensor.MatMul(a, b)      // [[0, 1], [3, 4]]
//	    v := c.At(tensor.Rank2{1, 1}) // 4
//	    d := c.Add(c).Neg()           // [[0, -2], [-6, -8]]
//	}
//
// # Ranks and Shapes
//
// The index tuple type is the rank: Rank0 ([0]int) for scalars, Rank1 for
// vectors, Rank2 for matrices, up to [6]int. Indexing with the wrong number
// of components does not compile. Extents are runtime values checked when an
// array is built or combined:
//
//	s := tensor.MustShape(tensor.Rank2{3, 4}) // 3x4, strides [4 1]
//	z := tensor.Zeros[float32](s)
//
// # Supported Element Types
//
// Any type satisfying Element: the builtin integer, floating-point and
// complex kinds, and named types over them. Overflow and rounding follow the
// element type.
//
// # Errors
//
// Constructors return errors wrapping ErrInvalidLiteral. Indexing out of
// range panics with an *IndexError naming the axis, the index tuple and the
// shape; combining arrays with different extents panics with a *ShapeError.
// There is no broadcasting.
package tensor
