// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndgraph/internal/parallel"
	"github.com/born-ml/ndgraph/internal/tensor"
)

// Type aliases for public API

// Element is a constraint for array element types.
// Supported: builtin integer, float and complex kinds and named types over them.
type Element = tensor.Element

// Index is a constraint for index tuples; its length is the rank.
type Index = tensor.Index

// Index tuple aliases.
type (
	Rank0 = tensor.Rank0
	Rank1 = tensor.Rank1
	Rank2 = tensor.Rank2
	Rank3 = tensor.Rank3
	Rank4 = tensor.Rank4
)

// Shape is the rank and per-axis extents of an array.
type Shape[I Index] = tensor.Shape[I]

// Array is a dense, row-major, immutable array.
//
// Example:
//
//	a := tensor.Must(tensor.Vector(1, 2))
//	b := tensor.Must(tensor.Vector(3, 4))
//	c := a.Add(b) // [4, 6]
type Array[T Element, I Index] = tensor.Array[T, I]

// ParallelConfig controls how MatMulWith distributes output rows.
type ParallelConfig = parallel.Config

// ShapeError reports operands whose extents are incompatible.
type ShapeError = tensor.ShapeError

// IndexError reports an index component outside its axis.
type IndexError = tensor.IndexError

// Errors.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrIndexOutOfBounds = tensor.ErrIndexOutOfBounds
	ErrInvalidLiteral   = tensor.ErrInvalidLiteral
)

// Shape functions

// NewShape creates a shape from positive per-axis extents.
func NewShape[I Index](dims I) (Shape[I], error) {
	return tensor.NewShape(dims)
}

// MustShape is like NewShape but panics on invalid extents.
func MustShape[I Index](dims I) Shape[I] {
	return tensor.MustShape(dims)
}

// Creation functions

// FromSlice creates an array from row-major data.
//
// Example:
//
//	a, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Rank2{2, 3})
func FromSlice[T Element, I Index](data []T, dims I) (*Array[T, I], error) {
	return tensor.FromSlice(data, dims)
}

// Must panics if err is non-nil and returns a otherwise.
func Must[T Element, I Index](a *Array[T, I], err error) *Array[T, I] {
	return tensor.Must(a, err)
}

// Scalar creates a rank-0 array.
func Scalar[T Element](v T) *Array[T, Rank0] {
	return tensor.Scalar(v)
}

// Vector creates a rank-1 array.
func Vector[T Element](values ...T) (*Array[T, Rank1], error) {
	return tensor.Vector(values...)
}

// Matrix creates a rank-2 array from rows of equal length.
func Matrix[T Element](rows [][]T) (*Array[T, Rank2], error) {
	return tensor.Matrix(rows)
}

// Zeros creates an array filled with zeros.
func Zeros[T Element, I Index](shape Shape[I]) *Array[T, I] {
	return tensor.Zeros[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T Element, I Index](shape Shape[I]) *Array[T, I] {
	return tensor.Ones[T](shape)
}

// Full creates an array filled with value.
func Full[T Element, I Index](shape Shape[I], value T) *Array[T, I] {
	return tensor.Full(shape, value)
}

// Eye creates an n×n identity matrix.
func Eye[T Element](n int) *Array[T, Rank2] {
	return tensor.Eye[T](n)
}

// Identity creates the rank-2R identity over shape (J has twice the rank of I).
func Identity[T Element, J, I Index](shape Shape[I]) (*Array[T, J], error) {
	return tensor.Identity[T, J](shape)
}

// Matrix multiplication

// MatMul performs (M, K) @ (K, N) -> (M, N).
func MatMul[T Element](lhs, rhs *Array[T, Rank2]) *Array[T, Rank2] {
	return tensor.MatMul(lhs, rhs)
}

// MatMulWith is MatMul with output rows distributed according to cfg.
func MatMulWith[T Element](lhs, rhs *Array[T, Rank2], cfg ParallelConfig) *Array[T, Rank2] {
	return tensor.MatMulWith(lhs, rhs, cfg)
}

// DefaultParallelConfig returns a CPU-count based parallel configuration.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Utility functions

// CheckSameShape returns a *ShapeError if a and b have different extents.
func CheckSameShape[T Element, I Index](op string, a, b *Array[T, I]) error {
	return tensor.CheckSameShape(op, a, b)
}
