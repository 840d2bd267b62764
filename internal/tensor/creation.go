package tensor

import "fmt"

// Scalar creates a rank-0 array holding v.
//
// Example:
//
//	s := tensor.Scalar(2.5)
//	v := s.At(tensor.Rank0{}) // 2.5
func Scalar[T Element](v T) *Array[T, Rank0] {
	return newArray(Shape[Rank0]{}, []T{v})
}

// Vector creates a rank-1 array from values.
// Returns an error if values is empty.
//
// Example:
//
//	v, err := tensor.Vector(1, 2, 3)
func Vector[T Element](values ...T) (*Array[T, Rank1], error) {
	return FromSlice(values, Rank1{len(values)})
}

// Matrix creates a rank-2 array from nested rows, flattened row-major.
// Every row must have the same, non-zero length.
//
// Example:
//
//	m, err := tensor.Matrix([][]int{{0, 1, 2}, {3, 4, 5}}) // 2x3
func Matrix[T Element](rows [][]T) (*Array[T, Rank2], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one row", ErrInvalidLiteral)
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, expected %d", ErrInvalidLiteral, i, len(row), cols)
		}
		data = append(data, row...)
	}
	shape, err := NewShape(Rank2{len(rows), cols})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
	}
	return newArray(shape, data), nil
}

// Zeros creates an array filled with the additive identity.
//
// Example:
//
//	z := tensor.Zeros[float32](tensor.MustShape(tensor.Rank2{3, 4}))
func Zeros[T Element, I Index](shape Shape[I]) *Array[T, I] {
	// make() zero-initializes
	return newArray(shape, make([]T, shape.NumElements()))
}

// Ones creates an array filled with the multiplicative identity.
func Ones[T Element, I Index](shape Shape[I]) *Array[T, I] {
	return Full(shape, One[T]())
}

// Full creates an array filled with value.
func Full[T Element, I Index](shape Shape[I], value T) *Array[T, I] {
	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return newArray(shape, data)
}

// Eye creates an n×n identity matrix.
// Panics if n is not positive.
//
// Example:
//
//	id := tensor.Eye[float64](3)
func Eye[T Element](n int) *Array[T, Rank2] {
	t := Zeros[T](MustShape(Rank2{n, n}))
	one := One[T]()
	for i := 0; i < n; i++ {
		t.data[i*n+i] = one
	}
	return t
}

// squareShape builds the shape dims ++ dims.
func squareShape[I, J Index](dims I) (Shape[J], error) {
	var jdims J
	if len(jdims) != 2*len(dims) {
		return Shape[J]{}, fmt.Errorf("%w: rank %d cannot hold the square of rank %d", ErrShapeMismatch, len(jdims), len(dims))
	}
	for k := 0; k < len(dims); k++ {
		jdims[k] = dims[k]
		jdims[k+len(dims)] = dims[k]
	}
	return NewShape(jdims)
}

// Identity creates the rank-2R identity over shape: ones where the leading and
// trailing R indices address the same element of shape, zeros elsewhere.
// J must have exactly twice the rank of I. For rank 0 the result is the
// scalar one.
//
// Example:
//
//	v := tensor.MustShape(tensor.Rank1{3})
//	id, err := tensor.Identity[float64, tensor.Rank2](v) // 3x3 identity
func Identity[T Element, J, I Index](shape Shape[I]) (*Array[T, J], error) {
	sq, err := squareShape[I, J](shape.Dims())
	if err != nil {
		return nil, err
	}
	t := Zeros[T](sq)
	n := shape.NumElements()
	one := One[T]()
	for i := 0; i < n; i++ {
		t.data[i*n+i] = one
	}
	return t, nil
}

// SquareZeros creates the all-zero array with dims shape ++ shape.
// J must have exactly twice the rank of I.
func SquareZeros[T Element, J, I Index](shape Shape[I]) (*Array[T, J], error) {
	sq, err := squareShape[I, J](shape.Dims())
	if err != nil {
		return nil, err
	}
	return Zeros[T](sq), nil
}
