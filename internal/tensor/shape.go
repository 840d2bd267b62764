package tensor

import (
	"fmt"
	"strings"
)

// Index is a constraint for per-axis index tuples.
//
// The length of the array is the rank of the arrays it addresses, so the rank
// is checked by the compiler: a Rank2 array can only be indexed with a [2]int.
type Index interface {
	[0]int | [1]int | [2]int | [3]int | [4]int | [5]int | [6]int
}

// Index tuple aliases for the common ranks.
type (
	Rank0 = [0]int
	Rank1 = [1]int
	Rank2 = [2]int
	Rank3 = [3]int
	Rank4 = [4]int
)

// Shape is the fixed rank and per-axis extents of an array.
// The zero value is only valid for rank 0; use NewShape otherwise.
type Shape[I Index] struct {
	dims    I
	strides I
}

// NewShape creates a shape from per-axis extents.
// Every extent must be positive.
func NewShape[I Index](dims I) (Shape[I], error) {
	for k := 0; k < len(dims); k++ {
		if dims[k] <= 0 {
			return Shape[I]{}, fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", k, dims[k])
		}
	}
	s := Shape[I]{dims: dims}
	s.strides = computeStrides(dims)
	return s, nil
}

// MustShape is like NewShape but panics on invalid extents.
func MustShape[I Index](dims I) Shape[I] {
	s, err := NewShape(dims)
	if err != nil {
		panic(err)
	}
	return s
}

// computeStrides calculates row-major strides.
// stride[k] = product of all extents after k, innermost stride is 1.
func computeStrides[I Index](dims I) I {
	var strides I
	n := len(dims)
	if n == 0 {
		return strides
	}
	strides[n-1] = 1
	for k := n - 2; k >= 0; k-- {
		strides[k] = strides[k+1] * dims[k+1]
	}
	return strides
}

// Dims returns the per-axis extents.
func (s Shape[I]) Dims() I {
	return s.dims
}

// Strides returns the row-major memory strides.
func (s Shape[I]) Strides() I {
	return s.strides
}

// Rank returns the number of axes.
func (s Shape[I]) Rank() int {
	return len(s.dims)
}

// NumElements returns the total number of elements.
func (s Shape[I]) NumElements() int {
	n := 1 // Scalar has 1 element
	for k := 0; k < len(s.dims); k++ {
		n *= s.dims[k]
	}
	return n
}

// Equal checks if two shapes have identical extents.
func (s Shape[I]) Equal(other Shape[I]) bool {
	for k := 0; k < len(s.dims); k++ {
		if s.dims[k] != other.dims[k] {
			return false
		}
	}
	return true
}

// Offset returns the linear buffer offset of idx.
// Returns an *IndexError if any component is outside its axis.
func (s Shape[I]) Offset(idx I) (int, error) {
	offset := 0
	for k := 0; k < len(idx); k++ {
		if idx[k] < 0 || idx[k] >= s.dims[k] {
			return 0, &IndexError{Axis: k, Index: toInts(idx), Shape: toInts(s.dims)}
		}
		offset += idx[k] * s.strides[k]
	}
	return offset, nil
}

// unravel converts a linear offset back to an index tuple.
func (s Shape[I]) unravel(offset int) I {
	var idx I
	for k := 0; k < len(idx); k++ {
		idx[k] = offset / s.strides[k]
		offset %= s.strides[k]
	}
	return idx
}

// String renders the extents, e.g. [2 3].
func (s Shape[I]) String() string {
	return formatInts(toInts(s.dims))
}

// toInts copies an index tuple into a slice for reporting.
func toInts[I Index](idx I) []int {
	out := make([]int, len(idx))
	for k := range out {
		out[k] = idx[k]
	}
	return out
}

func formatInts(v []int) string {
	parts := make([]string, len(v))
	for i, d := range v {
		parts[i] = fmt.Sprint(d)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
