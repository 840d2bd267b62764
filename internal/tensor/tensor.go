package tensor

import "fmt"

// Array is a dense, row-major, immutable array of T with rank fixed by I.
//
// Type Parameters:
//   - T: Element type (must satisfy Element)
//   - I: Index tuple type, which fixes the rank (Rank0, Rank1, Rank2, ...)
//
// The buffer always holds exactly Shape().NumElements() values. Arrays have
// no setters; every operation returns a new Array.
//
// Example:
//
//	a := tensor.Must(tensor.Vector(1, 2))
//	b := tensor.Must(tensor.Vector(3, 4))
//	c := a.Add(b) // [4, 6]
type Array[T Element, I Index] struct {
	shape Shape[I]
	data  []T
}

// newArray wraps data without copying. Callers guarantee len(data) matches.
func newArray[T Element, I Index](shape Shape[I], data []T) *Array[T, I] {
	return &Array[T, I]{shape: shape, data: data}
}

// FromSlice creates an array from row-major data.
// The slice is copied into the array's memory.
func FromSlice[T Element, I Index](data []T, dims I) (*Array[T, I], error) {
	shape, err := NewShape(dims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidLiteral, shape, shape.NumElements(), len(data))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return newArray(shape, buf), nil
}

// Must panics if err is non-nil and returns a otherwise.
//
// Example:
//
//	m := tensor.Must(tensor.Matrix([][]float64{{1, 2}, {3, 4}}))
func Must[T Element, I Index](a *Array[T, I], err error) *Array[T, I] {
	if err != nil {
		panic(err)
	}
	return a
}

// Shape returns the array's shape.
func (a *Array[T, I]) Shape() Shape[I] {
	return a.shape
}

// Dims returns the per-axis extents.
func (a *Array[T, I]) Dims() I {
	return a.shape.Dims()
}

// Rank returns the number of axes.
func (a *Array[T, I]) Rank() int {
	return a.shape.Rank()
}

// NumElements returns the total number of elements.
func (a *Array[T, I]) NumElements() int {
	return len(a.data)
}

// Data returns a copy of the row-major buffer.
func (a *Array[T, I]) Data() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// At returns the element at idx.
// Panics with an *IndexError if any component is out of bounds.
//
// Example:
//
//	m := tensor.Must(tensor.Matrix([][]int{{1, 2, 3}, {4, 5, 6}}))
//	v := m.At(tensor.Rank2{1, 2}) // 6
func (a *Array[T, I]) At(idx I) T {
	v, err := a.Get(idx)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the element at idx, or an *IndexError.
func (a *Array[T, I]) Get(idx I) (T, error) {
	offset, err := a.shape.Offset(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[offset], nil
}

// Item returns the single value of a one-element array.
// Panics if the array holds more than one element.
func (a *Array[T, I]) Item() T {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("Item() only works for single-element arrays, got shape %v", a.shape))
	}
	return a.data[0]
}

// Equal reports whether both arrays have the same extents and elements.
func (a *Array[T, I]) Equal(other *Array[T, I]) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the array.
func (a *Array[T, I]) Clone() *Array[T, I] {
	return newArray(a.shape, a.Data())
}
