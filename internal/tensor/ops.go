package tensor

// CheckSameShape returns a *ShapeError if a and b have different extents.
func CheckSameShape[T Element, I Index](op string, a, b *Array[T, I]) error {
	if !a.shape.Equal(b.shape) {
		return &ShapeError{Op: op, LHS: toInts(a.shape.dims), RHS: toInts(b.shape.dims)}
	}
	return nil
}

// Map applies f to every element and returns the result as a new array.
func (a *Array[T, I]) Map(f func(T) T) *Array[T, I] {
	out := make([]T, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}
	return newArray(a.shape, out)
}

// Zip applies f positionally across a and other.
// Panics with a *ShapeError if the extents differ.
func (a *Array[T, I]) Zip(other *Array[T, I], f func(x, y T) T) *Array[T, I] {
	return a.zip("zip", other, f)
}

func (a *Array[T, I]) zip(op string, other *Array[T, I], f func(x, y T) T) *Array[T, I] {
	if err := CheckSameShape(op, a, other); err != nil {
		panic(err)
	}
	out := make([]T, len(a.data))
	for i := range a.data {
		out[i] = f(a.data[i], other.data[i])
	}
	return newArray(a.shape, out)
}

// Add performs element-wise addition.
// Both arrays must have identical extents; there is no broadcasting.
//
// Example:
//
//	a := tensor.Must(tensor.Vector(1, 2))
//	b := tensor.Must(tensor.Vector(3, 4))
//	c := a.Add(b) // [4, 6]
func (a *Array[T, I]) Add(other *Array[T, I]) *Array[T, I] {
	return a.zip("add", other, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func (a *Array[T, I]) Sub(other *Array[T, I]) *Array[T, I] {
	return a.zip("sub", other, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func (a *Array[T, I]) Mul(other *Array[T, I]) *Array[T, I] {
	return a.zip("mul", other, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
// Integer element types truncate, and divide by zero panics as in Go.
func (a *Array[T, I]) Div(other *Array[T, I]) *Array[T, I] {
	return a.zip("div", other, func(x, y T) T { return x / y })
}

// Neg returns the element-wise negation.
func (a *Array[T, I]) Neg() *Array[T, I] {
	return a.Map(func(x T) T { return -x })
}
