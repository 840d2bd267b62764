// Package tensor provides the dense array type and shape system for ndgraph.
package tensor

// Element is a constraint for array element types.
//
// Any type whose underlying type is a builtin integer, float or complex kind
// qualifies: it is copied by value and closed under +, -, *, / and unary -.
// Overflow and rounding follow the element type itself.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Zero returns the additive identity of T.
func Zero[T Element]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of T.
func One[T Element]() T {
	return T(1)
}
