package autodiff

import "github.com/born-ml/ndgraph/internal/tensor"

// mustCombine panics with the composition error; operator sugar has no error return.
func mustCombine[T tensor.Element, I tensor.Index](name string, lhs, rhs Node[T, I], op BinaryFunc[T, I]) *Binary[T, I] {
	b, err := Combine(name, lhs, rhs, op)
	if err != nil {
		panic(err)
	}
	return b
}

// Add creates a node computing lhs + rhs elementwise.
// Panics with a *tensor.ShapeError if the extents differ.
func Add[T tensor.Element, I tensor.Index](lhs, rhs Node[T, I]) *Binary[T, I] {
	return mustCombine("add", lhs, rhs, (*tensor.Array[T, I]).Add)
}

// Sub creates a node computing lhs - rhs elementwise.
// It is a native combinator: lhs is evaluated before rhs and no negation
// node is introduced.
func Sub[T tensor.Element, I tensor.Index](lhs, rhs Node[T, I]) *Binary[T, I] {
	return mustCombine("sub", lhs, rhs, (*tensor.Array[T, I]).Sub)
}

// Mul creates a node computing lhs * rhs elementwise.
func Mul[T tensor.Element, I tensor.Index](lhs, rhs Node[T, I]) *Binary[T, I] {
	return mustCombine("mul", lhs, rhs, (*tensor.Array[T, I]).Mul)
}

// Div creates a node computing lhs / rhs elementwise.
func Div[T tensor.Element, I tensor.Index](lhs, rhs Node[T, I]) *Binary[T, I] {
	return mustCombine("div", lhs, rhs, (*tensor.Array[T, I]).Div)
}

// Neg creates a node computing -x elementwise.
func Neg[T tensor.Element, I tensor.Index](x Node[T, I]) *Unary[T, I] {
	return Apply("neg", x, (*tensor.Array[T, I]).Neg)
}
