package autodiff

import "github.com/born-ml/ndgraph/internal/tensor"

// Expr wraps any node so leaves and composites compose the same way.
//
// Example:
//
//	a := autodiff.Leaf(tensor.Must(tensor.Vector(1, 2, 3)))
//	b := autodiff.Leaf(tensor.Must(tensor.Vector(4, 5, 6)))
//	c := a.Add(b).Mul(b).Neg()
//	out := c.Output() // [-20, -35, -54]
type Expr[T tensor.Element, I tensor.Index] struct {
	node Node[T, I]
}

// Wrap returns n as an Expr. Wrapping an Expr returns it unchanged.
func Wrap[T tensor.Element, I tensor.Index](n Node[T, I]) Expr[T, I] {
	if e, ok := n.(Expr[T, I]); ok {
		return e
	}
	return Expr[T, I]{node: n}
}

// Leaf wraps a new Constant holding a copy of a.
func Leaf[T tensor.Element, I tensor.Index](a *tensor.Array[T, I]) Expr[T, I] {
	return Expr[T, I]{node: NewConstant(a)}
}

// unwrap strips Expr wrappers down to the underlying node.
func unwrap[T tensor.Element, I tensor.Index](n Node[T, I]) Node[T, I] {
	for {
		e, ok := n.(Expr[T, I])
		if !ok {
			return n
		}
		n = e.node
	}
}

// Node returns the wrapped node.
func (e Expr[T, I]) Node() Node[T, I] {
	return e.node
}

// ID returns the wrapped node's identity.
func (e Expr[T, I]) ID() NodeID {
	return e.node.ID()
}

// Kind returns the wrapped node's kind.
func (e Expr[T, I]) Kind() Kind {
	return e.node.Kind()
}

// Shape returns the wrapped node's output shape.
func (e Expr[T, I]) Shape() tensor.Shape[I] {
	return e.node.Shape()
}

// Output forces evaluation of the wrapped node.
func (e Expr[T, I]) Output() *tensor.Array[T, I] {
	return e.node.Output()
}

// Inputs returns the wrapped node's children.
func (e Expr[T, I]) Inputs() []Node[T, I] {
	return e.node.Inputs()
}

// Add returns e + other. Panics with a *tensor.ShapeError on mismatched extents.
func (e Expr[T, I]) Add(other Expr[T, I]) Expr[T, I] {
	return Wrap[T, I](Add[T, I](e.node, other.node))
}

// Sub returns e - other.
func (e Expr[T, I]) Sub(other Expr[T, I]) Expr[T, I] {
	return Wrap[T, I](Sub[T, I](e.node, other.node))
}

// Mul returns e * other.
func (e Expr[T, I]) Mul(other Expr[T, I]) Expr[T, I] {
	return Wrap[T, I](Mul[T, I](e.node, other.node))
}

// Div returns e / other.
func (e Expr[T, I]) Div(other Expr[T, I]) Expr[T, I] {
	return Wrap[T, I](Div[T, I](e.node, other.node))
}

// Neg returns -e.
func (e Expr[T, I]) Neg() Expr[T, I] {
	return Wrap[T, I](Neg[T, I](e.node))
}
