package autodiff

import "github.com/born-ml/ndgraph/internal/tensor"

// Constant is a leaf node holding an immutable array.
//
// Two constants are the same node only if their IDs match; equal contents do
// not make them equal.
type Constant[T tensor.Element, I tensor.Index] struct {
	id    NodeID
	array *tensor.Array[T, I]
}

// NewConstant creates a leaf node from a copy of a.
func NewConstant[T tensor.Element, I tensor.Index](a *tensor.Array[T, I]) *Constant[T, I] {
	return &Constant[T, I]{
		id:    nextID(),
		array: a.Clone(),
	}
}

// ID returns the node's unique identity.
func (c *Constant[T, I]) ID() NodeID {
	return c.id
}

// Kind returns KindConstant.
func (c *Constant[T, I]) Kind() Kind {
	return KindConstant
}

// Shape returns the shape of the held array.
func (c *Constant[T, I]) Shape() tensor.Shape[I] {
	return c.array.Shape()
}

// Output returns the held array. Nothing is computed.
func (c *Constant[T, I]) Output() *tensor.Array[T, I] {
	return c.array
}

// Inputs returns nil; constants are leaves.
func (c *Constant[T, I]) Inputs() []Node[T, I] {
	return nil
}

// SameNode reports whether c and other are the same leaf.
func (c *Constant[T, I]) SameNode(other *Constant[T, I]) bool {
	return other != nil && c.id == other.id
}
