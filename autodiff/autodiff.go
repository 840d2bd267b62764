// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides a lazy, memoizing computational graph over
// tensor arrays, with a leaf-identity gradient query.
//
// Nodes are built by wrapping arrays as leaves and composing them. Nothing is
// computed until Output is called; each composite computes its value at most
// once, even when shared by several parents or forced concurrently.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndgraph/autodiff"
//	    "github.com/born-ml/ndgraph/tensor"
//	)
//
//	func main() {
//	    a := autodiff.Leaf(tensor.Must(tensor.Vector(1.0, 2.0, 3.0)))
//	    b := autodiff.Leaf(tensor.Must(tensor.Vector(4.0, 5.0, 6.0)))
//
//	    c := a.Add(b).Mul(b) // nothing computed yet
//	    fmt.Println(c.Output()) // [20, 35, 54]
//
//	    id, _ := autodiff.GradVector(a, a)   // 3x3 identity
//	    zero, _ := autodiff.GradVector(a, b) // 3x3 zeros
//	}
//
// Gradients are resolved for leaf-vs-leaf queries only; asking for the
// gradient of a composite node returns ErrNoChainRule.
package autodiff

import (
	"context"

	"github.com/born-ml/ndgraph/internal/autodiff"
	"github.com/born-ml/ndgraph/internal/tensor"
)

// NodeID identifies a node for the lifetime of the process.
type NodeID = autodiff.NodeID

// Kind enumerates node variants.
type Kind = autodiff.Kind

// Node kinds.
const (
	KindConstant = autodiff.KindConstant
	KindBinary   = autodiff.KindBinary
	KindUnary    = autodiff.KindUnary
)

// Node is a vertex of the computational graph.
type Node[T tensor.Element, I tensor.Index] = autodiff.Node[T, I]

// Constant is a leaf node holding an immutable array.
type Constant[T tensor.Element, I tensor.Index] = autodiff.Constant[T, I]

// Binary is a memoizing elementwise combinator of two nodes.
type Binary[T tensor.Element, I tensor.Index] = autodiff.Binary[T, I]

// Unary is a memoizing elementwise transform of one node.
type Unary[T tensor.Element, I tensor.Index] = autodiff.Unary[T, I]

// Expr wraps any node and provides Add, Sub, Mul, Div and Neg.
type Expr[T tensor.Element, I tensor.Index] = autodiff.Expr[T, I]

// BinaryFunc combines two arrays of identical shape.
type BinaryFunc[T tensor.Element, I tensor.Index] = autodiff.BinaryFunc[T, I]

// UnaryFunc transforms an array, keeping its shape.
type UnaryFunc[T tensor.Element, I tensor.Index] = autodiff.UnaryFunc[T, I]

// Errors.
var (
	ErrNoChainRule  = autodiff.ErrNoChainRule
	ErrGradientRank = autodiff.ErrGradientRank
	ErrEvaluation   = autodiff.ErrEvaluation
)

// Graph construction

// NewConstant creates a leaf node from a copy of a.
func NewConstant[T tensor.Element, I tensor.Index](a *tensor.Array[T, I]) *Constant[T, I] {
	return autodiff.NewConstant(a)
}

// Leaf wraps a new Constant holding a copy of a.
func Leaf[T tensor.Element, I tensor.Index](a *tensor.Array[T, I]) Expr[T, I] {
	return autodiff.Leaf(a)
}

// Wrap returns n as an Expr.
func Wrap[T tensor.Element, I tensor.Index](n Node[T, I]) Expr[T, I] {
	return autodiff.Wrap(n)
}

// Combine creates a combinator node computing op(lhs, rhs).
// Returns a *tensor.ShapeError if the children have different extents.
func Combine[T tensor.Element, I tensor.Index](name string, lhs, rhs Node[T, I], op BinaryFunc[T, I]) (*Binary[T, I], error) {
	return autodiff.Combine(name, lhs, rhs, op)
}

// Apply creates a node computing op(x).
func Apply[T tensor.Element, I tensor.Index](name string, x Node[T, I], op UnaryFunc[T, I]) *Unary[T, I] {
	return autodiff.Apply(name, x, op)
}

// Gradient query

// Grad returns d(n)/d(target) as a rank-2R Constant. J must have twice the
// rank of I.
func Grad[J tensor.Index, T tensor.Element, I tensor.Index](n, target Node[T, I]) (*Constant[T, J], error) {
	return autodiff.Grad[J](n, target)
}

// GradScalar returns d(n)/d(target) for rank-0 leaves.
func GradScalar[T tensor.Element](n, target Node[T, tensor.Rank0]) (*Constant[T, tensor.Rank0], error) {
	return autodiff.GradScalar(n, target)
}

// GradVector returns the N×N Jacobian of a length-N leaf.
func GradVector[T tensor.Element](n, target Node[T, tensor.Rank1]) (*Constant[T, tensor.Rank2], error) {
	return autodiff.GradVector(n, target)
}

// GradMatrix returns the M×N×M×N Jacobian of an M×N leaf.
func GradMatrix[T tensor.Element](n, target Node[T, tensor.Rank2]) (*Constant[T, tensor.Rank4], error) {
	return autodiff.GradMatrix(n, target)
}

// Evaluation

// Evaluate forces every root concurrently; shared subtrees are computed once.
func Evaluate[T tensor.Element, I tensor.Index](ctx context.Context, roots ...Node[T, I]) error {
	return autodiff.Evaluate(ctx, roots...)
}

// Walk visits the nodes reachable from root, children before parents.
func Walk[T tensor.Element, I tensor.Index](root Node[T, I], fn func(Node[T, I]) error) error {
	return autodiff.Walk(root, fn)
}

// Leaves returns the distinct constants reachable from root.
func Leaves[T tensor.Element, I tensor.Index](root Node[T, I]) []*Constant[T, I] {
	return autodiff.Leaves(root)
}
