// Package autodiff implements a lazy computational graph over tensor arrays.
//
// Architecture:
//   - Node: anything that can produce an array output on request
//   - Constant: a leaf holding an immutable array and a unique NodeID
//   - Binary / Unary: combinators that compute their output at most once
//   - Expr: uniform wrapper providing Add, Sub, Mul, Div and Neg sugar
//   - Grad: identity-vs-zero Jacobian query resolved by leaf identity
//
// Usage:
//
//	a := autodiff.Leaf(tensor.Must(tensor.Vector(1.0, 2.0)))
//	b := autodiff.Leaf(tensor.Must(tensor.Vector(3.0, 4.0)))
//	sum := a.Add(b)
//	fmt.Println(sum.Output()) // [4, 6]
//
//	da, _ := autodiff.GradVector(a, a) // 2x2 identity
//	db, _ := autodiff.GradVector(a, b) // 2x2 zeros
package autodiff

import (
	"strconv"
	"sync/atomic"

	"github.com/born-ml/ndgraph/internal/tensor"
)

// NodeID identifies a node for the lifetime of the process.
// IDs are assigned in increasing order starting at 1 and are never reused.
type NodeID uint64

// String returns the ID as a decimal string.
func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

var lastID atomic.Uint64

// nextID returns a fresh NodeID.
func nextID() NodeID {
	return NodeID(lastID.Add(1))
}

// Kind enumerates the node variants.
type Kind int

const (
	KindConstant Kind = iota // leaf holding an array
	KindBinary               // elementwise combinator of two nodes
	KindUnary                // elementwise transform of one node
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindBinary:
		return "binary"
	case KindUnary:
		return "unary"
	default:
		return "unknown"
	}
}

// Node is a vertex of the computational graph.
//
// Output returns the node's array, computing it on the first call. Every call
// returns the same *tensor.Array; callers must treat it as read-only.
type Node[T tensor.Element, I tensor.Index] interface {
	ID() NodeID
	Kind() Kind
	Shape() tensor.Shape[I]
	Output() *tensor.Array[T, I]
	Inputs() []Node[T, I]
}
