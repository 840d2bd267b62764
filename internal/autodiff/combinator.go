package autodiff

import (
	"sync"
	"sync/atomic"

	"github.com/born-ml/ndgraph/internal/tensor"
)

// BinaryFunc combines two arrays of identical shape into a new array of that shape.
type BinaryFunc[T tensor.Element, I tensor.Index] func(lhs, rhs *tensor.Array[T, I]) *tensor.Array[T, I]

// UnaryFunc transforms an array into a new array of the same shape.
type UnaryFunc[T tensor.Element, I tensor.Index] func(x *tensor.Array[T, I]) *tensor.Array[T, I]

// memo caches a node's output. The compute function runs at most once, even
// with concurrent callers; a panic inside it is recorded and re-raised on
// every call.
type memo[T tensor.Element, I tensor.Index] struct {
	once    sync.Once
	done    atomic.Bool
	result  *tensor.Array[T, I]
	failure any
}

func (m *memo[T, I]) get(compute func() *tensor.Array[T, I]) *tensor.Array[T, I] {
	m.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				m.failure = r
			}
			m.done.Store(true)
		}()
		m.result = compute()
	})
	if m.failure != nil {
		panic(m.failure)
	}
	return m.result
}

// Evaluated reports whether the output has been computed.
func (m *memo[T, I]) Evaluated() bool {
	return m.done.Load()
}

// checkResult rejects op results whose extents differ from the node's shape.
func checkResult[T tensor.Element, I tensor.Index](name string, want tensor.Shape[I], got *tensor.Array[T, I]) *tensor.Array[T, I] {
	if got == nil {
		panic(&tensor.ShapeError{Op: name, LHS: shapeInts(want), RHS: nil})
	}
	if !got.Shape().Equal(want) {
		panic(&tensor.ShapeError{Op: name, LHS: shapeInts(want), RHS: shapeInts(got.Shape())})
	}
	return got
}

func shapeInts[I tensor.Index](s tensor.Shape[I]) []int {
	dims := s.Dims()
	out := make([]int, len(dims))
	for k := range out {
		out[k] = dims[k]
	}
	return out
}

// Binary is an elementwise combinator of two child nodes.
// The children are evaluated left then right on the first Output call.
type Binary[T tensor.Element, I tensor.Index] struct {
	memo[T, I]
	id   NodeID
	name string
	lhs  Node[T, I]
	rhs  Node[T, I]
	op   BinaryFunc[T, I]
}

// Combine creates a combinator node computing op(lhs.Output(), rhs.Output()).
// Returns a *tensor.ShapeError if the children have different extents.
func Combine[T tensor.Element, I tensor.Index](name string, lhs, rhs Node[T, I], op BinaryFunc[T, I]) (*Binary[T, I], error) {
	lhs, rhs = unwrap(lhs), unwrap(rhs)
	if !lhs.Shape().Equal(rhs.Shape()) {
		return nil, &tensor.ShapeError{Op: name, LHS: shapeInts(lhs.Shape()), RHS: shapeInts(rhs.Shape())}
	}
	return &Binary[T, I]{
		id:   nextID(),
		name: name,
		lhs:  lhs,
		rhs:  rhs,
		op:   op,
	}, nil
}

// ID returns the node's unique identity.
func (b *Binary[T, I]) ID() NodeID {
	return b.id
}

// Kind returns KindBinary.
func (b *Binary[T, I]) Kind() Kind {
	return KindBinary
}

// Name returns the operator name, e.g. "add".
func (b *Binary[T, I]) Name() string {
	return b.name
}

// Shape returns the output shape, known without evaluating.
func (b *Binary[T, I]) Shape() tensor.Shape[I] {
	return b.lhs.Shape()
}

// Inputs returns the left and right children.
func (b *Binary[T, I]) Inputs() []Node[T, I] {
	return []Node[T, I]{b.lhs, b.rhs}
}

// Output computes op(lhs, rhs) on the first call and returns the cached
// array afterwards.
func (b *Binary[T, I]) Output() *tensor.Array[T, I] {
	return b.get(func() *tensor.Array[T, I] {
		l := b.lhs.Output()
		r := b.rhs.Output()
		return checkResult(b.name, b.Shape(), b.op(l, r))
	})
}

// Unary is an elementwise transform of one child node.
type Unary[T tensor.Element, I tensor.Index] struct {
	memo[T, I]
	id    NodeID
	name  string
	input Node[T, I]
	op    UnaryFunc[T, I]
}

// Apply creates a node computing op(x.Output()).
func Apply[T tensor.Element, I tensor.Index](name string, x Node[T, I], op UnaryFunc[T, I]) *Unary[T, I] {
	return &Unary[T, I]{
		id:    nextID(),
		name:  name,
		input: unwrap(x),
		op:    op,
	}
}

// ID returns the node's unique identity.
func (u *Unary[T, I]) ID() NodeID {
	return u.id
}

// Kind returns KindUnary.
func (u *Unary[T, I]) Kind() Kind {
	return KindUnary
}

// Name returns the operator name, e.g. "neg".
func (u *Unary[T, I]) Name() string {
	return u.name
}

// Shape returns the output shape.
func (u *Unary[T, I]) Shape() tensor.Shape[I] {
	return u.input.Shape()
}

// Inputs returns the single child.
func (u *Unary[T, I]) Inputs() []Node[T, I] {
	return []Node[T, I]{u.input}
}

// Output computes op(input) on the first call and returns the cached array
// afterwards.
func (u *Unary[T, I]) Output() *tensor.Array[T, I] {
	return u.get(func() *tensor.Array[T, I] {
		return checkResult(u.name, u.Shape(), u.op(u.input.Output()))
	})
}
