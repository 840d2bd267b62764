package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/ndgraph/internal/tensor"
)

// Gradient query errors.
var (
	// ErrNoChainRule is returned when a gradient is requested through a
	// combinator. Only leaf-vs-leaf queries are defined.
	ErrNoChainRule = errors.New("gradient through composite nodes is not supported")

	// ErrGradientRank is returned when the requested Jacobian rank is not
	// twice the rank of the target.
	ErrGradientRank = errors.New("gradient rank must be twice the target rank")
)

// Grad returns d(n)/d(target) as a new Constant of rank 2R, where R is the
// rank of target: the leading R axes index n's output and the trailing R axes
// index target.
//
// Both nodes must resolve to a Constant once Expr wrappers are stripped.
// If they are the same leaf (by NodeID, not by contents) the result is the
// identity Jacobian: one where both halves address the same element, zero
// elsewhere. Otherwise the result is all zeros.
//
// J is supplied explicitly; T and I are inferred:
//
//	j, err := autodiff.Grad[tensor.Rank2](a, a) // a is rank 1
func Grad[J tensor.Index, T tensor.Element, I tensor.Index](n, target Node[T, I]) (*Constant[T, J], error) {
	self, ok := unwrap(n).(*Constant[T, I])
	if !ok {
		return nil, fmt.Errorf("grad of %s node %v: %w", unwrap(n).Kind(), n.ID(), ErrNoChainRule)
	}
	wrt, ok := unwrap(target).(*Constant[T, I])
	if !ok {
		return nil, fmt.Errorf("grad with respect to %s node %v: %w", unwrap(target).Kind(), target.ID(), ErrNoChainRule)
	}
	if err := tensor.CheckSameShape("grad", self.Output(), wrt.Output()); err != nil {
		return nil, err
	}

	var (
		jac *tensor.Array[T, J]
		err error
	)
	if self.SameNode(wrt) {
		jac, err = tensor.Identity[T, J](wrt.Shape())
	} else {
		jac, err = tensor.SquareZeros[T, J](wrt.Shape())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGradientRank, err)
	}
	return &Constant[T, J]{id: nextID(), array: jac}, nil
}

// GradScalar returns d(n)/d(target) for rank-0 leaves: one if they are the
// same node, zero otherwise.
func GradScalar[T tensor.Element](n, target Node[T, tensor.Rank0]) (*Constant[T, tensor.Rank0], error) {
	return Grad[tensor.Rank0](n, target)
}

// GradVector returns the N×N Jacobian of a length-N leaf.
func GradVector[T tensor.Element](n, target Node[T, tensor.Rank1]) (*Constant[T, tensor.Rank2], error) {
	return Grad[tensor.Rank2](n, target)
}

// GradMatrix returns the M×N×M×N Jacobian of an M×N leaf.
func GradMatrix[T tensor.Element](n, target Node[T, tensor.Rank2]) (*Constant[T, tensor.Rank4], error) {
	return Grad[tensor.Rank4](n, target)
}
