package autodiff

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndgraph/internal/tensor"
)

// ErrEvaluation wraps a panic raised while computing a node's output.
var ErrEvaluation = errors.New("evaluation failed")

// Evaluate forces the output of every root concurrently and waits for all of
// them. Subtrees shared between roots are still computed at most once.
//
// A panic inside an operator (e.g. integer division by zero) is returned as
// an error wrapping ErrEvaluation. If ctx is cancelled, roots that have not
// started are skipped and ctx.Err() is returned.
func Evaluate[T tensor.Element, I tensor.Index](ctx context.Context, roots ...Node[T, I]) error {
	log := klog.FromContext(ctx)
	g, ctx := errgroup.WithContext(ctx)

	for _, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := force(root); err != nil {
				return err
			}
			log.V(4).Info("evaluated node", "id", root.ID(), "kind", root.Kind(), "shape", root.Shape())
			return nil
		})
	}

	return g.Wait()
}

// force calls Output, converting a panic into an error.
func force[T tensor.Element, I tensor.Index](n Node[T, I]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("node %v: %w: %w", n.ID(), ErrEvaluation, rerr)
				return
			}
			err = fmt.Errorf("node %v: %w: %v", n.ID(), ErrEvaluation, r)
		}
	}()
	n.Output()
	return nil
}

// Walk visits every node reachable from root depth-first, children before
// their parent, left to right. This is the order Output evaluates them in.
// A node reachable through several parents is visited once.
// Walk stops at the first error returned by fn.
func Walk[T tensor.Element, I tensor.Index](root Node[T, I], fn func(Node[T, I]) error) error {
	seen := make(map[NodeID]bool)
	var visit func(n Node[T, I]) error
	visit = func(n Node[T, I]) error {
		n = unwrap(n)
		if seen[n.ID()] {
			return nil
		}
		seen[n.ID()] = true
		for _, in := range n.Inputs() {
			if err := visit(in); err != nil {
				return err
			}
		}
		return fn(n)
	}
	return visit(root)
}

// Leaves returns the distinct constants reachable from root in evaluation order.
func Leaves[T tensor.Element, I tensor.Index](root Node[T, I]) []*Constant[T, I] {
	var leaves []*Constant[T, I]
	_ = Walk(root, func(n Node[T, I]) error {
		if c, ok := n.(*Constant[T, I]); ok {
			leaves = append(leaves, c)
		}
		return nil
	})
	return leaves
}
