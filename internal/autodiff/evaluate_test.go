package autodiff_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndgraph/internal/autodiff"
	"github.com/born-ml/ndgraph/internal/tensor"
)

func TestEvaluate(t *testing.T) {
	a := vec(1, 2)
	b := vec(3, 4)
	op, calls := countingAdd()

	shared, err := autodiff.Combine("add", a.Node(), b.Node(), op)
	require.NoError(t, err)
	s := autodiff.Wrap[int, tensor.Rank1](shared)

	roots := []autodiff.Node[int, tensor.Rank1]{s.Mul(a), s.Sub(b), s.Neg(), s}
	require.NoError(t, autodiff.Evaluate(context.Background(), roots...))

	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, []int{4, 12}, roots[0].Output().Data())
	assert.Equal(t, []int{1, 2}, roots[1].Output().Data())
	assert.Equal(t, []int{-4, -6}, roots[2].Output().Data())
}

func TestEvaluateReportsPanics(t *testing.T) {
	a := vec(1, 2)
	zero := vec(0, 0)

	err := autodiff.Evaluate[int, tensor.Rank1](context.Background(), a.Div(zero), a)
	require.Error(t, err)
	assert.ErrorIs(t, err, autodiff.ErrEvaluation)
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := vec(1, 2)
	sum := a.Add(a)
	err := autodiff.Evaluate[int, tensor.Rank1](ctx, sum)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEvaluateNoRoots(t *testing.T) {
	assert.NoError(t, autodiff.Evaluate[int, tensor.Rank1](context.Background()))
}

func TestWalkOrder(t *testing.T) {
	a := vec(1, 2)
	b := vec(3, 4)
	sum := a.Add(b)
	root := sum.Mul(a).Neg()

	var order []autodiff.NodeID
	require.NoError(t, autodiff.Walk[int, tensor.Rank1](root, func(n autodiff.Node[int, tensor.Rank1]) error {
		order = append(order, n.ID())
		return nil
	}))

	mul := root.Inputs()[0]
	assert.Equal(t, []autodiff.NodeID{a.ID(), b.ID(), sum.ID(), mul.ID(), root.ID()}, order,
		"children first, shared leaf visited once")
}

func TestWalkStopsOnError(t *testing.T) {
	a := vec(1, 2)
	root := a.Add(a).Add(a)
	stop := errors.New("stop")

	visits := 0
	err := autodiff.Walk[int, tensor.Rank1](root, func(autodiff.Node[int, tensor.Rank1]) error {
		visits++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visits)
}

func TestLeaves(t *testing.T) {
	a := vec(1, 2)
	b := vec(3, 4)
	root := a.Add(b).Mul(a)

	leaves := autodiff.Leaves[int, tensor.Rank1](root)
	require.Len(t, leaves, 2)
	assert.Equal(t, a.ID(), leaves[0].ID())
	assert.Equal(t, b.ID(), leaves[1].ID())
	assert.False(t, root.Node().(*autodiff.Binary[int, tensor.Rank1]).Evaluated(), "walking does not evaluate")
}
