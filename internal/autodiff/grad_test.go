package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndgraph/internal/autodiff"
	"github.com/born-ml/ndgraph/internal/tensor"
)

func TestRank0ConstantGrad(t *testing.T) {
	a := autodiff.Leaf(tensor.Scalar(1.0))
	b := autodiff.Leaf(tensor.Scalar(2.0))

	daDa, err := autodiff.GradScalar(a, a)
	require.NoError(t, err)
	daDb, err := autodiff.GradScalar(a, b)
	require.NoError(t, err)

	assert.Equal(t, 1.0, daDa.Output().At(tensor.Rank0{}))
	assert.Equal(t, 0.0, daDb.Output().At(tensor.Rank0{}))
}

func TestRank1ConstantGrad(t *testing.T) {
	a := autodiff.NewConstant(tensor.Must(tensor.Vector(1.0, 2.0, 3.0)))
	b := autodiff.NewConstant(tensor.Must(tensor.Vector(1.0, 2.0, 3.0)))

	daDa, err := autodiff.GradVector[float64](a, a)
	require.NoError(t, err)
	assert.True(t, daDa.Output().Equal(tensor.Eye[float64](3)), "got %v", daDa.Output())

	daDb, err := autodiff.GradVector[float64](a, b)
	require.NoError(t, err)
	assert.True(t, daDb.Output().Equal(tensor.Zeros[float64](tensor.MustShape(tensor.Rank2{3, 3}))),
		"equal contents but distinct leaves must give zeros, got %v", daDb.Output())
}

func TestRank2ConstantGrad(t *testing.T) {
	a := autodiff.Leaf(tensor.Must(tensor.Matrix([][]int{{1, 2, 3}, {4, 5, 6}})))
	b := autodiff.Leaf(tensor.Zeros[int](tensor.MustShape(tensor.Rank2{2, 3})))

	daDa, err := autodiff.GradMatrix(a, a)
	require.NoError(t, err)
	jac := daDa.Output()
	assert.Equal(t, tensor.Rank4{2, 3, 2, 3}, jac.Dims())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 3; l++ {
					want := 0
					if i == k && j == l {
						want = 1
					}
					assert.Equal(t, want, jac.At(tensor.Rank4{i, j, k, l}))
				}
			}
		}
	}

	daDb, err := autodiff.GradMatrix(a, b)
	require.NoError(t, err)
	for _, v := range daDb.Output().Data() {
		assert.Equal(t, 0, v)
	}
}

func TestGradResultIsFreshLeaf(t *testing.T) {
	a := autodiff.NewConstant(tensor.Scalar(1.0))
	g1, err := autodiff.GradScalar[float64](a, a)
	require.NoError(t, err)
	g2, err := autodiff.GradScalar[float64](a, a)
	require.NoError(t, err)

	assert.NotEqual(t, g1.ID(), g2.ID())
	assert.NotEqual(t, a.ID(), g1.ID())

	// The gradient is itself a leaf: d(g1)/d(g1) is one.
	gg, err := autodiff.GradScalar[float64](g1, g1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, gg.Output().Item())
}

func TestGradThroughCompositeUnsupported(t *testing.T) {
	a := vec(1.0, 2.0)
	b := vec(3.0, 4.0)
	sum := a.Add(b)

	_, err := autodiff.GradVector(sum, a)
	assert.ErrorIs(t, err, autodiff.ErrNoChainRule)

	_, err = autodiff.GradVector(a, a.Neg())
	assert.ErrorIs(t, err, autodiff.ErrNoChainRule)
}

func TestGradRankMismatch(t *testing.T) {
	a := vec(1.0, 2.0)
	_, err := autodiff.Grad[tensor.Rank3](a, a)
	assert.ErrorIs(t, err, autodiff.ErrGradientRank)
}

func TestGradShapeMismatch(t *testing.T) {
	a := vec(1.0, 2.0)
	b := vec(1.0, 2.0, 3.0)
	_, err := autodiff.GradVector(a, b)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
