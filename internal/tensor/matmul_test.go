package tensor

import (
	"testing"

	"github.com/born-ml/ndgraph/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatMul(t *testing.T) {
	a := Must(Matrix([][]int{{0, 1, 2}, {3, 4, 5}}))
	b := Must(Matrix([][]int{{1, 0}, {0, 1}, {0, 0}}))

	c := MatMul(a, b)

	assert.Equal(t, Rank2{2, 2}, c.Dims())
	assert.True(t, c.Equal(Must(Matrix([][]int{{0, 1}, {3, 4}}))), "got %v", c)
}

func TestMatMulDotProduct(t *testing.T) {
	a := Must(Matrix([][]float64{{1, 2, 3}, {4, 5, 6}}))
	b := Must(Matrix([][]float64{{7, 8}, {9, 10}, {11, 12}}))
	c := MatMul(a, b)

	m, k, n := 2, 3, 2
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			for kk := 0; kk < k; kk++ {
				want += a.At(Rank2{i, kk}) * b.At(Rank2{kk, j})
			}
			assert.Equal(t, want, c.At(Rank2{i, j}), "c[%d,%d]", i, j)
		}
	}
}

func TestMatMulIdentity(t *testing.T) {
	a := Must(Matrix([][]float32{{1, 2}, {3, 4}, {5, 6}}))
	assert.True(t, MatMul(a, Eye[float32](2)).Equal(a))
	assert.True(t, MatMul(Eye[float32](3), a).Equal(a))
}

func TestMatMulShapeMismatch(t *testing.T) {
	a := Zeros[int](MustShape(Rank2{2, 3}))
	b := Zeros[int](MustShape(Rank2{2, 3}))

	defer func() {
		r := recover()
		require.NotNil(t, r, "MatMul should panic on mismatched inner extents")
		err, ok := r.(*ShapeError)
		require.True(t, ok, "panic value should be *ShapeError, got %T", r)
		assert.Equal(t, "matmul: shape mismatch: [2 3] vs [2 3]", err.Error())
	}()
	MatMul(a, b)
}

func TestMatMulWithParallel(t *testing.T) {
	const m, k, n = 37, 11, 5
	lhsData := make([]int64, m*k)
	for i := range lhsData {
		lhsData[i] = int64(i%7 - 3)
	}
	rhsData := make([]int64, k*n)
	for i := range rhsData {
		rhsData[i] = int64(i%5 + 1)
	}
	lhs := Must(FromSlice(lhsData, Rank2{m, k}))
	rhs := Must(FromSlice(rhsData, Rank2{k, n}))

	want := MatMul(lhs, rhs)
	got := MatMulWith(lhs, rhs, parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2})

	assert.True(t, want.Equal(got))
}

func BenchmarkMatMul(b *testing.B) {
	shape := MustShape(Rank2{128, 128})
	x := Ones[float32](shape)
	y := Ones[float32](shape)

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			MatMul(x, y)
		}
	})

	b.Run("parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			MatMulWith(x, y, cfg)
		}
	})
}
