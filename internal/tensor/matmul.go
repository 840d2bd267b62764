package tensor

import "github.com/born-ml/ndgraph/internal/parallel"

// MatMul performs matrix multiplication.
// (M, K) @ (K, N) -> (M, N), out[i,j] = Σ_k lhs[i,k] * rhs[k,j].
// Panics with a *ShapeError if the inner extents differ.
//
// Example:
//
//	a := tensor.Must(tensor.Matrix([][]int{{0, 1, 2}, {3, 4, 5}}))
//	b := tensor.Must(tensor.Matrix([][]int{{1, 0}, {0, 1}, {0, 0}}))
//	c := tensor.MatMul(a, b) // [[0, 1], [3, 4]]
func MatMul[T Element](lhs, rhs *Array[T, Rank2]) *Array[T, Rank2] {
	return MatMulWith(lhs, rhs, parallel.Sequential())
}

// MatMulWith is MatMul with output rows distributed according to cfg.
// The result does not depend on cfg.
func MatMulWith[T Element](lhs, rhs *Array[T, Rank2], cfg parallel.Config) *Array[T, Rank2] {
	m, k := lhs.shape.dims[0], lhs.shape.dims[1]
	kAlt, n := rhs.shape.dims[0], rhs.shape.dims[1]
	if k != kAlt {
		panic(&ShapeError{Op: "matmul", LHS: []int{m, k}, RHS: []int{kAlt, n}})
	}

	result := Zeros[T](MustShape(Rank2{m, n}))
	c, a, b := result.data, lhs.data, rhs.data

	parallel.For(m, func(i int) {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}, cfg)

	return result
}
