package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementwiseOps(t *testing.T) {
	a := Must(Vector(1, 2, 3))
	b := Must(Vector(4, 5, 6))

	tests := []struct {
		name string
		got  *Array[int, Rank1]
		want []int
	}{
		{"add", a.Add(b), []int{5, 7, 9}},
		{"sub", a.Sub(b), []int{-3, -3, -3}},
		{"mul", a.Mul(b), []int{4, 10, 18}},
		{"div", a.Div(b), []int{0, 0, 0}}, // integer division truncates
		{"neg", a.Neg(), []int{-1, -2, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Data())
			assert.Equal(t, a.Dims(), tt.got.Dims())
		})
	}
}

func TestAddPositional(t *testing.T) {
	a := Must(Matrix([][]float64{{1.5, -2}, {0, 8}, {3, 3}}))
	b := Must(Matrix([][]float64{{0.5, 2}, {7, -1}, {1, 0}}))
	sum := a.Add(b)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			idx := Rank2{i, j}
			if got, want := sum.At(idx), a.At(idx)+b.At(idx); got != want {
				t.Errorf("sum%v = %v, want %v", idx, got, want)
			}
		}
	}
}

func TestDoubleNegation(t *testing.T) {
	a := Must(Matrix([][]int32{{1, -2, 3}, {0, 5, -6}}))
	assert.True(t, a.Neg().Neg().Equal(a))
}

func TestFloatDivision(t *testing.T) {
	a := Must(Vector(1.0, 2.0, 3.0))
	b := Must(Vector(4.0, 5.0, 6.0))
	assert.InDeltaSlice(t, []float64{0.25, 0.4, 0.5}, a.Div(b).Data(), 1e-12)
}

func TestIntegerWraparound(t *testing.T) {
	a := Must(Vector[int8](127))
	b := Must(Vector[int8](1))
	assert.Equal(t, []int8{-128}, a.Add(b).Data())
}

func TestShapeMismatchPanics(t *testing.T) {
	a := Must(Vector(1, 2, 3))
	b := Must(Vector(1, 2))

	defer func() {
		r := recover()
		require.NotNil(t, r, "Add() should panic on mismatched extents")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrShapeMismatch)

		var shapeErr *ShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, "add", shapeErr.Op)
		assert.Equal(t, []int{3}, shapeErr.LHS)
		assert.Equal(t, []int{2}, shapeErr.RHS)
	}()
	a.Add(b)
}

func TestCheckSameShape(t *testing.T) {
	a := Zeros[int](MustShape(Rank2{2, 3}))
	b := Zeros[int](MustShape(Rank2{3, 2}))

	assert.NoError(t, CheckSameShape("add", a, a))
	err := CheckSameShape("add", a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, "add: shape mismatch: [2 3] vs [3 2]", err.Error())
}

func TestMapZip(t *testing.T) {
	a := Must(Vector(1, 2, 3))
	sq := a.Map(func(x int) int { return x * x })
	assert.Equal(t, []int{1, 4, 9}, sq.Data())

	maxOf := a.Zip(Must(Vector(3, 2, 1)), func(x, y int) int { return max(x, y) })
	assert.Equal(t, []int{3, 2, 3}, maxOf.Data())

	assert.Equal(t, []int{1, 2, 3}, a.Data(), "operands must be left untouched")
}

func TestComplexElements(t *testing.T) {
	a := Must(Vector(complex(1, 1), complex(0, 2)))
	b := Must(Vector(complex(1, -1), complex(0, 1)))
	prod := a.Mul(b)
	assert.Equal(t, complex128(2), prod.At(Rank1{0}), "(1+i)(1-i) = 2")
	assert.Equal(t, complex128(-2), prod.At(Rank1{1}), "(2i)(i) = -2")
}
