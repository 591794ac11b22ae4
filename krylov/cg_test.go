package krylov_test

import (
	"testing"

	"github.com/go-amgo/amgo/krylov"
	"github.com/go-amgo/amgo/sparse"
	"github.com/stretchr/testify/require"
)

func poisson1D(t *testing.T, n int) *sparse.CSR {
	t.Helper()
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
		dense[i][i] = 2
		if i > 0 {
			dense[i][i-1] = -1
		}
		if i < n-1 {
			dense[i][i+1] = -1
		}
	}
	a, err := sparse.DenseSource(dense).Build()
	require.NoError(t, err)
	return a
}

func TestSolveConvergesOnSPDSystem(t *testing.T) {
	a := poisson1D(t, 20)
	b := make([]float64, 20)
	for i := range b {
		b[i] = 1
	}

	matVec := func(dst, x []float64) error { return sparse.SPMV(1, a, x, 0, dst) }
	result, err := krylov.Solve(matVec, b, nil, krylov.Settings{Tolerance: 1e-10})
	require.NoError(t, err)

	check := make([]float64, 20)
	require.NoError(t, sparse.SPMV(1, a, result.X, 0, check))
	for i := range check {
		require.InDelta(t, b[i], check[i], 1e-6)
	}
}

func TestSolveReturnsErrMaxIterationsOnBudgetExhaustion(t *testing.T) {
	a := poisson1D(t, 50)
	b := make([]float64, 50)
	for i := range b {
		b[i] = 1
	}
	matVec := func(dst, x []float64) error { return sparse.SPMV(1, a, x, 0, dst) }
	_, err := krylov.Solve(matVec, b, nil, krylov.Settings{Tolerance: 1e-14, MaxIterations: 1})
	require.ErrorIs(t, err, krylov.ErrMaxIterations)
}
