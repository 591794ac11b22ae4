package backend_test

import (
	"testing"

	"github.com/go-amgo/amgo/backend"
	"github.com/go-amgo/amgo/sparse"
	"github.com/stretchr/testify/require"
)

func TestCPUSPMVMatchesSparse(t *testing.T) {
	a, err := sparse.DenseSource([][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	}).Build()
	require.NoError(t, err)

	be := backend.NewCPU(0)
	x := []float64{1, 1, 1}
	y := make([]float64, 3)
	require.NoError(t, be.SPMV(1, a, x, 0, y))
	require.Equal(t, []float64{1, 0, 1}, y)
}

func TestCPUDefaultCoarseEnoughIs300(t *testing.T) {
	be := backend.NewCPU(0)
	require.Equal(t, 300, be.CoarseEnough())

	be2 := backend.NewCPU(50)
	require.Equal(t, 50, be2.CoarseEnough())
}

func TestCPUDirectSolverSolvesSmallSystem(t *testing.T) {
	a, err := sparse.DenseSource([][]float64{
		{4, 1},
		{1, 3},
	}).Build()
	require.NoError(t, err)

	be := backend.NewCPU(0)
	solver, err := be.NewDirectSolver(a)
	require.NoError(t, err)

	rhs := []float64{1, 2}
	x := make([]float64, 2)
	require.NoError(t, solver.Solve(rhs, x))

	out := make([]float64, 2)
	require.NoError(t, sparse.SPMV(1, a, x, 0, out))
	require.InDelta(t, rhs[0], out[0], 1e-9)
	require.InDelta(t, rhs[1], out[1], 1e-9)
}

func TestCPUDirectSolverSingularMatrixFails(t *testing.T) {
	a, err := sparse.DenseSource([][]float64{
		{1, 1},
		{1, 1},
	}).Build()
	require.NoError(t, err)

	be := backend.NewCPU(0)
	_, err = be.NewDirectSolver(a)
	require.ErrorIs(t, err, backend.ErrDirectSolveFailed)
}
