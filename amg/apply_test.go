package amg_test

import (
	"testing"

	"github.com/go-amgo/amgo/amg"
	"github.com/go-amgo/amgo/backend"
	"github.com/stretchr/testify/require"
)

func TestApplyOnZeroRHSStaysZero(t *testing.T) {
	a := poisson1D(t, 33)
	params := amg.DefaultParams()
	params.CoarseEnough = 8
	e, err := amg.New(a, params, backend.NewCPU(0))
	require.NoError(t, err)

	rhs := make([]float64, 33)
	x := make([]float64, 33)
	require.NoError(t, e.Apply(rhs, x))
	for _, v := range x {
		require.Equal(t, 0.0, v)
	}
}

func TestApplyIsRepeatable(t *testing.T) {
	a := poisson1D(t, 33)
	params := amg.DefaultParams()
	params.CoarseEnough = 8
	e, err := amg.New(a, params, backend.NewCPU(0))
	require.NoError(t, err)

	rhs := make([]float64, 33)
	for i := range rhs {
		rhs[i] = 1
	}

	x1 := make([]float64, 33)
	x2 := make([]float64, 33)
	require.NoError(t, e.Apply(rhs, x1))
	require.NoError(t, e.Apply(rhs, x2))
	require.Equal(t, x1, x2)
}

func TestApplyWithZeroPreCyclesIsIdentity(t *testing.T) {
	a := poisson1D(t, 9)
	params := amg.DefaultParams()
	params.PreCycles = 0
	e, err := amg.New(a, params, backend.NewCPU(0))
	require.NoError(t, err)

	rhs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	x := make([]float64, 9)
	require.NoError(t, e.Apply(rhs, x))
	require.Equal(t, rhs, x)
}
