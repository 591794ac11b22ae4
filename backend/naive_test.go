package backend_test

import (
	"math/rand"
	"testing"

	"github.com/go-amgo/amgo/backend"
	"github.com/go-amgo/amgo/sparse"
	"github.com/stretchr/testify/require"
)

func randomTridiag(n int, seed int64) *sparse.CSR {
	rng := rand.New(rand.NewSource(seed))
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
		dense[i][i] = 4 + rng.Float64()
		if i > 0 {
			v := -1 - rng.Float64()*0.5
			dense[i][i-1] = v
			dense[i-1][i] = v
		}
	}
	a, _ := sparse.DenseSource(dense).Build()
	return a
}

func TestNaiveMatchesCPUOnSPMV(t *testing.T) {
	a := randomTridiag(400, 7)
	x := make([]float64, 400)
	for i := range x {
		x[i] = float64(i%5) - 2
	}

	cpu := backend.NewCPU(0)
	naive := backend.NewNaive(0)

	y1 := make([]float64, 400)
	y2 := make([]float64, 400)
	require.NoError(t, cpu.SPMV(1.5, a, x, 0.5, y1))
	require.NoError(t, naive.SPMV(1.5, a, x, 0.5, y2))
	require.Equal(t, y1, y2)
}

func TestNaiveMatchesCPUOnResidual(t *testing.T) {
	a := randomTridiag(400, 11)
	x := make([]float64, 400)
	rhs := make([]float64, 400)
	for i := range x {
		x[i] = float64(i) * 0.01
		rhs[i] = 1
	}

	cpu := backend.NewCPU(0)
	naive := backend.NewNaive(0)

	out1 := make([]float64, 400)
	out2 := make([]float64, 400)
	require.NoError(t, cpu.Residual(rhs, a, x, out1))
	require.NoError(t, naive.Residual(rhs, a, x, out2))
	require.Equal(t, out1, out2)
}
