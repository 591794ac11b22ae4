package amg_test

import (
	"testing"

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

// poisson2D builds the n^2 x n^2 5-point-stencil Laplacian for an n x n
// grid with Dirichlet boundaries: diagonal 4, off-diagonal -1 to each
// in-grid neighbor (up/down/left/right).
func poisson2D(t *testing.T, n int) *sparse.CSR {
	t.Helper()
	size := n * n
	idx := func(r, c int) int { return r*n + c }

	tr, err := sparse.NewTriplets(size, size)
	require.NoError(t, err)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			i := idx(r, c)
			require.NoError(t, tr.Add(i, i, 4))
			if r > 0 {
				require.NoError(t, tr.Add(i, idx(r-1, c), -1))
			}
			if r < n-1 {
				require.NoError(t, tr.Add(i, idx(r+1, c), -1))
			}
			if c > 0 {
				require.NoError(t, tr.Add(i, idx(r, c-1), -1))
			}
			if c < n-1 {
				require.NoError(t, tr.Add(i, idx(r, c+1), -1))
			}
		}
	}
	return tr.Build()
}
