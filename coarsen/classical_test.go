package coarsen_test

import (
	"testing"

	"github.com/go-amgo/amgo/coarsen"
	"github.com/go-amgo/amgo/sparse"
	"github.com/stretchr/testify/require"
)

func TestClassicalRSCoarsensPoisson(t *testing.T) {
	a := poisson1D(t, 9)
	s := coarsen.NewClassicalRS()
	p, r, err := s.TransferOperators(a)
	require.NoError(t, err)
	require.Equal(t, 9, p.Rows)
	require.Greater(t, p.Cols, 0)
	require.Less(t, p.Cols, 9)
	require.Equal(t, p.Cols, r.Rows)
}

func TestClassicalRSRowsSumToOne(t *testing.T) {
	a := poisson1D(t, 9)
	s := coarsen.NewClassicalRS()
	p, _, err := s.TransferOperators(a)
	require.NoError(t, err)

	// every row of P sums to 1 (normalized interpolation weights, or an
	// exact 1-entry identity row for a coarse point).
	for i := 0; i < p.Rows; i++ {
		_, vals := p.Row(i)
		var sum float64
		for _, v := range vals {
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestClassicalRSOnDiagonalMatrixMarksEveryPointCoarse(t *testing.T) {
	// Every row is isolated in the strength graph, so the greedy MIS
	// disqualifies nothing and every point ends up coarse: P is the
	// n x n identity, unlike Aggregation's degenerate zero-width result
	// for the same input.
	dense := [][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	}
	a, err := sparse.DenseSource(dense).Build()
	require.NoError(t, err)

	s := coarsen.NewClassicalRS()
	p, _, err := s.TransferOperators(a)
	require.NoError(t, err)
	require.Equal(t, 3, p.Cols)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, p.ToDense())
}
