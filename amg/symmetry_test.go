package amg_test

import (
	"testing"

	"github.com/go-amgo/amgo/coarsen"
	"github.com/stretchr/testify/require"
)

// TestGalerkinPreservesSymmetry checks that the coarse-level operator
// amg.New builds at each level (R*A*P with R = P^T) stays symmetric
// when the fine operator is, since the engine's own setup pipeline
// relies on that property to keep the whole hierarchy SPD-preserving.
func TestGalerkinPreservesSymmetry(t *testing.T) {
	a := poisson1D(t, 33)

	s := coarsen.NewAggregation()
	p, r, err := s.TransferOperators(a)
	require.NoError(t, err)

	coarseA, err := coarsen.Galerkin(a, p, r)
	require.NoError(t, err)

	dense := coarseA.ToDense()
	for i := range dense {
		for j := range dense[i] {
			require.InDelta(t, dense[i][j], dense[j][i], 1e-9, "asymmetry at (%d,%d)", i, j)
		}
	}
}
