package amg_test

import (
	"testing"

	"github.com/go-amgo/amgo/amg"
	"github.com/go-amgo/amgo/backend"
	"github.com/go-amgo/amgo/relax"
	"github.com/go-amgo/amgo/sparse"
	"github.com/stretchr/testify/require"
)

type countingRelax struct {
	pre, post *int
}

func (c countingRelax) ApplyPre(a *sparse.CSR, rhs, x, tmp []float64) error {
	*c.pre++
	return nil
}

func (c countingRelax) ApplyPost(a *sparse.CSR, rhs, x, tmp []float64) error {
	*c.post++
	return nil
}

// TestCycleUsesDistinctPrePostCounts pins post-smoothing to run NPost
// sweeps, not NPre, against regression to a copy-paste bug that would
// run NPre sweeps twice.
func TestCycleUsesDistinctPrePostCounts(t *testing.T) {
	a := poisson1D(t, 9)

	var pre, post int
	params := amg.DefaultParams()
	params.CoarseEnough = 4 // forces exactly one non-terminal level
	params.NPre = 1
	params.NPost = 3
	params.RelaxFactory = func(a *sparse.CSR, opts ...relax.Option) (relax.Relaxation, error) {
		return countingRelax{pre: &pre, post: &post}, nil
	}

	e, err := amg.New(a, params, backend.NewCPU(0))
	require.NoError(t, err)

	rhs := make([]float64, 9)
	for i := range rhs {
		rhs[i] = 1
	}
	x := make([]float64, 9)

	require.NoError(t, e.Cycle(rhs, x))
	require.Equal(t, 1, pre)
	require.Equal(t, 3, post)
}

func TestCycleRepeatsFullBlockNCycleTimes(t *testing.T) {
	a := poisson1D(t, 9)

	var pre, post int
	params := amg.DefaultParams()
	params.CoarseEnough = 4
	params.NPre = 1
	params.NPost = 1
	params.NCycle = 3
	params.RelaxFactory = func(a *sparse.CSR, opts ...relax.Option) (relax.Relaxation, error) {
		return countingRelax{pre: &pre, post: &post}, nil
	}

	e, err := amg.New(a, params, backend.NewCPU(0))
	require.NoError(t, err)

	rhs := make([]float64, 9)
	x := make([]float64, 9)
	require.NoError(t, e.Cycle(rhs, x))
	require.Equal(t, 3, pre)
	require.Equal(t, 3, post)
}

func TestCycleRejectsShapeMismatch(t *testing.T) {
	a := poisson1D(t, 9)
	e, err := amg.New(a, amg.DefaultParams(), backend.NewCPU(0))
	require.NoError(t, err)

	err = e.Cycle(make([]float64, 3), make([]float64, 9))
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}
