package relax_test

import (
	"testing"

	"github.com/go-amgo/amgo/relax"
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

func TestSPAI0ReducesResidualNorm(t *testing.T) {
	a := poisson1D(t, 9)
	rhs := make([]float64, 9)
	for i := range rhs {
		rhs[i] = 1
	}
	x := make([]float64, 9)
	tmp := make([]float64, 9)

	s, err := relax.NewSPAI0(a)
	require.NoError(t, err)

	before := make([]float64, 9)
	require.NoError(t, sparse.Residual(rhs, a, x, before))
	normBefore := normOf(before)

	require.NoError(t, s.ApplyPre(a, rhs, x, tmp))

	after := make([]float64, 9)
	require.NoError(t, sparse.Residual(rhs, a, x, after))
	normAfter := normOf(after)

	require.Less(t, normAfter, normBefore)
}

func TestSPAI0ZeroRowLeavesXUnchanged(t *testing.T) {
	a, err := sparse.NewCSR(2, 2)
	require.NoError(t, err)
	a.RowPtr = []int{0, 0, 0}
	rhs := []float64{3, 5}
	x := []float64{1, 2}
	tmp := make([]float64, 2)

	var logged []string
	s, err := relax.NewSPAI0(a, relax.WithLogger(recordingLogger{&logged}))
	require.NoError(t, err)
	require.NoError(t, s.ApplyPre(a, rhs, x, tmp))
	require.Equal(t, []float64{1, 2}, x)
	require.Len(t, logged, 2)
}

func normOf(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return sum
}

type recordingLogger struct {
	lines *[]string
}

func (r recordingLogger) Printf(format string, args ...any) {
	*r.lines = append(*r.lines, format)
}
