// SPDX-License-Identifier: MIT
package coarsen

import (
	"github.com/go-amgo/amgo/sparse"
)

// Aggregation is the default Coarsening strategy: unsmoothed aggregation
// over a strength-of-connection graph, followed by one Jacobi-smoothing
// pass of the tentative prolongator (smoothed aggregation).
type Aggregation struct {
	opts Options
}

// NewAggregation builds an Aggregation strategy with the given options.
func NewAggregation(opts ...Option) *Aggregation {
	return &Aggregation{opts: buildOptions(opts...)}
}

// TransferOperators builds P and R for one level per the greedy
// aggregation rule: a row seeds a new aggregate if it is unaggregated
// and has at least one unaggregated strong neighbor; rows left over
// after that pass are attached to the first aggregate among their
// strong neighbors; rows with no strong connections at all (isolated,
// e.g. every row of a diagonal matrix) never join an aggregate.
func (s *Aggregation) TransferOperators(a *sparse.CSR) (p, r *sparse.CSR, err error) {
	n := a.Rows
	nb := strengthGraph(a, s.opts.Theta)

	aggOf := make([]int, n)
	for i := range aggOf {
		aggOf[i] = -1
	}
	var aggregates [][]int

	for i := 0; i < n; i++ {
		if aggOf[i] != -1 || len(nb[i]) == 0 {
			continue
		}
		hasFreeNeighbor := false
		for _, j := range nb[i] {
			if aggOf[j] == -1 {
				hasFreeNeighbor = true
				break
			}
		}
		if !hasFreeNeighbor {
			continue
		}

		id := len(aggregates)
		members := []int{i}
		aggOf[i] = id
		for _, j := range nb[i] {
			if aggOf[j] == -1 {
				aggOf[j] = id
				members = append(members, j)
			}
		}
		aggregates = append(aggregates, members)
	}

	for i := 0; i < n; i++ {
		if aggOf[i] != -1 {
			continue
		}
		for _, j := range nb[i] {
			if aggOf[j] != -1 {
				aggOf[i] = aggOf[j]
				aggregates[aggOf[j]] = append(aggregates[aggOf[j]], i)
				break
			}
		}
	}

	m := len(aggregates)
	if m == 0 {
		return nil, nil, ErrDegenerate
	}

	tentative, err := buildTentativeP(n, m, aggOf)
	if err != nil {
		return nil, nil, err
	}

	omega := s.opts.SmoothingOmega
	diag := signedDiag(a)
	if omega == 0 {
		rho := spectralRadiusEstimate(a, diag)
		omega = 4.0 / (3.0 * rho)
	}

	p, err = smoothProlongator(a, tentative, diag, omega)
	if err != nil {
		return nil, nil, err
	}
	r = sparse.Transpose(p)
	return p, r, nil
}

// buildTentativeP assembles the n x m 0/1 aggregate-indicator matrix;
// rows with aggOf[i] == -1 are left all-zero.
func buildTentativeP(n, m int, aggOf []int) (*sparse.CSR, error) {
	tr, err := sparse.NewTriplets(n, m)
	if err != nil {
		return nil, err
	}
	for i, id := range aggOf {
		if id == -1 {
			continue
		}
		if err := tr.Add(i, id, 1); err != nil {
			return nil, err
		}
	}
	return tr.Build(), nil
}

// smoothProlongator applies one Jacobi-smoothing pass to the tentative
// prolongator: P = (I - omega*D^-1*A) * tentative, computed as
// tentative - omega*D^-1*(A*tentative) to avoid materializing I - X.
func smoothProlongator(a, tentative *sparse.CSR, diag []float64, omega float64) (*sparse.CSR, error) {
	ap, err := sparse.Product(a, tentative)
	if err != nil {
		return nil, err
	}

	n, m := tentative.Rows, tentative.Cols
	tr, err := sparse.NewTriplets(n, m)
	if err != nil {
		return nil, err
	}

	tcols, tvals := make([][]int, n), make([][]float64, n)
	for i := 0; i < n; i++ {
		tcols[i], tvals[i] = tentative.Row(i)
	}

	for i := 0; i < n; i++ {
		for k, c := range tcols[i] {
			if err := tr.Add(i, c, tvals[i][k]); err != nil {
				return nil, err
			}
		}
		factor := -omega
		if diag[i] != 0 {
			factor = -omega / diag[i]
		} else {
			factor = 0
		}
		cols, vals := ap.Row(i)
		for k, c := range cols {
			if err := tr.Add(i, c, factor*vals[k]); err != nil {
				return nil, err
			}
		}
	}

	return tr.Build(), nil
}
