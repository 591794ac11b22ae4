// SPDX-License-Identifier: MIT
package coarsen

import (
	"math"

	"github.com/go-amgo/amgo/sparse"
)

// ClassicalRS is a second Coarsening strategy, demonstrating that the
// contract admits more than smoothed aggregation: classical
// Ruge-Stuben-style coarsening, splitting the unknowns into coarse (C)
// and fine (F) sets by a greedy maximal-independent-set pass over the
// strength-of-connection graph, then interpolating each F point directly
// from its strongly-connected C neighbors. The interpolation weights are a
// simplified variant of Ruge-Stuben direct interpolation: each weight is
// |A[i,j]| divided by the sum of |A[i,k]| over i's strong C neighbors k,
// so every row of P sums to 1; signs and the diagonal are not used.
type ClassicalRS struct {
	opts Options
}

// NewClassicalRS builds a ClassicalRS strategy with the given options.
// SmoothingOmega is ignored; this strategy never smooths its
// interpolation operator.
func NewClassicalRS(opts ...Option) *ClassicalRS {
	return &ClassicalRS{opts: buildOptions(opts...)}
}

// TransferOperators splits a's unknowns into C/F sets and builds a
// direct-interpolation prolongator.
func (s *ClassicalRS) TransferOperators(a *sparse.CSR) (p, r *sparse.CSR, err error) {
	n := a.Rows
	nb := strengthGraph(a, s.opts.Theta)

	isCoarse := make([]bool, n)
	for i := 0; i < n; i++ {
		coarseNeighbor := false
		for _, j := range nb[i] {
			if isCoarse[j] {
				coarseNeighbor = true
				break
			}
		}
		if !coarseNeighbor {
			isCoarse[i] = true
		}
	}

	// Second pass: an F point stranded without any coarse strong
	// neighbor would interpolate from nothing; promote it to C.
	for i := 0; i < n; i++ {
		if isCoarse[i] {
			continue
		}
		hasCoarseNeighbor := false
		for _, j := range nb[i] {
			if isCoarse[j] {
				hasCoarseNeighbor = true
				break
			}
		}
		if !hasCoarseNeighbor {
			isCoarse[i] = true
		}
	}

	colOf := make([]int, n)
	m := 0
	for i := 0; i < n; i++ {
		if isCoarse[i] {
			colOf[i] = m
			m++
		} else {
			colOf[i] = -1
		}
	}
	if m == 0 {
		return nil, nil, ErrDegenerate
	}

	tr, err := sparse.NewTriplets(n, m)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		if isCoarse[i] {
			if err := tr.Add(i, colOf[i], 1); err != nil {
				return nil, nil, err
			}
			continue
		}

		cols, vals := a.Row(i)
		var sum float64
		for k, c := range cols {
			if isCoarse[c] && colOf[c] >= 0 {
				if contains(nb[i], c) {
					sum += math.Abs(vals[k])
				}
			}
		}
		if sum == 0 {
			continue
		}
		for k, c := range cols {
			if isCoarse[c] && contains(nb[i], c) {
				w := math.Abs(vals[k]) / sum
				if err := tr.Add(i, colOf[c], w); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	p = tr.Build()
	r = sparse.Transpose(p)
	return p, r, nil
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
