// SPDX-License-Identifier: MIT
package relax

import (
	"fmt"

	"github.com/go-amgo/amgo/sparse"
)

// SPAI0 is the order-0 sparse approximate inverse: a diagonal
// preconditioner M with M[i] = A[i,i] / sum_j A[i,j]^2, the cheapest
// member of the SPAI family and the reference smoother this package's
// contract is modeled on.
type SPAI0 struct {
	m []float64
}

// NewSPAI0 precomputes M from a's entries. Rows whose denominator is zero
// (an all-zero row) get M[i] = 0 and are reported to the configured
// Logger rather than rejected: the row contributes nothing during
// smoothing, which is tolerable, not fatal.
func NewSPAI0(a *sparse.CSR, opts ...Option) (*SPAI0, error) {
	o := buildOptions(opts...)

	n := a.Rows
	m := make([]float64, n)
	zeroDenom := make([]bool, n)

	sparse.Parallelize(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			cols, vals := a.Row(i)
			var denom, diag float64
			for k, c := range cols {
				v := vals[k]
				denom += v * v
				if c == i {
					diag = v
				}
			}
			if denom == 0 {
				m[i] = 0
				zeroDenom[i] = true
				continue
			}
			m[i] = diag / denom
		}
	})

	for i, z := range zeroDenom {
		if z {
			o.Logger.Printf("relax: SPAI0 row %d has zero denominator, M[%d]=0", i, i)
		}
	}

	return &SPAI0{m: m}, nil
}

// ApplyPre runs one smoothing sweep: x <- x + M * (rhs - A*x).
func (s *SPAI0) ApplyPre(a *sparse.CSR, rhs, x, tmp []float64) error {
	return s.apply(a, rhs, x, tmp)
}

// ApplyPost is identical to ApplyPre; SPAI0 has no pre/post asymmetry.
func (s *SPAI0) ApplyPost(a *sparse.CSR, rhs, x, tmp []float64) error {
	return s.apply(a, rhs, x, tmp)
}

func (s *SPAI0) apply(a *sparse.CSR, rhs, x, tmp []float64) error {
	if err := sparse.Residual(rhs, a, x, tmp); err != nil {
		return fmt.Errorf("relax: SPAI0: %w", err)
	}
	return sparse.VMul(1, s.m, tmp, 1, x)
}
