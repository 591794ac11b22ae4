// SPDX-License-Identifier: MIT
package relax

import (
	"fmt"

	"github.com/go-amgo/amgo/sparse"
)

// Jacobi is damped Jacobi relaxation: x <- x + omega * D^-1 * (rhs - A*x),
// offered alongside SPAI0 per the contract's requirement that at least
// one classical alternative smoother be available.
type Jacobi struct {
	invDiag []float64
	omega   float64
}

// NewJacobi precomputes a's inverse diagonal. omega defaults to 0.7 and
// must lie in (0, 2) or ErrInvalidOmega is returned.
func NewJacobi(a *sparse.CSR, opts ...Option) (*Jacobi, error) {
	o := buildOptions(opts...)
	if o.Omega <= 0 || o.Omega >= 2 {
		return nil, ErrInvalidOmega
	}

	n := a.Rows
	inv := make([]float64, n)
	sparse.Parallelize(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, _ := a.At(i, i)
			if v != 0 {
				inv[i] = 1 / v
			}
		}
	})

	return &Jacobi{invDiag: inv, omega: o.Omega}, nil
}

// ApplyPre runs one damped Jacobi sweep.
func (j *Jacobi) ApplyPre(a *sparse.CSR, rhs, x, tmp []float64) error {
	return j.apply(a, rhs, x, tmp)
}

// ApplyPost is identical to ApplyPre.
func (j *Jacobi) ApplyPost(a *sparse.CSR, rhs, x, tmp []float64) error {
	return j.apply(a, rhs, x, tmp)
}

func (j *Jacobi) apply(a *sparse.CSR, rhs, x, tmp []float64) error {
	if err := sparse.Residual(rhs, a, x, tmp); err != nil {
		return fmt.Errorf("relax: Jacobi: %w", err)
	}
	return sparse.VMul(j.omega, j.invDiag, tmp, 1, x)
}
