// SPDX-License-Identifier: MIT
package coarsen

import (
	"errors"
	"fmt"

	"github.com/go-amgo/amgo/sparse"
)

// ErrDegenerate is returned by TransferOperators when a strategy produces
// a coarse level with zero degrees of freedom (cols(P) == 0). A diagonal
// fine operator, which has no off-diagonal strength at all, is the
// canonical input that triggers this.
var ErrDegenerate = errors.New("coarsen: degenerate coarsening, zero-width prolongator")

// Coarsening builds one level's transfer operators from that level's
// fine operator. Implementations must return column-sorted p and r with
// r == p^T in shape (rows(r) == cols(p), cols(r) == rows(p)).
type Coarsening interface {
	TransferOperators(a *sparse.CSR) (p, r *sparse.CSR, err error)
}

// Galerkin computes the coarse-level operator R*A*P, the standard
// variationally-consistent coarse operator shared by every Coarsening
// strategy in this package.
func Galerkin(a, p, r *sparse.CSR) (*sparse.CSR, error) {
	ap, err := sparse.Product(a, p)
	if err != nil {
		return nil, fmt.Errorf("coarsen: Galerkin A*P: %w", err)
	}
	rap, err := sparse.Product(r, ap)
	if err != nil {
		return nil, fmt.Errorf("coarsen: Galerkin R*(A*P): %w", err)
	}
	return rap, nil
}
