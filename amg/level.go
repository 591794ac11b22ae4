// SPDX-License-Identifier: MIT
package amg

import (
	"github.com/go-amgo/amgo/backend"
	"github.com/go-amgo/amgo/relax"
	"github.com/go-amgo/amgo/sparse"
)

// level is one rung of the hierarchy. Non-terminal levels carry the
// operator, transfer operators to the next coarser level, a bound
// Relaxation, and scratch vectors (f, u, t) sized to this level's row
// count. Terminal levels carry only a direct solver; their a field is
// non-nil only when the terminal level is also the finest level (the
// input was already coarse enough that no coarsening ever ran), which
// is what SystemMatrix reports. nnz is recorded at construction for
// every level, including terminal ones whose a is otherwise discarded,
// so diagnostics can still see the coarsest level's nonzero count.
type level struct {
	terminal bool
	rows     int
	nnz      int

	a *sparse.CSR
	p *sparse.CSR
	r *sparse.CSR

	relax relax.Relaxation
	solve backend.DirectSolver

	f, u, t []float64
}
