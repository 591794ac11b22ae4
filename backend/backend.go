// SPDX-License-Identifier: MIT
package backend

import (
	"errors"

	"github.com/go-amgo/amgo/sparse"
)

// ErrDirectSolveFailed is returned by a DirectSolver when the coarsest
// level operator cannot be factored (singular or numerically unstable).
var ErrDirectSolveFailed = errors.New("backend: direct solve failed")

// ErrBackend wraps a kernel-level failure a concrete backend cannot
// recover from; amg wraps this again with level context.
var ErrBackend = errors.New("backend: kernel failure")

// Matrix and Vector are the kinds the Backend kernels operate on. They
// are type aliases of *sparse.CSR and []float64, so they are the very
// same types as sparse's, and amg also uses *sparse.CSR directly.
type Matrix = *sparse.CSR
type Vector = []float64

// DirectSolver factors a coarsest-level operator once and then solves
// for arbitrarily many right-hand sides against that factorization.
type DirectSolver interface {
	Solve(rhs, x Vector) error
}

// Backend bundles the sparse kernels amg.Engine's cycling phase needs
// plus a coarsest-level direct solver and the threshold below which a
// level is considered coarse enough to stop recursing.
type Backend interface {
	SPMV(alpha float64, a Matrix, x Vector, beta float64, y Vector) error
	Residual(rhs []float64, a Matrix, x Vector, out Vector) error
	VMul(alpha float64, d, x Vector, beta float64, y Vector) error

	// NewDirectSolver factors a (expected to be small — the coarsest
	// level) and returns a DirectSolver bound to that factorization.
	NewDirectSolver(a Matrix) (DirectSolver, error)

	// CoarseEnough returns the row count at or below which amg.Engine
	// stops coarsening and falls back to the direct solver.
	CoarseEnough() int
}
