// SPDX-License-Identifier: MIT
package amg

import "errors"

var (
	// ErrShape is returned by New when the input operator is not square.
	ErrShape = errors.New("amg: input matrix must be square")

	// ErrDegenerateCoarsening is returned by New when a Coarsening
	// strategy produces a zero-width prolongator at some level.
	ErrDegenerateCoarsening = errors.New("amg: degenerate coarsening")

	// ErrDirectSolveFailure is returned by New when the coarsest-level
	// operator cannot be factored by the backend's direct solver.
	ErrDirectSolveFailure = errors.New("amg: coarsest-level factorization failed")

	// ErrBackend wraps a backend kernel failure encountered during setup
	// or cycling.
	ErrBackend = errors.New("amg: backend failure")
)
