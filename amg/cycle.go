// SPDX-License-Identifier: MIT
package amg

import (
	"fmt"

	"github.com/go-amgo/amgo/sparse"
)

// Cycle runs one full multigrid cycle starting from the caller's current
// approximation x, correcting it in place against rhs.
func (e *Engine) Cycle(rhs, x []float64) error {
	if len(e.levels) == 0 {
		return fmt.Errorf("amg: Cycle: %w", ErrShape)
	}
	lv := &e.levels[0]
	if len(rhs) != lv.rows || len(x) != lv.rows {
		return fmt.Errorf("amg: Cycle: shape mismatch: %w", sparse.ErrShapeMismatch)
	}
	return e.cycle(0, rhs, x)
}

// Apply runs params.PreCycles full cycles from a zeroed initial guess
// and stores the result in x (spec's preconditioner entry point). When
// PreCycles is 0, Apply is the identity: x is set to rhs unchanged.
func (e *Engine) Apply(rhs, x []float64) error {
	if e.params.PreCycles == 0 {
		if err := sparse.CopyVec(x, rhs); err != nil {
			return fmt.Errorf("amg: Apply: %w", err)
		}
		return nil
	}

	sparse.ClearVec(x)
	for i := 0; i < e.params.PreCycles; i++ {
		if err := e.cycle(0, rhs, x); err != nil {
			return fmt.Errorf("amg: Apply: cycle %d: %w", i, err)
		}
	}
	return nil
}

// cycle implements the recursive V/W-cycle: lvl indexes into e.levels.
// rhs and x are the right-hand side and in-place solution at this level
// (the caller's own buffers at lvl 0, otherwise the parent level's f/u
// scratch vectors).
func (e *Engine) cycle(lvl int, rhs, x []float64) error {
	lv := &e.levels[lvl]

	if lv.terminal {
		if err := lv.solve.Solve(rhs, x); err != nil {
			return fmt.Errorf("amg: level %d direct solve: %w: %w", lvl, ErrDirectSolveFailure, err)
		}
		return nil
	}

	next := &e.levels[lvl+1]

	for c := 0; c < e.params.NCycle; c++ {
		for s := 0; s < e.params.NPre; s++ {
			if err := lv.relax.ApplyPre(lv.a, rhs, x, lv.t); err != nil {
				return fmt.Errorf("amg: level %d pre-smooth: %w", lvl, err)
			}
		}

		if err := e.be.Residual(rhs, lv.a, x, lv.t); err != nil {
			return fmt.Errorf("amg: level %d residual: %w: %w", lvl, ErrBackend, err)
		}
		if err := e.be.SPMV(1, lv.r, lv.t, 0, next.f); err != nil {
			return fmt.Errorf("amg: level %d restriction: %w: %w", lvl, ErrBackend, err)
		}
		sparse.ClearVec(next.u)

		if err := e.cycle(lvl+1, next.f, next.u); err != nil {
			return err
		}

		if err := e.be.SPMV(1, lv.p, next.u, 1, x); err != nil {
			return fmt.Errorf("amg: level %d prolongation: %w: %w", lvl, ErrBackend, err)
		}

		for s := 0; s < e.params.NPost; s++ {
			if err := lv.relax.ApplyPost(lv.a, rhs, x, lv.t); err != nil {
				return fmt.Errorf("amg: level %d post-smooth: %w", lvl, err)
			}
		}
	}

	return nil
}
