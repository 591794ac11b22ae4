// SPDX-License-Identifier: MIT
package amg

import (
	"errors"
	"fmt"

	"github.com/go-amgo/amgo/backend"
	"github.com/go-amgo/amgo/coarsen"
	"github.com/go-amgo/amgo/relax"
	"github.com/go-amgo/amgo/sparse"
)

// Engine holds a built multigrid hierarchy and the backend it cycles
// through. It is safe to call Apply/Cycle from a single goroutine at a
// time: the scratch vectors embedded in each level are not guarded by a
// lock, so callers must serialize calls on one Engine.
type Engine struct {
	levels []level
	be     backend.Backend
	params Params
}

// New builds a hierarchy from a and returns an Engine ready to cycle.
// a must be square. Coarsening stops once a level's row count is at or
// below params.CoarseEnough (or the backend's own default, if
// CoarseEnough is 0), at which point the backend's direct solver
// factors that level.
func New(a backend.Matrix, params Params, be backend.Backend) (*Engine, error) {
	if !a.IsSquare() {
		return nil, fmt.Errorf("amg: New: %dx%d: %w", a.Rows, a.Cols, ErrShape)
	}

	p := normalize(params)
	coarseEnough := p.CoarseEnough
	if coarseEnough <= 0 {
		coarseEnough = be.CoarseEnough()
	}

	var levels []level
	cur := a

	for idx := 0; ; idx++ {
		if cur.Rows <= coarseEnough {
			solver, err := be.NewDirectSolver(cur)
			if err != nil {
				return nil, fmt.Errorf("amg: level %d direct factorization: %w: %w", idx, ErrDirectSolveFailure, err)
			}
			var keep *sparse.CSR
			if idx == 0 {
				keep = cur
			}
			levels = append(levels, level{
				terminal: true,
				rows:     cur.Rows,
				nnz:      cur.NNZ(),
				a:        keep,
				solve:    solver,
				f:        make([]float64, cur.Rows),
				u:        make([]float64, cur.Rows),
			})
			break
		}

		relaxOpts := append([]relax.Option{relax.WithLogger(p.Logger)}, p.RelaxOpts...)
		relaxer, err := p.RelaxFactory(cur, relaxOpts...)
		if err != nil {
			return nil, fmt.Errorf("amg: level %d relaxation construction: %w: %w", idx, ErrBackend, err)
		}

		pMat, rMat, err := p.Coarsening.TransferOperators(cur)
		if err != nil {
			if errors.Is(err, coarsen.ErrDegenerate) {
				return nil, fmt.Errorf("amg: level %d coarsening: %w: %w", idx, ErrDegenerateCoarsening, err)
			}
			return nil, fmt.Errorf("amg: level %d coarsening: %w", idx, err)
		}

		coarseA, err := coarsen.Galerkin(cur, pMat, rMat)
		if err != nil {
			return nil, fmt.Errorf("amg: level %d Galerkin operator: %w", idx, err)
		}

		levels = append(levels, level{
			rows:  cur.Rows,
			nnz:   cur.NNZ(),
			a:     cur,
			p:     pMat,
			r:     rMat,
			relax: relaxer,
			f:     make([]float64, cur.Rows),
			u:     make([]float64, cur.Rows),
			t:     make([]float64, cur.Rows),
		})

		cur = coarseA
	}

	p.Logger.Printf("amg: built %d-level hierarchy from %dx%d input", len(levels), a.Rows, a.Cols)

	return &Engine{levels: levels, be: be, params: p}, nil
}

// Levels returns the number of levels in the hierarchy, including the
// terminal (direct-solve) level.
func (e *Engine) Levels() int {
	return len(e.levels)
}

// SystemMatrix returns the finest-level operator. ok is false only for
// an Engine with no levels or no level-0 operator; an Engine built by
// New always has one, since level 0's a is either the finest
// non-terminal operator or, for a single-level hierarchy, the original
// input kept for this purpose.
func (e *Engine) SystemMatrix() (backend.Matrix, bool) {
	if len(e.levels) == 0 || e.levels[0].a == nil {
		return nil, false
	}
	return e.levels[0].a, true
}
