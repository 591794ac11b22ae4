// SPDX-License-Identifier: MIT
package backend

import (
	"fmt"

	"github.com/go-amgo/amgo/sparse"
	"gonum.org/v1/gonum/mat"
)

// CPU is the default Backend: kernels delegate straight to the sparse
// package (which parallelizes internally via sparse.Parallelize), and
// the coarsest level is factored with gonum's dense LU.
type CPU struct {
	coarseEnough int
}

// NewCPU returns a CPU backend. coarseEnough defaults to 300 if <= 0,
// matching the reference implementation's default.
func NewCPU(coarseEnough int) *CPU {
	if coarseEnough <= 0 {
		coarseEnough = 300
	}
	return &CPU{coarseEnough: coarseEnough}
}

func (c *CPU) SPMV(alpha float64, a Matrix, x Vector, beta float64, y Vector) error {
	return sparse.SPMV(alpha, a, x, beta, y)
}

func (c *CPU) Residual(rhs []float64, a Matrix, x Vector, out Vector) error {
	return sparse.Residual(rhs, a, x, out)
}

func (c *CPU) VMul(alpha float64, d, x Vector, beta float64, y Vector) error {
	return sparse.VMul(alpha, d, x, beta, y)
}

func (c *CPU) NewDirectSolver(a Matrix) (DirectSolver, error) {
	return newLUSolver(a)
}

func (c *CPU) CoarseEnough() int {
	return c.coarseEnough
}

// luSolver factors a coarsest-level CSR as a dense mat.Dense and solves
// with gonum's LU decomposition.
type luSolver struct {
	lu mat.LU
	n  int
}

func newLUSolver(a Matrix) (*luSolver, error) {
	if !a.IsSquare() {
		return nil, fmt.Errorf("backend: direct solver requires a square matrix: %w", ErrDirectSolveFailed)
	}
	n := a.Rows
	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		cols, vals := a.Row(i)
		for k, c := range cols {
			dense.Set(i, c, vals[k])
		}
	}

	s := &luSolver{n: n}
	s.lu.Factorize(dense)
	if cond := s.lu.Cond(); cond > 1e15 {
		return nil, fmt.Errorf("backend: coarsest-level operator is near-singular (cond=%.3e): %w", cond, ErrDirectSolveFailed)
	}
	return s, nil
}

func (s *luSolver) Solve(rhs, x Vector) error {
	if len(rhs) != s.n || len(x) != s.n {
		return fmt.Errorf("backend: direct solve shape mismatch: %w", sparse.ErrShapeMismatch)
	}
	b := mat.NewVecDense(s.n, rhs)
	var sol mat.VecDense
	if err := s.lu.SolveVecTo(&sol, false, b); err != nil {
		return fmt.Errorf("backend: %v: %w", err, ErrDirectSolveFailed)
	}
	for i := 0; i < s.n; i++ {
		x[i] = sol.AtVec(i)
	}
	return nil
}
