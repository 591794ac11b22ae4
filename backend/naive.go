// SPDX-License-Identifier: MIT
package backend

import "fmt"

// Naive implements Backend with plain sequential loops, no goroutines
// anywhere. It exists so amg/determinism_test.go has a second backend to
// diff CPU's parallel results against: a cycle result that differs
// between the two would mean goroutine scheduling leaked into the
// answer, which the contract forbids.
type Naive struct {
	coarseEnough int
}

// NewNaive returns a Naive backend. coarseEnough defaults to 300 if <= 0.
func NewNaive(coarseEnough int) *Naive {
	if coarseEnough <= 0 {
		coarseEnough = 300
	}
	return &Naive{coarseEnough: coarseEnough}
}

func (n *Naive) SPMV(alpha float64, a Matrix, x Vector, beta float64, y Vector) error {
	if len(x) != a.Cols || len(y) != a.Rows {
		return fmt.Errorf("backend: Naive.SPMV: %w", ErrBackend)
	}
	for i := 0; i < a.Rows; i++ {
		cols, vals := a.Row(i)
		var sum float64
		for k, c := range cols {
			sum += vals[k] * x[c]
		}
		if beta == 0 {
			y[i] = alpha * sum
		} else {
			y[i] = alpha*sum + beta*y[i]
		}
	}
	return nil
}

func (n *Naive) Residual(rhs []float64, a Matrix, x Vector, out Vector) error {
	if len(x) != a.Cols || len(rhs) != a.Rows || len(out) != a.Rows {
		return fmt.Errorf("backend: Naive.Residual: %w", ErrBackend)
	}
	for i := 0; i < a.Rows; i++ {
		cols, vals := a.Row(i)
		var sum float64
		for k, c := range cols {
			sum += vals[k] * x[c]
		}
		out[i] = rhs[i] - sum
	}
	return nil
}

func (n *Naive) VMul(alpha float64, d, x Vector, beta float64, y Vector) error {
	if len(d) != len(x) || len(d) != len(y) {
		return fmt.Errorf("backend: Naive.VMul: %w", ErrBackend)
	}
	for i := range d {
		if beta == 0 {
			y[i] = alpha * d[i] * x[i]
		} else {
			y[i] = alpha*d[i]*x[i] + beta*y[i]
		}
	}
	return nil
}

func (n *Naive) NewDirectSolver(a Matrix) (DirectSolver, error) {
	return newLUSolver(a)
}

func (n *Naive) CoarseEnough() int {
	return n.coarseEnough
}
