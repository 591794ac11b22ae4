// SPDX-License-Identifier: MIT
package sparse

import "fmt"

// SPMV computes y <- alpha*A*x + beta*y. When beta == 0, entries of y not
// touched by A are set to exactly 0 rather than left as alpha*0 + beta*old,
// matching spec's "when beta = 0, entries of y not touched by A are
// zeroed" (relevant for rows of A that happen to be entirely empty).
func SPMV(alpha float64, a *CSR, x []float64, beta float64, y []float64) error {
	if len(x) != a.Cols {
		return fmt.Errorf("sparse: SPMV: len(x)=%d, a.Cols=%d: %w", len(x), a.Cols, ErrShapeMismatch)
	}
	if len(y) != a.Rows {
		return fmt.Errorf("sparse: SPMV: len(y)=%d, a.Rows=%d: %w", len(y), a.Rows, ErrShapeMismatch)
	}

	Parallelize(a.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
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
	})

	return nil
}

// Residual computes out <- rhs - A*x.
func Residual(rhs []float64, a *CSR, x []float64, out []float64) error {
	if len(x) != a.Cols {
		return fmt.Errorf("sparse: Residual: len(x)=%d, a.Cols=%d: %w", len(x), a.Cols, ErrShapeMismatch)
	}
	if len(rhs) != a.Rows || len(out) != a.Rows {
		return fmt.Errorf("sparse: Residual: len(rhs)=%d len(out)=%d, a.Rows=%d: %w", len(rhs), len(out), a.Rows, ErrShapeMismatch)
	}

	Parallelize(a.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			cols, vals := a.Row(i)
			var sum float64
			for k, c := range cols {
				sum += vals[k] * x[c]
			}
			out[i] = rhs[i] - sum
		}
	})

	return nil
}

// VMul computes the elementwise update y <- alpha*d*x + beta*y, the
// diagonal-scaling kernel used by relaxation strategies (d is typically a
// preconditioning diagonal such as SPAI-0's M).
func VMul(alpha float64, d, x []float64, beta float64, y []float64) error {
	n := len(d)
	if len(x) != n || len(y) != n {
		return fmt.Errorf("sparse: VMul: len(d)=%d len(x)=%d len(y)=%d: %w", n, len(x), len(y), ErrShapeMismatch)
	}

	Parallelize(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if beta == 0 {
				y[i] = alpha * d[i] * x[i]
			} else {
				y[i] = alpha*d[i]*x[i] + beta*y[i]
			}
		}
	})

	return nil
}

// ClearVec zeroes v. Vector clear/copy are not parallelized: they are
// memory-bandwidth bound at sizes far smaller than the matrices they
// accompany, and goroutine launch overhead would dominate.
func ClearVec(v []float64) {
	for i := range v {
		v[i] = 0
	}
}

// CopyVec copies src into dst, which must have equal length.
func CopyVec(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("sparse: CopyVec: len(dst)=%d len(src)=%d: %w", len(dst), len(src), ErrShapeMismatch)
	}
	copy(dst, src)
	return nil
}
