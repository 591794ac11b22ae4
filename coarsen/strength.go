// SPDX-License-Identifier: MIT
package coarsen

import (
	"math"

	"github.com/go-amgo/amgo/sparse"
)

// strengthGraph returns, for each row i, the column indices j != i with
// |A[i,j]| >= theta * sqrt(|A[i,i]| * |A[j,j]|) — the symmetric strength
// measure both strategies in this package coarsen over.
func strengthGraph(a *sparse.CSR, theta float64) [][]int {
	n := a.Rows
	diag := make([]float64, n)
	sparse.Parallelize(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, _ := a.At(i, i)
			diag[i] = math.Abs(v)
		}
	})

	neighbors := make([][]int, n)
	sparse.Parallelize(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			cols, vals := a.Row(i)
			var nb []int
			for k, c := range cols {
				if c == i {
					continue
				}
				if math.Abs(vals[k]) >= theta*math.Sqrt(diag[i]*diag[c]) {
					nb = append(nb, c)
				}
			}
			neighbors[i] = nb
		}
	})
	return neighbors
}

// signedDiag returns a's diagonal entries, sign preserved.
func signedDiag(a *sparse.CSR) []float64 {
	n := a.Rows
	d := make([]float64, n)
	sparse.Parallelize(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, _ := a.At(i, i)
			d[i] = v
		}
	})
	return d
}

// spectralRadiusEstimate estimates the spectral radius of D^-1*A by a
// fixed number of power-iteration steps followed by a Rayleigh quotient,
// starting from the all-ones vector so the estimate is reproducible
// across runs (no randomness anywhere in the setup path).
func spectralRadiusEstimate(a *sparse.CSR, diag []float64) float64 {
	n := a.Rows
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	const iterations = 8
	w := make([]float64, n)
	for s := 0; s < iterations; s++ {
		_ = sparse.SPMV(1, a, v, 0, w)
		for i := range w {
			if diag[i] != 0 {
				w[i] /= diag[i]
			}
		}
		norm := l2norm(w)
		if norm == 0 {
			return 1
		}
		for i := range w {
			v[i] = w[i] / norm
		}
	}

	_ = sparse.SPMV(1, a, v, 0, w)
	for i := range w {
		if diag[i] != 0 {
			w[i] /= diag[i]
		}
	}
	rho := dot(v, w)
	if rho <= 0 {
		return 1
	}
	return rho
}

func l2norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
