// SPDX-License-Identifier: MIT
package krylov

import (
	"errors"
	"math"
)

// ErrMaxIterations is returned when Solve exhausts its iteration budget
// without converging to Settings.Tolerance.
var ErrMaxIterations = errors.New("krylov: iteration limit reached")

// MatVec computes dst <- A*x.
type MatVec func(dst, x []float64) error

// Precond computes dst <- M^-1 * rhs for some preconditioner M. A nil
// Precond is treated as the identity.
type Precond func(dst, rhs []float64) error

// Settings configures Solve.
type Settings struct {
	// X0 is the initial guess; nil means start from the zero vector.
	X0 []float64

	// Tolerance is the relative residual norm at which Solve stops.
	// Defaults to 1e-8 if zero.
	Tolerance float64

	// MaxIterations caps the iteration count. Defaults to 2*dim if zero.
	MaxIterations int
}

// Stats reports how Solve's run went.
type Stats struct {
	Iterations   int
	ResidualNorm float64
}

// Result is Solve's return value.
type Result struct {
	X     []float64
	Stats Stats
}

// Solve runs preconditioned conjugate gradient on A*x = b, where A is
// supplied only via matVec (never materialized by this package) and
// symmetric positive definite.
func Solve(matVec MatVec, b []float64, precond Precond, settings Settings) (Result, error) {
	dim := len(b)
	if dim == 0 {
		return Result{}, errors.New("krylov: zero-dimensional system")
	}
	tol := settings.Tolerance
	if tol == 0 {
		tol = 1e-8
	}
	maxIter := settings.MaxIterations
	if maxIter == 0 {
		maxIter = 2 * dim
	}
	if precond == nil {
		precond = func(dst, rhs []float64) error { copy(dst, rhs); return nil }
	}

	x := make([]float64, dim)
	if settings.X0 != nil {
		copy(x, settings.X0)
	}

	r := make([]float64, dim)
	ax := make([]float64, dim)
	if err := matVec(ax, x); err != nil {
		return Result{}, err
	}
	for i := range r {
		r[i] = b[i] - ax[i]
	}

	bnorm := norm2(b)
	if bnorm == 0 {
		bnorm = 1
	}
	resNorm := norm2(r)
	if resNorm/bnorm < tol {
		return Result{X: x, Stats: Stats{ResidualNorm: resNorm}}, nil
	}

	z := make([]float64, dim)
	p := make([]float64, dim)
	ap := make([]float64, dim)

	if err := precond(z, r); err != nil {
		return Result{}, err
	}
	copy(p, z)
	rho := dot(r, z)

	for iter := 1; iter <= maxIter; iter++ {
		if err := matVec(ap, p); err != nil {
			return Result{}, err
		}
		denom := dot(p, ap)
		if denom == 0 {
			return Result{}, errors.New("krylov: breakdown, p^T*A*p == 0")
		}
		alpha := rho / denom

		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}

		resNorm = norm2(r)
		if resNorm/bnorm < tol {
			return Result{X: x, Stats: Stats{Iterations: iter, ResidualNorm: resNorm}}, nil
		}

		if err := precond(z, r); err != nil {
			return Result{}, err
		}
		rhoNext := dot(r, z)
		beta := rhoNext / rho
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rho = rhoNext
	}

	return Result{X: x, Stats: Stats{Iterations: maxIter, ResidualNorm: resNorm}}, ErrMaxIterations
}

func norm2(v []float64) float64 {
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
