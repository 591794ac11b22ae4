// SPDX-License-Identifier: MIT
package relax

import (
	"errors"

	"github.com/go-amgo/amgo/sparse"
)

// ErrInvalidOmega is returned when a damping factor outside (0, 2) is
// supplied to a strategy that uses one.
var ErrInvalidOmega = errors.New("relax: omega must be in (0, 2)")

// Relaxation smooths an approximate solution x of a*x = rhs in place,
// using tmp as scratch space of the same length as x. ApplyPre and
// ApplyPost are separate methods because some strategies (none in this
// package today, but the contract allows it) use an asymmetric sweep.
type Relaxation interface {
	ApplyPre(a *sparse.CSR, rhs, x, tmp []float64) error
	ApplyPost(a *sparse.CSR, rhs, x, tmp []float64) error
}

// Logger receives diagnostic messages for conditions a strategy tolerates
// rather than fails on (e.g. SPAI0's zero-denominator rows). It is
// satisfied by *log.Logger and by amg.Logger, which has the same method
// set; amg.New passes its own Logger to each level's Relaxation.
type Logger interface {
	Printf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// Options configures strategy construction.
type Options struct {
	Omega  float64
	Logger Logger
}

// Option is a functional option for a strategy's New constructor.
type Option func(*Options)

// WithOmega sets the damping factor used by strategies that have one
// (currently Jacobi). Strategies that ignore it (SPAI0) accept and discard
// it without error.
func WithOmega(omega float64) Option {
	return func(o *Options) {
		o.Omega = omega
	}
}

// WithLogger installs a logger for contained, non-fatal conditions
// encountered during construction.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the baseline Options before any Option is
// applied: Omega 0.7 (damped Jacobi's usual factor), no-op Logger.
func DefaultOptions() Options {
	return Options{Omega: 0.7, Logger: noopLogger{}}
}

func buildOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
