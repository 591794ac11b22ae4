// SPDX-License-Identifier: MIT
package coarsen

// Options configures a Coarsening strategy's construction.
//
// Theta is the strength-of-connection threshold (both Aggregation and
// ClassicalRS share the same strength measure). SmoothingOmega, when
// non-zero, fixes the Jacobi-smoothing damping factor used by
// Aggregation instead of estimating it from the fine operator's spectral
// radius; ClassicalRS ignores it.
type Options struct {
	Theta          float64
	SmoothingOmega float64
}

// Option is a functional option for a strategy's New constructor.
type Option func(*Options)

// WithStrengthThreshold overrides the default strength-of-connection
// threshold (0.25).
func WithStrengthThreshold(theta float64) Option {
	return func(o *Options) {
		o.Theta = theta
	}
}

// WithSmoothingOmega fixes Aggregation's Jacobi-smoothing damping factor,
// bypassing the spectral-radius power-iteration estimate.
func WithSmoothingOmega(omega float64) Option {
	return func(o *Options) {
		o.SmoothingOmega = omega
	}
}

// DefaultOptions returns Theta 0.25 and SmoothingOmega 0 (estimate it).
func DefaultOptions() Options {
	return Options{Theta: 0.25}
}

func buildOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
