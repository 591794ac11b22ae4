// SPDX-License-Identifier: MIT
package amg

import (
	"github.com/go-amgo/amgo/coarsen"
	"github.com/go-amgo/amgo/relax"
	"github.com/go-amgo/amgo/sparse"
)

// RelaxFactory builds a level's Relaxation from that level's operator.
// It exists because each concrete relax strategy has its own
// constructor (NewSPAI0, NewJacobi, ...); naming "which one" to use
// this way lets the engine stay independent of every concrete strategy.
type RelaxFactory func(a *sparse.CSR, opts ...relax.Option) (relax.Relaxation, error)

func defaultRelaxFactory(a *sparse.CSR, opts ...relax.Option) (relax.Relaxation, error) {
	return relax.NewSPAI0(a, opts...)
}

// Params configures hierarchy setup and cycling.
//
// CoarseEnough overrides the backend's own default when non-zero.
// NPre/NPost are the pre-/post-smoothing sweep counts per cycle; NCycle
// is the number of times the full pre/residual/restrict/recurse/
// prolongate/post block repeats at each level (1 for a V-cycle, 2 for a
// W-cycle). PreCycles is how many full cycles Apply runs from a zeroed
// initial guess.
type Params struct {
	CoarseEnough int
	NPre         int
	NPost        int
	NCycle       int
	PreCycles    int

	Coarsening   coarsen.Coarsening
	CoarsenOpts  []coarsen.Option
	RelaxFactory RelaxFactory
	RelaxOpts    []relax.Option
	Logger       Logger
}

// Option is a functional option for DefaultParams.
type Option func(*Params)

// DefaultParams returns CoarseEnough 0 (defer to the backend's own
// default), NPre 1, NPost 1, NCycle 1, PreCycles 1 and a no-op Logger,
// then applies opts in order. Coarsening and RelaxFactory are left nil,
// which New resolves to smoothed aggregation and SPAI0 relaxation.
func DefaultParams(opts ...Option) Params {
	p := Params{
		NPre:      1,
		NPost:     1,
		NCycle:    1,
		PreCycles: 1,
		Logger:    noopLogger{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func WithCoarseEnough(n int) Option {
	return func(p *Params) { p.CoarseEnough = n }
}

func WithNPre(n int) Option {
	return func(p *Params) { p.NPre = n }
}

func WithNPost(n int) Option {
	return func(p *Params) { p.NPost = n }
}

func WithNCycle(n int) Option {
	return func(p *Params) { p.NCycle = n }
}

func WithPreCycles(n int) Option {
	return func(p *Params) { p.PreCycles = n }
}

// WithCoarsening installs a concrete Coarsening strategy, overriding the
// smoothed-aggregation default.
func WithCoarsening(c coarsen.Coarsening) Option {
	return func(p *Params) { p.Coarsening = c }
}

// WithCoarsenOpts configures the default smoothed-aggregation strategy;
// ignored if WithCoarsening supplies an explicit strategy.
func WithCoarsenOpts(opts ...coarsen.Option) Option {
	return func(p *Params) { p.CoarsenOpts = opts }
}

// WithRelaxation installs a RelaxFactory, overriding the SPAI0 default.
func WithRelaxation(f RelaxFactory) Option {
	return func(p *Params) { p.RelaxFactory = f }
}

// WithRelaxOpts configures whichever RelaxFactory is in effect.
func WithRelaxOpts(opts ...relax.Option) Option {
	return func(p *Params) { p.RelaxOpts = opts }
}

func WithLogger(l Logger) Option {
	return func(p *Params) { p.Logger = l }
}

// normalize fills unset fields with DefaultParams' values so New
// tolerates a bare Params{} from a caller who skipped DefaultParams.
// PreCycles is kept as given: 0 selects Apply's identity fallback.
func normalize(p Params) Params {
	d := DefaultParams()
	if p.NPre == 0 {
		p.NPre = d.NPre
	}
	if p.NPost == 0 {
		p.NPost = d.NPost
	}
	if p.NCycle == 0 {
		p.NCycle = d.NCycle
	}
	if p.Logger == nil {
		p.Logger = d.Logger
	}
	if p.Coarsening == nil {
		p.Coarsening = coarsen.NewAggregation(p.CoarsenOpts...)
	}
	if p.RelaxFactory == nil {
		p.RelaxFactory = defaultRelaxFactory
	}
	return p
}
