// Package coarsen builds the transfer operators (prolongation P and
// restriction R) and the coarse-level operator that the amg package's
// setup phase uses to construct a multigrid hierarchy one level at a
// time.
//
// A Coarsening strategy only ever sees one level's fine operator at a
// time and returns operators for the next coarser level; it holds no
// state across levels. The default strategy is Aggregation (smoothed
// aggregation); ClassicalRS is offered as a second, independently
// admissible strategy.
package coarsen
