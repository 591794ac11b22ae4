// SPDX-License-Identifier: MIT
package amg

import (
	"fmt"
	"strings"
)

// LevelStat reports one level's size for diagnostics.
type LevelStat struct {
	Level int
	Rows  int
	NNZ   int
}

// LevelStats returns per-level row and nonzero counts, finest level
// first.
func (e *Engine) LevelStats() []LevelStat {
	stats := make([]LevelStat, len(e.levels))
	for i, lv := range e.levels {
		stats[i] = LevelStat{Level: i, Rows: lv.rows, NNZ: lv.nnz}
	}
	return stats
}

// OperatorComplexity is the sum of nonzeros across all levels divided by
// the finest level's nonzero count — how much extra work a cycle costs
// relative to a single matrix-vector product on the input.
func (e *Engine) OperatorComplexity() float64 {
	stats := e.LevelStats()
	if len(stats) == 0 || stats[0].NNZ == 0 {
		return 0
	}
	var total int
	for _, s := range stats {
		total += s.NNZ
	}
	return float64(total) / float64(stats[0].NNZ)
}

// GridComplexity is the sum of unknowns across all levels divided by the
// finest level's unknown count.
func (e *Engine) GridComplexity() float64 {
	stats := e.LevelStats()
	if len(stats) == 0 || stats[0].Rows == 0 {
		return 0
	}
	var total int
	for _, s := range stats {
		total += s.Rows
	}
	return float64(total) / float64(stats[0].Rows)
}

// String renders a level table in the style of amgcl's solver::print:
// one row per level with its unknown and nonzero counts, plus the
// resulting operator/grid complexity.
func (e *Engine) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "amg.Engine: %d levels, operator complexity %.3f, grid complexity %.3f\n",
		len(e.levels), e.OperatorComplexity(), e.GridComplexity())
	fmt.Fprintf(&b, "%-7s%12s%12s\n", "level", "unknowns", "nonzeros")
	for _, s := range e.LevelStats() {
		fmt.Fprintf(&b, "%-7d%12d%12d\n", s.Level, s.Rows, s.NNZ)
	}
	return b.String()
}
