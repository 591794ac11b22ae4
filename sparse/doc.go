// SPDX-License-Identifier: MIT
// Package sparse provides the compressed-sparse-row (CSR) matrix type and
// the row-parallel kernels (sort, transpose, sparse-sparse product, SpMV,
// residual, diagonal scaling) that the amg, coarsen, relax and backend
// packages are built on.
//
// Determinism & Policy:
//   - Every CSR returned by a kernel in this package has column-sorted rows.
//   - Duplicate (row, col) entries are summed, never dropped.
//   - Parallel loops use a fixed, static chunking (Parallelize) so results
//     do not depend on goroutine scheduling order.
package sparse
