// Package backend defines the contract the amg engine depends on for its
// cycling phase: matrix/vector kinds, the sparse kernels, and a coarsest-
// level direct solver. The setup phase (coarsening, Galerkin operator)
// works directly on *sparse.CSR; only the cycling phase is routed through
// this contract, so a future accelerated backend only has to replace
// kernel execution, not hierarchy construction.
//
// CPU is the default backend, delegating straight to the sparse package.
// Naive implements the same contract with no parallelism at all, purely
// so the test suite has something to diff CPU's results against: a
// result that depends on goroutine scheduling would show up as a
// difference here.
package backend
