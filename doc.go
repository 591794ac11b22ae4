// Package amgo is an algebraic multigrid preconditioner library.
//
// Given a sparse symmetric positive-definite operator, amgo builds a
// hierarchy of progressively coarser operators (setup) and uses that
// hierarchy to precondition an outer iterative solver (cycling) without
// any knowledge of the problem's geometry — coarsening is driven purely
// by the matrix's own entries.
//
// Packages:
//
//	sparse  — CSR matrix type and its kernels (SpMV, sparse GEMM, transpose)
//	coarsen — transfer-operator strategies (smoothed aggregation, classical RS)
//	relax   — smoothers used during cycling (SPAI0, damped Jacobi)
//	backend — the kernel/direct-solver contract amg.Engine cycles through
//	amg     — hierarchy setup and the V/W-cycle engine
//	krylov  — a small preconditioned CG solver for driving amg.Engine as a
//	          preconditioner end to end
//
// A minimal setup looks like:
//
//	e, err := amg.New(a, amg.DefaultParams(), backend.NewCPU(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	x := make([]float64, len(rhs))
//	err = e.Apply(rhs, x)
package amgo
