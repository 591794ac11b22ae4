// Package krylov provides a minimal preconditioned conjugate-gradient
// solver that only ever talks to the outside world through a matrix-
// vector product and a preconditioner solve, mirroring spec's "external
// collaborator" contract for the amg engine: apply(rhs, x).
//
// This is a direct-callback solver rather than a reverse-communication
// state machine: the math follows the same derivation, but Solve owns
// its own loop and calls MatVec/Precond directly instead of yielding an
// Operation back to a caller-driven dispatch loop. That tradeoff is
// deliberate — this package exists to exercise amg.Engine as a
// preconditioner in tests and examples, not to be a general-purpose
// iterative-methods library.
package krylov
