// Package amg implements the algebraic multigrid engine: a setup phase
// that builds a hierarchy of coarser operators from a fine-level sparse
// matrix, and a cycling phase that applies that hierarchy as a
// preconditioner (V-cycle by default, W-cycle via NCycle > 1).
//
// The engine itself is generic over the Coarsening and Relaxation
// strategies (packages coarsen and relax) and over the Backend that
// executes its cycling-phase kernels (package backend); amg.New wires a
// concrete choice of each into a ready-to-use Engine.
package amg
