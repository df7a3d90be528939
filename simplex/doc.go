// Package simplex implements a two-phase primal simplex method for linear
// programs in general mixed-relation form (≤, ≥, =), over non-negative
// variables.
//
// Nothing in the retrieval pack implements a linear program solver — this
// package has no direct teacher file to adapt. It borrows the surrounding
// package's conventions instead: sentinel errors wrapped with
// fmt.Errorf("%s: %w", tag, err) (matrix/impl_linear_algebra.go), Stage
// comments on Solve, and a *matrix.Dense tableau, the same Matrix type the
// solver package uses for the equilibrium system. Callers pass constraints
// as plain Constraint rows, not as a Matrix.
//
// Phase 1 introduces an artificial variable per ≥/= row and minimizes their
// sum; a minimum above epsilon means the feasible region is empty
// (ErrInfeasible). Phase 2 then minimizes the caller's objective over the
// feasible basis Phase 1 found. Both phases use Bland's rule (lowest index
// among eligible entering/leaving variables) to choose pivots, which
// guarantees termination even on degenerate tableaus at some cost to
// average-case iteration count — an explicit tradeoff, since the debt-cut
// LPs this package solves are small enough that worst-case cycling risk
// matters more than raw iteration speed.
package simplex
