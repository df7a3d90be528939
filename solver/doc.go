// Package solver implements the equilibrium debt-cut solver. Given a
// graph.Graph, a graph.TimeAssignment, and an equilibrium time,
// DefaultEquilibrialDebtCutFinder builds an augmented linear system over
// one unknown per contract, reduces it to reduced row echelon form with
// the matrix package, expresses the remaining degrees of freedom as a
// bounded linear program, and solves that program with the simplex
// package to obtain a minimal-total-cut contract.DebtCutAssignment.
//
// Orchestration shape (build matrix -> validate -> delegate -> extract
// result) is grounded on tsp.SolveWithGraph/SolveWithMatrix's dispatcher;
// the functional options (WithVerbose/WithEpsilon) and the timing counters
// are grounded on flow.FlowOptions and flow.Dinic's stage-timing convention.
//
// # What the unknowns mean
//
// Every unknown x_j, throughout the matrix, the reduced system, and the
// LP, is the cut (forgiven amount) on contract j, never the post-cut
// principal: the augmentation column is built from pre-cut values, the LP
// objective directly minimizes total forgiveness (minimizing total
// post-cut principal would instead maximize forgiveness), and the final
// extraction stores the cut itself. See DESIGN.md for the full
// derivation.
package solver
