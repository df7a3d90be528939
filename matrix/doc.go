// Package matrix provides a dense matrix type and the linear-algebra
// kernels the equilibrium solver needs: matrix-vector multiplication and
// Gauss-Jordan reduction to reduced row echelon form.
//
// Dense is the only Matrix implementation: the solver's coefficient matrix
// is rebuilt from scratch per solve and stays small (one row per node, one
// column per contract plus the augmentation column), so a flat row-major slice is both the simplest
// and the fastest representation available.
//
// See impl_linear_algebra_test.go for usage patterns.
package matrix
