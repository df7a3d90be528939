// File: lp.go
// Role: turn the reduced equilibrium system into a bounded linear program
// over the free columns.
//
// Throughout this file x_j is the cut on contract j (see doc.go): the
// dependent-variable expression x_{p_r} = b_r - sum_{free j>p_r} M[r][j]*y_i
// falls directly out of the RREF, and the objective "minimize sum_j x_j"
// is the total amount forgiven exactly when x_j is a cut — it would instead
// maximize forgiveness if x_j were the post-cut principal, which is why
// doc.go overrides that reading.
package solver

import (
	"github.com/finlib/debtcut/matrix"
	"github.com/finlib/debtcut/simplex"
)

// buildLP constructs the simplex.Problem minimizing total forgiven debt
// over the free columns. The dependent rows' right-hand sides contribute a
// constant term the LP's objective differs from the true total by; this
// package never needs that constant because the total forgiven amount is
// read back from DebtCutAssignment.Sum() once every contract's cut (free
// and dependent alike) has been put, rather than from the LP's own
// objective value.
//
// The bound 0 <= x_{p_r} <= V_{p_r} is derived fresh here as two explicit
// inequality rows rather than encoded as bounded-variable metadata.
func buildLP(rs *runState, m *matrix.Dense, pivotCols []int, fv freeVars) simplex.Problem {
	n := len(fv.mivii)
	augCol := len(rs.columns)
	rank := len(pivotCols)

	cost := make([]float64, n)
	for i := range cost {
		cost[i] = 1.0
	}

	var constraints []simplex.Constraint

	for r := 0; r < rank; r++ {
		pr := pivotCols[r]
		br, _ := m.At(r, augCol)
		vpr := rs.columns[pr].preCut

		lowerCoeffs := make([]float64, n)
		upperCoeffs := make([]float64, n)
		for _, j := range fv.mivii {
			if j <= pr {
				continue
			}
			mrj, _ := m.At(r, j)
			if mrj == 0 {
				continue
			}
			i := fv.mivi[j]
			lowerCoeffs[i] = -mrj
			upperCoeffs[i] = -mrj
			// Objective coefficient of free column j gets -M[r][j] contributed
			// by every dependent row r with p_r < j.
			cost[i] -= mrj
		}

		constraints = append(constraints,
			simplex.Constraint{Coeffs: lowerCoeffs, Rel: simplex.GE, RHS: -br},
			simplex.Constraint{Coeffs: upperCoeffs, Rel: simplex.LE, RHS: vpr - br},
		)
	}

	for _, j := range fv.mivii {
		i := fv.mivi[j]
		coeffs := make([]float64, n)
		coeffs[i] = 1
		constraints = append(constraints, simplex.Constraint{
			Coeffs: coeffs,
			Rel:    simplex.LE,
			RHS:    rs.columns[j].preCut,
		})
	}

	return simplex.Problem{Cost: cost, Constraints: constraints}
}
