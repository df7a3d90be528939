// File: extract.go
// Role: solve the LP (or resolve the fully determined system directly, when
// there are no free variables) and populate the resulting
// contract.DebtCutAssignment.
package solver

import (
	"github.com/finlib/debtcut/contract"
	"github.com/finlib/debtcut/matrix"
	"github.com/finlib/debtcut/simplex"
)

// solveAndExtract runs simplex.Solve over problem (skipping the call
// entirely when there are no free variables, since simplex.Solve rejects a
// zero-length cost vector) and writes the resulting per-contract cut into a
// fresh DebtCutAssignment.
func solveAndExtract(rs *runState, m *matrix.Dense, pivotCols []int, fv freeVars, problem simplex.Problem) (contract.DebtCutAssignment, error) {
	dca := contract.NewDebtCutAssignment(rs.tEq)
	augCol := len(rs.columns)

	y := make([]float64, len(fv.mivii))
	if len(fv.mivii) > 0 {
		result, err := simplex.Solve(problem, rs.eps)
		if err != nil {
			return contract.DebtCutAssignment{}, err
		}
		y = result.X
	}

	for _, j := range fv.mivii {
		cut := y[fv.mivi[j]]
		if contract.EqualWithin(cut, 0, rs.eps) {
			cut = 0
		}
		if err := dca.Put(rs.columns[j].name, cut); err != nil {
			return contract.DebtCutAssignment{}, err
		}
	}

	for r, pr := range pivotCols {
		br, _ := m.At(r, augCol)
		x := br
		for _, j := range fv.mivii {
			if j <= pr {
				continue
			}
			mrj, _ := m.At(r, j)
			if mrj == 0 {
				continue
			}
			x -= mrj * y[fv.mivi[j]]
		}
		if contract.EqualWithin(x, 0, rs.eps) {
			x = 0
		}
		if err := dca.Put(rs.columns[pr].name, x); err != nil {
			return contract.DebtCutAssignment{}, err
		}
	}

	return dca, nil
}
