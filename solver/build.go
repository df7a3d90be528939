// File: build.go
// Role: timestamp-shift every contract into a solver-local copy and lay out
// the augmented equilibrium matrix.
package solver

import (
	"github.com/finlib/debtcut/graph"
	"github.com/finlib/debtcut/matrix"
)

// buildEquilibriumMatrix shifts every contract's timestamp to align it with
// its own compounding boundary into a solver-local copy, assigns each
// distinct contract a column (populating rs.columns/rs.index), and lays out
// the n x (m+1) augmented matrix: one row per node in rs.rows order, one
// column per contract plus the augmentation column.
//
// The shift never mutates the caller's graph: buildEquilibriumMatrix only
// ever reads g and ta, producing independent contract.Contract values
// inside rs.columns.
func buildEquilibriumMatrix(g *graph.Graph, ta *graph.TimeAssignment, rs *runState) (*matrix.Dense, error) {
	if err := registerColumns(g, ta, rs); err != nil {
		return nil, err
	}

	m, err := matrix.NewDense(len(rs.rows), len(rs.columns)+1)
	if err != nil {
		return nil, err
	}
	augCol := len(rs.columns)

	for r, v := range rs.rows {
		var b float64

		for _, oe := range g.OutgoingContracts(v) {
			col := rs.columns[rs.index[oe.Contract.Name()]]
			paymentTime, err := ta.Get(col.debtor, col.shifted)
			if err != nil {
				return nil, err
			}
			gf, err := col.shifted.GrowthFactor(rs.tEq - paymentTime)
			if err != nil {
				return nil, err
			}
			j := rs.index[oe.Contract.Name()]
			if err := m.Set(r, j, gf); err != nil {
				return nil, err
			}
			b += col.preCut * gf
		}

		for _, ie := range g.IncomingContracts(v) {
			col := rs.columns[rs.index[ie.Contract.Name()]]
			paymentTime, err := ta.Get(v, col.shifted)
			if err != nil {
				return nil, err
			}
			gf, err := col.shifted.GrowthFactor(rs.tEq - paymentTime)
			if err != nil {
				return nil, err
			}
			j := rs.index[ie.Contract.Name()]
			if err := m.Set(r, j, -gf); err != nil {
				return nil, err
			}
			b -= col.preCut * gf
		}

		if err := m.Set(r, augCol, b); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// registerColumns walks rs.rows in order and, for each node's outgoing
// contracts (also in order), assigns the next column index to any contract
// not already seen.
func registerColumns(g *graph.Graph, ta *graph.TimeAssignment, rs *runState) error {
	for _, v := range rs.rows {
		for _, oe := range g.OutgoingContracts(v) {
			if _, exists := rs.index[oe.Contract.Name()]; exists {
				continue
			}

			paymentTime, err := ta.Get(oe.Debtor, oe.Contract)
			if err != nil {
				return err
			}
			delta := oe.Contract.ShiftCorrection(paymentTime - oe.Contract.Timestamp())
			shifted, err := oe.Contract.WithTimestamp(oe.Contract.Timestamp() - delta)
			if err != nil {
				return err
			}
			preCut, err := shifted.Evaluate(paymentTime - shifted.Timestamp())
			if err != nil {
				return err
			}

			idx := len(rs.columns)
			rs.index[oe.Contract.Name()] = idx
			rs.columns = append(rs.columns, column{
				name:    oe.Contract.Name(),
				shifted: shifted,
				debtor:  oe.Debtor,
				preCut:  preCut,
			})
		}
	}
	return nil
}
