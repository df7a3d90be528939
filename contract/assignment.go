// File: assignment.go
// Role: DebtCutAssignment, the solver's output — contract name -> forgiven
// amount, plus the equilibrium time it was computed for and a running sum.
//
// Lives in this package (rather than in solver, which is its natural
// producer) so that Contract.ApplyDebtCut can consume it without an import
// cycle: solver depends on graph which depends on contract, so contract must
// not depend on solver. DebtCutAssignment only ever needs Contract-shaped
// keys, so it belongs at the same layer as Contract itself — mirrors how
// lvlath/tsp.TSResult is a plain, dependency-free value type returned by a
// higher package's algorithm.
package contract

import "math"

// DebtCutAssignment maps Contract name to the non-negative, finite amount
// forgiven on that contract. This module stores the forgiven amount (the
// cut) rather than the post-cut principal, which keeps Sum directly
// meaningful without requiring the original principal to interpret it.
//
// The zero value is not a valid assignment; use NewDebtCutAssignment. A
// DebtCutAssignment is read-only to consumers after construction: Put is the
// only mutator and is meant to be called solely by the solver while it is
// assembling the result.
type DebtCutAssignment struct {
	equilibriumTime float64
	cuts            map[string]float64
	sum             float64
	noSolution      bool
}

// NewDebtCutAssignment creates an assignment for the given equilibrium time.
func NewDebtCutAssignment(equilibriumTime float64) DebtCutAssignment {
	return DebtCutAssignment{
		equilibriumTime: equilibriumTime,
		cuts:            make(map[string]float64),
	}
}

// NoSolutionAssignment is the sentinel assignment returned when the
// equilibrium linear system is over-constrained and has no consistent
// solution. Its equilibrium time is -Inf and its contract set is empty.
func NoSolutionAssignment() DebtCutAssignment {
	return DebtCutAssignment{
		equilibriumTime: math.Inf(-1),
		cuts:            make(map[string]float64),
		noSolution:      true,
	}
}

// IsNoSolution reports whether this is the NoSolution sentinel.
func (d DebtCutAssignment) IsNoSolution() bool { return d.noSolution }

// EquilibriumTime returns the time this assignment was computed for.
func (d DebtCutAssignment) EquilibriumTime() float64 { return d.equilibriumTime }

// Sum returns the running total of all inserted cuts, maintained
// incrementally by Put (not recomputed from the map on each call).
func (d DebtCutAssignment) Sum() float64 { return d.sum }

// Put records the forgiven amount for the contract named id. Amount must be
// non-negative and finite; violations return ErrInvalidArgument and leave
// the assignment unchanged.
func (d *DebtCutAssignment) Put(id string, amount float64) error {
	if !validateFinite(amount) || amount < 0 {
		return ErrInvalidArgument
	}
	if old, ok := d.cuts[id]; ok {
		d.sum -= old
	}
	d.cuts[id] = amount
	d.sum += amount

	return nil
}

// Get returns the forgiven amount recorded for the contract named id, and
// whether an entry exists.
func (d DebtCutAssignment) Get(id string) (float64, bool) {
	v, ok := d.cuts[id]
	return v, ok
}

// CutFor implements CutProvider, letting Contract.ApplyDebtCut consume a
// DebtCutAssignment directly.
func (d DebtCutAssignment) CutFor(id string) (float64, bool) { return d.Get(id) }

// Len returns the number of contracts with a recorded cut.
func (d DebtCutAssignment) Len() int { return len(d.cuts) }

// Names returns the contract names present in this assignment, in
// unspecified order.
func (d DebtCutAssignment) Names() []string {
	out := make([]string, 0, len(d.cuts))
	for k := range d.cuts {
		out = append(out, k)
	}
	return out
}
