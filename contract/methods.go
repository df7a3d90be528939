// File: methods.go
// Role: Contract's time-value operations — Evaluate, GrowthFactor,
// ShiftCorrection, ApplyDebtCut.
//
// Complexity: every operation here is O(1); no allocation besides the
// returned Contract value in ApplyDebtCut.
package contract

import "math"

// CutProvider is the minimal surface ApplyDebtCut needs from a
// DebtCutAssignment: look up the forgiven amount for a contract by name.
// Defined here (rather than imported from solver) so this package keeps no
// dependency on solver, in line with this repo's leaf-first package
// layering.
type CutProvider interface {
	// CutFor returns the forgiven amount recorded for the contract named id,
	// and false if no entry exists.
	CutFor(id string) (float64, bool)
}

// Evaluate returns the contract's value after the given non-negative
// duration has elapsed since its (possibly shifted) timestamp.
//
//   - Periodic:   principal * (1 + r/n)^floor(n*d)
//   - Continuous: principal * e^(r*d)
//
// Returns ErrInvalidArgument if duration is negative, NaN, or infinite.
func (c Contract) Evaluate(duration float64) (float64, error) {
	if !validateFinite(duration) || duration < 0 {
		return 0, ErrInvalidArgument
	}
	gf, err := c.growthFactorUnchecked(duration)
	if err != nil {
		return 0, err
	}

	return c.principal * gf, nil
}

// GrowthFactor returns the multiplicative factor applied to principal over
// the given non-negative duration (the same factor Evaluate scales
// principal by). Returns ErrInvalidArgument on an invalid duration.
func (c Contract) GrowthFactor(duration float64) (float64, error) {
	if !validateFinite(duration) || duration < 0 {
		return 0, ErrInvalidArgument
	}

	return c.growthFactorUnchecked(duration)
}

// growthFactorUnchecked dispatches on variant without re-validating
// duration; callers (Evaluate, GrowthFactor) have already validated it.
func (c Contract) growthFactorUnchecked(duration float64) (float64, error) {
	switch c.kind {
	case Continuous:
		return math.Exp(c.interestRate * duration), nil
	case Periodic:
		ticks := math.Floor(c.compoundingPeriods * duration)
		return math.Pow(1+c.interestRate/c.compoundingPeriods, ticks), nil
	default:
		return 0, ErrInvalidState
	}
}

// ShiftCorrection returns the amount by which this contract's timestamp
// must be reduced so that a compounding tick lands exactly at duration d
// after the shifted origin.
//
// Continuous contracts have no ticks: ShiftCorrection always returns 0.
// Periodic contracts return the fractional part of n*d, i.e. n*d -
// floor(n*d).
func (c Contract) ShiftCorrection(d float64) float64 {
	if c.kind == Continuous {
		return 0
	}
	nd := c.compoundingPeriods * d
	return nd - math.Floor(nd)
}

// ApplyDebtCut constructs a new Contract of the same variant, same interest
// rate and compounding periods, with timestamp set to absoluteTime and
// principal set to:
//
//	self.Evaluate(absoluteTime - self.Timestamp()) - dca.CutFor(self.Name())
//
// Returns ErrInvalidState if dca has no entry for this contract's name, and
// ErrInvalidArgument if the resulting principal would be negative/invalid or
// absoluteTime - self.Timestamp() is itself an invalid duration.
func (c Contract) ApplyDebtCut(dca CutProvider, absoluteTime float64) (Contract, error) {
	cut, ok := dca.CutFor(c.name)
	if !ok {
		return Contract{}, ErrInvalidState
	}
	preCut, err := c.Evaluate(absoluteTime - c.timestamp)
	if err != nil {
		return Contract{}, err
	}
	newPrincipal := preCut - cut

	switch c.kind {
	case Continuous:
		return NewContinuous(c.name, newPrincipal, c.interestRate, absoluteTime)
	case Periodic:
		return NewPeriodic(c.name, newPrincipal, c.interestRate, c.compoundingPeriods, absoluteTime)
	default:
		return Contract{}, ErrInvalidState
	}
}
