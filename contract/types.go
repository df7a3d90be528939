// File: types.go
// Role: Contract's tagged-variant representation and field validation.
//
// Policy:
//   - Two variants (periodic, continuous) share one struct distinguished by
//     kind, dispatched on in evaluate/growthFactor/shiftCorrection (methods.go)
//     and isContinuous (types.go) rather than a deep interface hierarchy.
//   - compoundingPeriods == math.Inf(1) marks the continuous variant; there is
//     no separate boolean so the contract stays literally four scalar fields
//     plus the tag.
package contract

import "math"

// Kind distinguishes the two Contract variants.
type Kind uint8

const (
	// Periodic compounds interest n times per unit duration.
	Periodic Kind = iota
	// Continuous compounds interest continuously (n == +Inf).
	Continuous
)

// Contract is a named financial instrument: principal, annual interest
// rate, compounding periods (may be +Inf for Continuous), and an origin
// timestamp. Contract values are computed at a caller-supplied duration,
// never an absolute time — see Evaluate.
//
// Identity for use as a map key is by Name (hashed); equality for value
// comparison is by the four numeric attributes within an epsilon — see
// Equal.
type Contract struct {
	kind               Kind
	name               string
	principal          float64
	interestRate       float64
	compoundingPeriods float64 // +Inf for Continuous
	timestamp          float64
}

// Name returns the contract's identity string.
func (c Contract) Name() string { return c.name }

// Principal returns the contract's base monetary amount.
func (c Contract) Principal() float64 { return c.principal }

// InterestRate returns the annual interest rate as a fraction.
func (c Contract) InterestRate() float64 { return c.interestRate }

// CompoundingPeriods returns n, or +Inf for Continuous.
func (c Contract) CompoundingPeriods() float64 { return c.compoundingPeriods }

// Timestamp returns the contract's origin time.
func (c Contract) Timestamp() float64 { return c.timestamp }

// IsContinuous reports whether this Contract is the Continuous variant.
func (c Contract) IsContinuous() bool { return c.kind == Continuous }

// Kind returns the contract's variant tag.
func (c Contract) Kind() Kind { return c.kind }

// validateFinite rejects NaN and infinite values.
func validateFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NewPeriodic constructs a Periodic Contract.
//
// Validates: principal >= 0 finite; interestRate >= 0 finite;
// compoundingPeriods > 0 finite; timestamp finite. Returns
// ErrInvalidArgument on violation.
func NewPeriodic(name string, principal, interestRate, compoundingPeriods, timestamp float64) (Contract, error) {
	if !validateFinite(principal) || principal < 0 {
		return Contract{}, ErrInvalidArgument
	}
	if !validateFinite(interestRate) || interestRate < 0 {
		return Contract{}, ErrInvalidArgument
	}
	if !validateFinite(compoundingPeriods) || compoundingPeriods <= 0 {
		return Contract{}, ErrInvalidArgument
	}
	if !validateFinite(timestamp) {
		return Contract{}, ErrInvalidArgument
	}

	return Contract{
		kind:               Periodic,
		name:               name,
		principal:          principal,
		interestRate:       interestRate,
		compoundingPeriods: compoundingPeriods,
		timestamp:          timestamp,
	}, nil
}

// NewContinuous constructs a Continuous Contract (n == +Inf).
//
// Validates: principal >= 0 finite; interestRate >= 0 finite; timestamp
// finite. Returns ErrInvalidArgument on violation.
func NewContinuous(name string, principal, interestRate, timestamp float64) (Contract, error) {
	if !validateFinite(principal) || principal < 0 {
		return Contract{}, ErrInvalidArgument
	}
	if !validateFinite(interestRate) || interestRate < 0 {
		return Contract{}, ErrInvalidArgument
	}
	if !validateFinite(timestamp) {
		return Contract{}, ErrInvalidArgument
	}

	return Contract{
		kind:               Continuous,
		name:               name,
		principal:          principal,
		interestRate:       interestRate,
		compoundingPeriods: math.Inf(1),
		timestamp:          timestamp,
	}, nil
}

// WithPrincipal returns a copy of c with its principal replaced, after
// validating the new value (>= 0, finite, non-NaN).
func (c Contract) WithPrincipal(principal float64) (Contract, error) {
	if !validateFinite(principal) || principal < 0 {
		return Contract{}, ErrInvalidArgument
	}
	c.principal = principal
	return c, nil
}

// WithTimestamp returns a copy of c with its timestamp replaced, after
// validating the new value is finite.
func (c Contract) WithTimestamp(timestamp float64) (Contract, error) {
	if !validateFinite(timestamp) {
		return Contract{}, ErrInvalidArgument
	}
	c.timestamp = timestamp
	return c, nil
}

// Clone returns a value copy of c. Contract has no reference fields, so
// this is equivalent to a plain assignment; it exists for parity with the
// rest of the module's Clone-on-every-value-type convention (core.Vertex,
// core.Edge) and to make call sites that need an explicit copy obvious.
func (c Contract) Clone() Contract { return c }

// Equal reports whether c and other have the same kind and whose four
// numeric attributes are each within eps of one another.
func (c Contract) Equal(other Contract, eps float64) bool {
	if c.kind != other.kind {
		return false
	}
	// Continuous contracts both carry +Inf periods, and +Inf - +Inf is NaN,
	// so identical values are matched before the tolerance check.
	samePeriods := c.compoundingPeriods == other.compoundingPeriods ||
		EqualWithin(c.compoundingPeriods, other.compoundingPeriods, eps)
	return EqualWithin(c.principal, other.principal, eps) &&
		EqualWithin(c.interestRate, other.interestRate, eps) &&
		samePeriods &&
		EqualWithin(c.timestamp, other.timestamp, eps)
}
