// File: builder.go
// Role: fluent construction convenience — sugar over NewPeriodic/NewContinuous,
// grounded on the lvlath/builder package's WithX functional-option habit, sized
// down for Contract's four scalar fields — a convenience wrapper only, not
// the primary construction path.
package contract

// Builder accumulates Contract fields before a final Build call validates
// them via NewPeriodic/NewContinuous. Zero value is usable; Build defaults
// to the Continuous variant unless Periods was called.
type Builder struct {
	name         string
	principal    float64
	interestRate float64
	periods      float64
	hasPeriods   bool
	timestamp    float64
}

// NewBuilder starts a Builder for a contract named name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Principal sets the base monetary amount.
func (b *Builder) Principal(v float64) *Builder { b.principal = v; return b }

// InterestRate sets the annual rate.
func (b *Builder) InterestRate(v float64) *Builder { b.interestRate = v; return b }

// Periods marks the contract Periodic with n compounding periods per unit
// duration. Omitting this call yields a Continuous contract on Build.
func (b *Builder) Periods(n float64) *Builder { b.periods, b.hasPeriods = n, true; return b }

// Timestamp sets the origin time.
func (b *Builder) Timestamp(v float64) *Builder { b.timestamp = v; return b }

// Build validates the accumulated fields and constructs the Contract.
func (b *Builder) Build() (Contract, error) {
	if b.hasPeriods {
		return NewPeriodic(b.name, b.principal, b.interestRate, b.periods, b.timestamp)
	}
	return NewContinuous(b.name, b.principal, b.interestRate, b.timestamp)
}
