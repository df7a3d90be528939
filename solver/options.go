// File: options.go
// Role: functional-option configuration for DefaultEquilibrialDebtCutFinder,
// grounded on flow.FlowOptions (Epsilon/Verbose fields) and the
// matrix/core WithXxx(...) Option-function convention.
package solver

import "math"

// Option configures a DefaultEquilibrialDebtCutFinder at construction time.
type Option func(*DefaultEquilibrialDebtCutFinder)

// WithVerbose toggles stage-summary logging (matrix built, rank found, LP
// solved) via gated fmt.Printf, mirroring flow.FlowOptions.Verbose — the
// only logging-shaped pattern anywhere in the retrieval pack.
func WithVerbose(v bool) Option {
	return func(f *DefaultEquilibrialDebtCutFinder) { f.verbose = v }
}

// WithEpsilon overrides the tolerance this solver instance uses for pivot
// detection and equilibrium checks. Values that are NaN, infinite, or
// non-positive are silently ignored (matching contract.SetEpsilon's
// documented silent-ignore policy) and the instance falls back to
// contract.Epsilon() at Compute time.
func WithEpsilon(eps float64) Option {
	return func(f *DefaultEquilibrialDebtCutFinder) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
			return
		}
		f.epsilon = eps
		f.hasEpsilon = true
	}
}

// New constructs a DefaultEquilibrialDebtCutFinder with opts applied.
func New(opts ...Option) *DefaultEquilibrialDebtCutFinder {
	f := &DefaultEquilibrialDebtCutFinder{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
