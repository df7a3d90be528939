// File: errors.go
// Role: sentinel errors for the contract package.
//
// Error policy (mirrors lvlath/core and lvlath/builder):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never string-formatted at definition site.
//   - Call sites wrap with fmt.Errorf("%s: %w", op, err) to add context.
package contract

import "errors"

var (
	// ErrInvalidArgument indicates a nil/NaN/infinite/out-of-range argument
	// where the contract's numeric invariants require a finite, in-range value.
	ErrInvalidArgument = errors.New("contract: invalid argument")

	// ErrInvalidState indicates an operation was attempted against a Contract
	// or DebtCutAssignment in a state that doesn't support it (e.g. a cut
	// lookup for a contract absent from the assignment).
	ErrInvalidState = errors.New("contract: invalid state")
)
