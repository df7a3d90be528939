// File: errors.go
// Role: sentinel errors for the solver package.
package solver

import "errors"

var (
	// ErrInvalidArgument indicates a nil graph/time assignment, or an
	// equilibrium time that is NaN or infinite.
	ErrInvalidArgument = errors.New("solver: invalid argument")
)
