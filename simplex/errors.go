package simplex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates malformed problem data: an empty cost
	// vector, or a constraint whose width differs from the cost vector's.
	ErrInvalidArgument = errors.New("simplex: invalid argument")

	// ErrInfeasible indicates Phase 1 could not drive every artificial
	// variable to zero: the constraint system has no feasible point.
	ErrInfeasible = errors.New("simplex: infeasible")

	// ErrUnbounded indicates Phase 2 found a direction of unbounded
	// improvement: the objective has no finite minimum over the feasible
	// region.
	ErrUnbounded = errors.New("simplex: unbounded")
)

func simplexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
