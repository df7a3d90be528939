package simplex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finlib/debtcut/simplex"
)

const eps = 1e-7

func TestSolve_RejectsEmptyCost(t *testing.T) {
	_, err := simplex.Solve(simplex.Problem{}, eps)
	require.ErrorIs(t, err, simplex.ErrInvalidArgument)
}

func TestSolve_RejectsMismatchedConstraintWidth(t *testing.T) {
	p := simplex.Problem{
		Cost: []float64{1, 1},
		Constraints: []simplex.Constraint{
			{Coeffs: []float64{1}, Rel: simplex.LE, RHS: 1},
		},
	}
	_, err := simplex.Solve(p, eps)
	require.ErrorIs(t, err, simplex.ErrInvalidArgument)
}

// TestSolve_SimpleGE minimizes x+y subject to x+2y >= 4, x,y >= 0. The
// optimum is x=0, y=2 -> cost 2 (x=4, y=0 is feasible but costs 4).
func TestSolve_SimpleGE(t *testing.T) {
	p := simplex.Problem{
		Cost: []float64{1, 1},
		Constraints: []simplex.Constraint{
			{Coeffs: []float64{1, 2}, Rel: simplex.GE, RHS: 4},
		},
	}
	res, err := simplex.Solve(p, eps)
	require.NoError(t, err)
	require.InDelta(t, 2.0, res.Objective, 1e-6)
}

// TestSolve_BoundedBox minimizes x subject to x<=5, x>=1: optimum x=1.
func TestSolve_BoundedBox(t *testing.T) {
	p := simplex.Problem{
		Cost: []float64{1},
		Constraints: []simplex.Constraint{
			{Coeffs: []float64{1}, Rel: simplex.LE, RHS: 5},
			{Coeffs: []float64{1}, Rel: simplex.GE, RHS: 1},
		},
	}
	res, err := simplex.Solve(p, eps)
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.X[0], 1e-6)
	require.InDelta(t, 1.0, res.Objective, 1e-6)
}

// TestSolve_EqualityConstraint pins x+y=3 and minimizes x -> optimum x=0,
// y=3 since both are non-negative.
func TestSolve_EqualityConstraint(t *testing.T) {
	p := simplex.Problem{
		Cost: []float64{1, 0},
		Constraints: []simplex.Constraint{
			{Coeffs: []float64{1, 1}, Rel: simplex.EQ, RHS: 3},
		},
	}
	res, err := simplex.Solve(p, eps)
	require.NoError(t, err)
	require.InDelta(t, 0.0, res.X[0], 1e-6)
	require.InDelta(t, 3.0, res.X[1], 1e-6)
}

// TestSolve_Infeasible has no point satisfying both x<=1 and x>=2.
func TestSolve_Infeasible(t *testing.T) {
	p := simplex.Problem{
		Cost: []float64{1},
		Constraints: []simplex.Constraint{
			{Coeffs: []float64{1}, Rel: simplex.LE, RHS: 1},
			{Coeffs: []float64{1}, Rel: simplex.GE, RHS: 2},
		},
	}
	_, err := simplex.Solve(p, eps)
	require.ErrorIs(t, err, simplex.ErrInfeasible)
}

// TestSolve_Unbounded minimizes -x with only x >= 0 (no upper bound), which
// is unbounded below.
func TestSolve_Unbounded(t *testing.T) {
	p := simplex.Problem{
		Cost: []float64{-1},
		Constraints: []simplex.Constraint{
			{Coeffs: []float64{0}, Rel: simplex.LE, RHS: 1},
		},
	}
	_, err := simplex.Solve(p, eps)
	require.ErrorIs(t, err, simplex.ErrUnbounded)
}

// TestSolve_DebtCutShapedProblem mirrors the bound shape solver/lp.go
// builds: one free variable with a lower bound (via a GE row) and an upper
// bound (via a LE row), minimized directly.
func TestSolve_DebtCutShapedProblem(t *testing.T) {
	p := simplex.Problem{
		Cost: []float64{1},
		Constraints: []simplex.Constraint{
			{Coeffs: []float64{1}, Rel: simplex.GE, RHS: 0},
			{Coeffs: []float64{1}, Rel: simplex.LE, RHS: 10},
		},
	}
	res, err := simplex.Solve(p, eps)
	require.NoError(t, err)
	require.InDelta(t, 0.0, res.X[0], 1e-6)
	require.False(t, math.IsNaN(res.Objective))
}
