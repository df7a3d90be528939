package simplex

import (
	"math"

	"github.com/finlib/debtcut/matrix"
)

const maxIterationsPerPhase = 10000

// Solve runs the two-phase primal simplex method on p and returns the
// optimal non-negative x minimizing p.Cost·x subject to p.Constraints.
//
// Stage 1 (Validate): check shapes.
// Stage 2 (Prepare): build the standard-form tableau (slack/surplus/artificial columns).
// Stage 3 (Execute): Phase 1 drives artificial variables to zero, or returns ErrInfeasible.
// Stage 4 (Execute): Phase 2 optimizes the caller's objective over the feasible basis.
// Stage 5 (Finalize): extract the original variables' values.
//
// Complexity: each phase is O(iterations * rows * cols); iterations bounded
// by maxIterationsPerPhase as a cycling backstop even though Bland's rule
// already guarantees termination in the absence of floating-point noise.
func Solve(p Problem, eps float64) (Result, error) {
	n := len(p.Cost)
	if n == 0 {
		return Result{}, simplexErrorf("Solve", ErrInvalidArgument)
	}
	for _, c := range p.Constraints {
		if len(c.Coeffs) != n {
			return Result{}, simplexErrorf("Solve", ErrInvalidArgument)
		}
	}

	tb, err := newTableau(p, eps)
	if err != nil {
		return Result{}, err
	}

	if tb.numArtificial > 0 {
		iters, err := tb.runPhase1(eps)
		if err != nil {
			return Result{}, err
		}
		tb.iterations += iters
		if tb.phase1Objective() > eps {
			return Result{}, simplexErrorf("Solve", ErrInfeasible)
		}
		tb.driveOutBasicArtificials(eps)
	}

	iters, err := tb.runPhase2(p.Cost, eps)
	if err != nil {
		return Result{}, err
	}
	tb.iterations += iters

	x := make([]float64, n)
	for r, b := range tb.basis {
		if b < n {
			v, _ := tb.t.At(r, tb.rhsCol)
			x[b] = v
		}
	}

	obj := 0.0
	for j, cj := range p.Cost {
		obj += cj * x[j]
	}

	return Result{X: x, Objective: obj, Iterations: tb.iterations}, nil
}

// tableau holds the standard-form LP in a (rows+1)×(cols+1) Dense matrix:
// the last row is the current objective row, the last column is the RHS.
type tableau struct {
	t             *matrix.Dense
	rows          int
	cols          int // total variable columns, excluding RHS
	rhsCol        int
	objRow        int
	basis         []int
	numArtificial int
	artificialCol []int // column index of the artificial variable for rows that have one, -1 otherwise
	iterations    int
}

// newTableau builds the standard-form tableau for p: each constraint row is
// normalized to a non-negative RHS, then given a slack (≤), surplus (≥), or
// nothing (=) column, plus an artificial column for any ≥ or = row so the
// initial basis is immediately feasible (basic variable value = RHS ≥ 0).
func newTableau(p Problem, eps float64) (*tableau, error) {
	n := len(p.Cost)
	rows := len(p.Constraints)

	rel := make([]Relation, rows)
	rhs := make([]float64, rows)
	coeffs := make([][]float64, rows)
	for i, c := range p.Constraints {
		cf := make([]float64, n)
		copy(cf, c.Coeffs)
		r, b := c.Rel, c.RHS
		if b < 0 {
			for j := range cf {
				cf[j] = -cf[j]
			}
			b = -b
			switch r {
			case LE:
				r = GE
			case GE:
				r = LE
			}
		}
		coeffs[i], rel[i], rhs[i] = cf, r, b
	}

	numSlack, numSurplus, numArt := 0, 0, 0
	for _, r := range rel {
		switch r {
		case LE:
			numSlack++
		case GE:
			numSurplus++
			numArt++
		case EQ:
			numArt++
		}
	}

	cols := n + numSlack + numSurplus + numArt
	t, err := matrix.NewDense(rows+1, cols+1)
	if err != nil {
		return nil, simplexErrorf("newTableau", err)
	}

	basis := make([]int, rows)
	artificialCol := make([]int, rows)
	for i := range artificialCol {
		artificialCol[i] = -1
	}

	slackAt := n
	surplusAt := n + numSlack
	artAt := n + numSlack + numSurplus

	for i := 0; i < rows; i++ {
		for j := 0; j < n; j++ {
			_ = t.Set(i, j, coeffs[i][j])
		}
		_ = t.Set(i, cols, rhs[i])

		switch rel[i] {
		case LE:
			_ = t.Set(i, slackAt, 1)
			basis[i] = slackAt
			slackAt++
		case GE:
			_ = t.Set(i, surplusAt, -1)
			_ = t.Set(i, artAt, 1)
			basis[i] = artAt
			artificialCol[i] = artAt
			surplusAt++
			artAt++
		case EQ:
			_ = t.Set(i, artAt, 1)
			basis[i] = artAt
			artificialCol[i] = artAt
			artAt++
		}
	}

	tb := &tableau{
		t:             t,
		rows:          rows,
		cols:          cols,
		rhsCol:        cols,
		objRow:        rows,
		basis:         basis,
		numArtificial: numArt,
		artificialCol: artificialCol,
	}
	_ = eps
	return tb, nil
}

// pivot performs the elementary row operations that make column col the
// unit basis column for row, zeroing it out of every other row including
// the objective row.
func (tb *tableau) pivot(row, col int) {
	pv, _ := tb.t.At(row, col)
	for j := 0; j <= tb.rhsCol; j++ {
		v, _ := tb.t.At(row, j)
		_ = tb.t.Set(row, j, v/pv)
	}
	for r := 0; r <= tb.objRow; r++ {
		if r == row {
			continue
		}
		factor, _ := tb.t.At(r, col)
		if factor == 0 {
			continue
		}
		for j := 0; j <= tb.rhsCol; j++ {
			vr, _ := tb.t.At(r, j)
			vp, _ := tb.t.At(row, j)
			_ = tb.t.Set(r, j, vr-factor*vp)
		}
	}
	tb.basis[row] = col
}

// chooseEntering applies Bland's rule: the lowest-indexed eligible column
// with a negative objective-row coefficient enters the basis.
func (tb *tableau) chooseEntering(eligible func(col int) bool, eps float64) int {
	for j := 0; j < tb.cols; j++ {
		if !eligible(j) {
			continue
		}
		v, _ := tb.t.At(tb.objRow, j)
		if v < -eps {
			return j
		}
	}
	return -1
}

// chooseLeaving runs the minimum-ratio test for entering column col,
// breaking ties toward the lowest basic-variable index (Bland's rule).
func (tb *tableau) chooseLeaving(col int, eps float64) int {
	best := -1
	bestRatio := math.Inf(1)
	for r := 0; r < tb.rows; r++ {
		a, _ := tb.t.At(r, col)
		if a <= eps {
			continue
		}
		rhs, _ := tb.t.At(r, tb.rhsCol)
		ratio := rhs / a
		if ratio < bestRatio-eps || (ratio < bestRatio+eps && (best == -1 || tb.basis[r] < tb.basis[best])) {
			best = r
			bestRatio = ratio
		}
	}
	return best
}

func (tb *tableau) runPhase1(eps float64) (int, error) {
	for j := 0; j <= tb.cols; j++ {
		_ = tb.t.Set(tb.objRow, j, 0)
	}
	for _, col := range tb.artificialCol {
		if col >= 0 {
			v, _ := tb.t.At(tb.objRow, col)
			_ = tb.t.Set(tb.objRow, col, v+1)
		}
	}
	for r := 0; r < tb.rows; r++ {
		if tb.artificialCol[r] < 0 {
			continue
		}
		for j := 0; j <= tb.rhsCol; j++ {
			vr, _ := tb.t.At(r, j)
			vo, _ := tb.t.At(tb.objRow, j)
			_ = tb.t.Set(tb.objRow, j, vo-vr)
		}
	}

	eligible := func(col int) bool { return true }
	iters := 0
	for ; iters < maxIterationsPerPhase; iters++ {
		enter := tb.chooseEntering(eligible, eps)
		if enter < 0 {
			break
		}
		leave := tb.chooseLeaving(enter, eps)
		if leave < 0 {
			return iters, simplexErrorf("runPhase1", ErrUnbounded)
		}
		tb.pivot(leave, enter)
	}
	return iters, nil
}

func (tb *tableau) phase1Objective() float64 {
	v, _ := tb.t.At(tb.objRow, tb.rhsCol)
	return -v
}

// driveOutBasicArtificials attempts to pivot any artificial variable still
// basic (at value ~0, since Phase 1 reached optimality) out of the basis,
// so Phase 2 never reports a feasible point in terms of a forbidden column.
// A row where every non-artificial coefficient is ~0 is a redundant
// constraint; it is left as-is; its basic artificial stays at 0 and never
// becomes eligible to enter in Phase 2, so it is harmless.
func (tb *tableau) driveOutBasicArtificials(eps float64) {
	for r := 0; r < tb.rows; r++ {
		isArt := false
		for _, c := range tb.artificialCol {
			if c == tb.basis[r] {
				isArt = true
				break
			}
		}
		if !isArt {
			continue
		}
		for j := 0; j < tb.cols; j++ {
			if isArtificialColumn(tb.artificialCol, j) {
				continue
			}
			v, _ := tb.t.At(r, j)
			if math.Abs(v) > eps {
				tb.pivot(r, j)
				break
			}
		}
	}
}

func isArtificialColumn(artificialCol []int, col int) bool {
	for _, c := range artificialCol {
		if c == col {
			return true
		}
	}
	return false
}

func (tb *tableau) runPhase2(cost []float64, eps float64) (int, error) {
	n := len(cost)
	for j := 0; j <= tb.cols; j++ {
		_ = tb.t.Set(tb.objRow, j, 0)
	}
	for j := 0; j < n; j++ {
		_ = tb.t.Set(tb.objRow, j, cost[j])
	}
	for r := 0; r < tb.rows; r++ {
		b := tb.basis[r]
		coef, _ := tb.t.At(tb.objRow, b)
		if coef == 0 {
			continue
		}
		for j := 0; j <= tb.rhsCol; j++ {
			vr, _ := tb.t.At(r, j)
			vo, _ := tb.t.At(tb.objRow, j)
			_ = tb.t.Set(tb.objRow, j, vo-coef*vr)
		}
	}

	eligible := func(col int) bool { return !isArtificialColumn(tb.artificialCol, col) }
	iters := 0
	for ; iters < maxIterationsPerPhase; iters++ {
		enter := tb.chooseEntering(eligible, eps)
		if enter < 0 {
			break
		}
		leave := tb.chooseLeaving(enter, eps)
		if leave < 0 {
			return iters, simplexErrorf("runPhase2", ErrUnbounded)
		}
		tb.pivot(leave, enter)
	}
	return iters, nil
}
