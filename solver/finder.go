// File: finder.go
// Role: DefaultEquilibrialDebtCutFinder — the solver entry point
// (graph.Finder implementation) and its per-run scoped state.
package solver

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/finlib/debtcut/contract"
	"github.com/finlib/debtcut/graph"
	"github.com/finlib/debtcut/matrix"
)

// DefaultEquilibrialDebtCutFinder is the library's one Finder
// implementation: a two-stage RREF-then-simplex pipeline. It is not
// thread-safe: one instance must not be used by two callers at the same
// time. Timing counters are the one piece of state that survives a call to
// Compute, so callers can inspect the cost of the last solve; everything
// else the pipeline needs lives in a function-local runState built fresh
// per call, not on this struct.
type DefaultEquilibrialDebtCutFinder struct {
	verbose    bool
	epsilon    float64
	hasEpsilon bool

	mu                  sync.Mutex
	matrixReductionTime time.Duration
	minimizationTime    time.Duration
}

var _ graph.Finder = (*DefaultEquilibrialDebtCutFinder)(nil)

// MatrixReductionTime returns the wall-clock duration the most recent
// Compute call spent building and RREF-reducing the equilibrium matrix.
func (f *DefaultEquilibrialDebtCutFinder) MatrixReductionTime() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.matrixReductionTime
}

// MinimizationTime returns the wall-clock duration the most recent Compute
// call spent in the simplex LP solve.
func (f *DefaultEquilibrialDebtCutFinder) MinimizationTime() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.minimizationTime
}

func (f *DefaultEquilibrialDebtCutFinder) epsilonOrDefault() float64 {
	if f.hasEpsilon {
		return f.epsilon
	}
	return contract.Epsilon()
}

func (f *DefaultEquilibrialDebtCutFinder) logf(format string, args ...interface{}) {
	if f.verbose {
		fmt.Printf(format, args...)
	}
}

// column is one unknown of the equilibrium system: the cut on a single
// contract (see doc.go for why the unknown is the cut, not the post-cut
// principal). debtor is the node that pays the cut; shifted is the
// timestamp-shifted copy of the contract used for all subsequent
// evaluation.
type column struct {
	name    string
	shifted contract.Contract
	debtor  *graph.Node
	preCut  float64 // V_j: the contract's accrued value at its own payment time
}

// runState is the per-Compute scratch space (columns/index here, the
// free-variable bijection built later in freevars.go). It is constructed at
// the start of Compute and discarded at return; DefaultEquilibrialDebtCutFinder
// itself holds none of it, which is what makes a single Finder safely
// reusable across sequential (never concurrent) calls.
type runState struct {
	eps     float64
	tEq     float64
	columns []column       // index -> column, in mci/mcii order
	index   map[string]int // contract name -> column index
	rows    []*graph.Node  // matrix row -> node, in Graph.Nodes() order
}

// Compute implements graph.Finder: timestamp shift, matrix construction,
// RREF, free-variable discovery, LP formulation, simplex, and cut
// extraction.
func (f *DefaultEquilibrialDebtCutFinder) Compute(g *graph.Graph, tEq float64, ta *graph.TimeAssignment) (contract.DebtCutAssignment, error) {
	if g == nil || ta == nil {
		return contract.DebtCutAssignment{}, ErrInvalidArgument
	}
	if math.IsNaN(tEq) || math.IsInf(tEq, 0) {
		return contract.DebtCutAssignment{}, ErrInvalidArgument
	}

	rs := &runState{
		eps:   f.epsilonOrDefault(),
		tEq:   tEq,
		index: make(map[string]int),
		rows:  g.Nodes(),
	}

	if len(rs.rows) == 0 {
		return contract.NewDebtCutAssignment(tEq), nil
	}

	// Stage 1 (Prepare): timestamp-shift every contract and lay out the
	// augmented coefficient matrix.
	reduceStart := time.Now()
	m, err := buildEquilibriumMatrix(g, ta, rs)
	if err != nil {
		return contract.DebtCutAssignment{}, err
	}
	f.logf("solver: built %dx%d equilibrium matrix (%d nodes, %d contracts)\n",
		m.Rows(), m.Cols(), len(rs.rows), len(rs.columns))

	// ReduceToRREF mutates m in place; keep an unreduced clone so the
	// original coefficients survive for the post-solve residual check.
	original, isDense := m.Clone().(*matrix.Dense)
	if !isDense {
		return contract.DebtCutAssignment{}, ErrInvalidArgument
	}

	// Stage 2 (Reduce): row-reduce to RREF and check consistency.
	pivotCols, err := matrix.ReduceToRREF(m, rs.eps)
	if err != nil {
		return contract.DebtCutAssignment{}, err
	}
	ok, err := matrix.HasSolution(m, pivotCols, rs.eps)
	if err != nil {
		return contract.DebtCutAssignment{}, err
	}
	f.mu.Lock()
	f.matrixReductionTime = time.Since(reduceStart)
	f.mu.Unlock()

	if !ok {
		f.logf("solver: equilibrium system inconsistent, rank=%d\n", len(pivotCols))
		return contract.NoSolutionAssignment(), nil
	}
	rank := len(pivotCols)
	f.logf("solver: RREF rank=%d of %d unknowns\n", rank, len(rs.columns))

	// Stage 3 (Partition): separate free (independent) columns from pivot
	// (dependent) columns.
	fv := identifyFreeVariables(len(rs.columns), pivotCols)

	// Stage 4 (Formulate): express the remaining degrees of freedom as a
	// bounded linear program over the free columns.
	problem := buildLP(rs, m, pivotCols, fv)

	// Stage 5 (Minimize): solve the program, then derive every dependent
	// column's cut from the free columns' solution values.
	minStart := time.Now()
	dca, err := solveAndExtract(rs, m, pivotCols, fv, problem)
	f.mu.Lock()
	f.minimizationTime = time.Since(minStart)
	f.mu.Unlock()
	if err != nil {
		return contract.DebtCutAssignment{}, err
	}
	f.logf("solver: minimized total cut = %.6g\n", dca.Sum())

	if err := f.logResidual(rs, original, dca); err != nil {
		return contract.DebtCutAssignment{}, err
	}

	return dca, nil
}

// logResidual re-evaluates the unreduced equilibrium matrix at the
// extracted cut values and reports the largest per-row residual. Appending
// -1 to the cut vector turns the augmentation column (which holds the
// right-hand side b) into another term of the dot product, so a single
// MatVec call against the original (pre-RREF) matrix yields Mx - b
// directly, without re-deriving b by hand.
func (f *DefaultEquilibrialDebtCutFinder) logResidual(rs *runState, original *matrix.Dense, dca contract.DebtCutAssignment) error {
	x := make([]float64, len(rs.columns)+1)
	for j, col := range rs.columns {
		cut, _ := dca.Get(col.name)
		x[j] = cut
	}
	x[len(rs.columns)] = -1

	residual, err := matrix.MatVec(original, x)
	if err != nil {
		return err
	}

	maxAbs := 0.0
	for _, v := range residual {
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	f.logf("solver: max residual |Mx - b| = %.6g\n", maxAbs)

	return nil
}
