// File: graph.go
// Role: Graph-level node catalog operations (Add/Remove/Contains/GetByName),
// inspection (IsInEquilibriumAt/TotalFlowAt/MaxEquity/Describe), and the two
// solver-facing operations (FindEquilibrialDebtCuts, ApplyDebtCuts).
//
// Mirrors core/methods.go's validate-then-lock-then-mutate shape.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/finlib/debtcut/contract"
)

// Finder is the interface a debt-cut solver implements; Graph delegates to
// whichever Finder was installed via SetDebtCutFinder. Defined here (rather
// than in package solver) so Graph never imports solver — solver imports
// graph, not the other way around.
type Finder interface {
	// Compute returns the equilibrial debt-cut assignment for g at
	// equilibrium time tEq, given the payment-time map ta.
	Compute(g *Graph, tEq float64, ta *TimeAssignment) (contract.DebtCutAssignment, error)
}

// SetDebtCutFinder installs the solver Graph.FindEquilibrialDebtCuts
// delegates to.
func (g *Graph) SetDebtCutFinder(f Finder) { g.finder = f }

// AddNode attaches node to the graph, assigning it a fresh NodeID.
// Returns ErrInvalidArgument if node is nil or its name is empty,
// ErrInvalidState if node already belongs to a (possibly different) graph,
// or if the name is already taken in this graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(node *Node) error {
	if node == nil || node.name == "" {
		return ErrInvalidArgument
	}
	if node.g != nil {
		return ErrInvalidState
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, exists := g.nameIndex[node.name]; exists {
		return ErrInvalidState
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &nodeRec{
		name: node.name,
		out:  make(map[NodeID]*edgeBundle),
		in:   make(map[NodeID]*edgeBundle),
	})
	g.nameIndex[node.name] = id
	node.id = id
	node.g = g

	return nil
}

// Add constructs and attaches a Node named name in one step, returning the
// attached handle.
func (g *Graph) Add(name string) (*Node, error) {
	n := NewNode(name)
	if err := g.AddNode(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Contains reports whether a node named name is present in the graph.
func (g *Graph) Contains(name string) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nameIndex[name]
	return ok
}

// GetByName returns the Node handle for name, or ErrNodeNotFound.
func (g *Graph) GetByName(name string) (*Node, error) {
	g.muNodes.RLock()
	id, ok := g.nameIndex[name]
	g.muNodes.RUnlock()
	if !ok {
		return nil, ErrNodeNotFound
	}
	return &Node{name: name, id: id, g: g}, nil
}

// Nodes returns every Node handle in the graph, ordered by NodeID (i.e.
// insertion order) to keep downstream matrix-column assignment
// deterministic across repeated traversals of the same graph.
func (g *Graph) Nodes() []*Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]*Node, 0, len(g.nameIndex))
	for name, id := range g.nameIndex {
		out = append(out, &Node{name: name, id: id, g: g})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// Remove detaches the named node (clearing its incident contracts first)
// and drops it from the name index. Returns ErrNodeNotFound if absent.
//
// The node's slot in the arena is not reclaimed (NodeIDs are stable for the
// graph's lifetime); Remove only clears its edges and removes it from
// lookup and iteration.
func (g *Graph) Remove(name string) error {
	n, err := g.GetByName(name)
	if err != nil {
		return err
	}
	if err := n.Clear(); err != nil {
		return err
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	delete(g.nameIndex, name)

	return nil
}

// MaxEquity returns the largest absolute equity (in either direction) of
// any node at time t.
func (g *Graph) MaxEquity(t float64) (float64, error) {
	max := 0.0
	for _, n := range g.Nodes() {
		eq, err := n.Equity(t)
		if err != nil {
			return 0, err
		}
		if eq < 0 {
			eq = -eq
		}
		if eq > max {
			max = eq
		}
	}
	return max, nil
}

// IsInEquilibriumAt reports whether every node's equity is within the
// process-wide epsilon of zero at time t.
func (g *Graph) IsInEquilibriumAt(t float64) (bool, error) {
	for _, n := range g.Nodes() {
		eq, err := n.Equity(t)
		if err != nil {
			return false, err
		}
		if !contract.EqualWithin(eq, 0, contract.Epsilon()) {
			return false, nil
		}
	}
	return true, nil
}

// TotalFlowAt sums each node's outgoing-contract value at time t.
func (g *Graph) TotalFlowAt(t float64) (float64, error) {
	total := 0.0
	for _, n := range g.Nodes() {
		rec := g.rec(n.id)
		g.muContracts.RLock()
		for _, bundle := range rec.out {
			for _, cid := range bundle.contracts {
				c := g.contracts[cid]
				v, err := c.Evaluate(t - c.Timestamp())
				if err != nil {
					g.muContracts.RUnlock()
					return 0, err
				}
				total += v
			}
		}
		g.muContracts.RUnlock()
	}
	return total, nil
}

// Describe returns a human-readable summary of the graph's state at time t.
func (g *Graph) Describe(t float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph %q: %d nodes, %d edges, %d contracts\n", g.name, len(g.Nodes()), g.EdgeAmount(), g.ContractAmount())
	names := make([]string, 0, len(g.nodes))
	for _, n := range g.Nodes() {
		names = append(names, n.name)
	}
	sort.Strings(names)
	for _, name := range names {
		n, _ := g.GetByName(name)
		eq, err := n.Equity(t)
		if err != nil {
			fmt.Fprintf(&b, "  %s: equity error: %v\n", name, err)
			continue
		}
		fmt.Fprintf(&b, "  %s: equity(%.6g) = %.6g\n", name, t, eq)
	}
	return b.String()
}

// FindEquilibrialDebtCuts delegates to the installed Finder. Returns
// ErrInvalidState if no Finder has been installed via SetDebtCutFinder.
func (g *Graph) FindEquilibrialDebtCuts(tEq float64, ta *TimeAssignment) (contract.DebtCutAssignment, error) {
	if g.finder == nil {
		return contract.DebtCutAssignment{}, ErrInvalidState
	}
	return g.finder.Compute(g, tEq, ta)
}

// ApplyDebtCuts returns a new Graph with contracts replaced by their
// post-cut versions. Only contracts present in dca are copied; every
// node present in g is recreated in the result regardless of whether it
// retains any contracts.
func (g *Graph) ApplyDebtCuts(dca contract.DebtCutAssignment, ta *TimeAssignment) (*Graph, error) {
	out := NewGraph(g.name)
	nodes := g.Nodes()
	handles := make(map[NodeID]*Node, len(nodes))
	for _, n := range nodes {
		h, err := out.Add(n.name)
		if err != nil {
			return nil, err
		}
		handles[n.id] = h
	}

	g.muContracts.RLock()
	defer g.muContracts.RUnlock()

	for _, lender := range nodes {
		rec := g.rec(lender.id)
		for debtorID, bundle := range rec.out {
			debtor := handles[debtorID]
			lenderOut := handles[lender.id]
			for _, cid := range bundle.contracts {
				c := g.contracts[cid]
				if _, ok := dca.Get(c.Name()); !ok {
					continue
				}
				absTime, err := ta.Get(debtor, c)
				if err != nil {
					return nil, err
				}
				cut, err := c.ApplyDebtCut(dca, absTime)
				if err != nil {
					return nil, err
				}
				if err := lenderOut.AddDebtor(debtor, cut); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
