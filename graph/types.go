// File: types.go
// Role: arena storage for Graph (nodes + contracts by index) and the Node
// handle type. Mirrors core/types.go's field grouping (separate locks for
// the node catalog vs. the contract/edge catalog) but keyed by integer
// arena index rather than string ID, to avoid a Node<->Graph heap cycle
// through string-keyed lookups on every traversal.
package graph

import (
	"sync"

	"github.com/finlib/debtcut/contract"
)

// NodeID indexes Graph's node arena.
type NodeID int

// ContractID indexes Graph's contract arena.
type ContractID int

// edgeBundle is the ordered sequence of contracts one node extends to
// another. The SAME *edgeBundle is referenced from both the lender's out
// map and the debtor's in map: appending to bundle.contracts is visible
// from either side because both maps hold the same pointer.
type edgeBundle struct {
	contracts []ContractID
}

// nodeRec is the arena-resident storage for one Node. Node itself is just
// a handle (id + owning Graph) — see doc.go.
type nodeRec struct {
	name         string
	out          map[NodeID]*edgeBundle // debtor NodeID -> contracts lent to it
	in           map[NodeID]*edgeBundle // lender NodeID -> contracts received from it (shared bundles with out)
	maxTimestamp float64
}

// Graph is a named multigraph of Node parties and directed Contract edges.
//
// muNodes guards the node arena and name index; muContracts guards the
// contract arena, edgeAmount, and contractAmount — mirroring core.Graph's
// muVert/muEdgeAdj split. Exactly one goroutine may call
// FindEquilibrialDebtCuts on a given Graph at a time; ordinary construction
// (AddNode/AddDebtor) remains safe for concurrent callers.
type Graph struct {
	muNodes     sync.RWMutex
	muContracts sync.RWMutex

	name string

	nodes     []*nodeRec
	nameIndex map[string]NodeID

	contracts      []contract.Contract
	contractDebtor []NodeID // ContractID -> the node receiving that contract (c2n)
	contractLender []NodeID // ContractID -> the node extending that contract

	edgeAmount     int
	contractAmount int
	maxTimestamp   float64

	finder Finder
}

// NewGraph constructs an empty, named Graph.
func NewGraph(name string) *Graph {
	return &Graph{
		name:      name,
		nameIndex: make(map[string]NodeID),
	}
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

// EdgeAmount returns the number of distinct ordered (lender, debtor) pairs
// with at least one contract between them.
func (g *Graph) EdgeAmount() int {
	g.muContracts.RLock()
	defer g.muContracts.RUnlock()
	return g.edgeAmount
}

// ContractAmount returns the total number of contracts in the graph.
func (g *Graph) ContractAmount() int {
	g.muContracts.RLock()
	defer g.muContracts.RUnlock()
	return g.contractAmount
}

// MaxTimestamp returns the maximum contract timestamp observed so far.
func (g *Graph) MaxTimestamp() float64 {
	g.muContracts.RLock()
	defer g.muContracts.RUnlock()
	return g.maxTimestamp
}

// Node is a lightweight handle into a Graph's node arena: a NodeID plus the
// owning Graph. It is not itself storage; see nodeRec. The zero value is an
// unattached node pending Graph.AddNode.
type Node struct {
	name string
	id   NodeID
	g    *Graph
}

// NewNode constructs a free-standing Node named name, not yet attached to
// any Graph. Attach it with Graph.AddNode.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Graph returns the owning Graph, or nil if this Node has not been added to
// one yet.
func (n *Node) Graph() *Graph { return n.g }

func (g *Graph) rec(id NodeID) *nodeRec { return g.nodes[id] }
