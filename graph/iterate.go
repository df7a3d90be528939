// File: iterate.go
// Role: read-only traversal helpers the solver package uses to build its
// equilibrium matrix without reaching into Graph's unexported arena.
//
// Debtor/lender order is sorted by NodeID (assignment order, stable for the
// graph's lifetime) rather than raw map iteration, so matrix column
// assignment is reproducible across repeated solves of the same graph —
// mirroring core.Graph.Vertices()/Edges()'s documented sorted-order
// guarantee.
package graph

import (
	"sort"

	"github.com/finlib/debtcut/contract"
)

// OutEdge is one contract n extends to a debtor.
type OutEdge struct {
	Debtor   *Node
	Contract contract.Contract
}

// InEdge is one contract a lender extends to n.
type InEdge struct {
	Lender   *Node
	Contract contract.Contract
}

// OutgoingContracts returns every contract n extends to a debtor, ordered
// by debtor NodeID then by insertion order within each debtor's bundle.
func (g *Graph) OutgoingContracts(n *Node) []OutEdge {
	if n.g == nil {
		return nil
	}
	g.muContracts.RLock()
	defer g.muContracts.RUnlock()

	rec := g.rec(n.id)
	debtorIDs := make([]NodeID, 0, len(rec.out))
	for id := range rec.out {
		debtorIDs = append(debtorIDs, id)
	}
	sort.Slice(debtorIDs, func(i, j int) bool { return debtorIDs[i] < debtorIDs[j] })

	out := make([]OutEdge, 0, len(rec.out))
	for _, id := range debtorIDs {
		debtorRec := g.rec(id)
		debtor := &Node{name: debtorRec.name, id: id, g: g}
		for _, cid := range rec.out[id].contracts {
			out = append(out, OutEdge{Debtor: debtor, Contract: g.contracts[cid]})
		}
	}

	return out
}

// IncomingContracts returns every contract a lender extends to n, ordered
// by lender NodeID then by insertion order within each lender's bundle.
func (g *Graph) IncomingContracts(n *Node) []InEdge {
	if n.g == nil {
		return nil
	}
	g.muContracts.RLock()
	defer g.muContracts.RUnlock()

	rec := g.rec(n.id)
	lenderIDs := make([]NodeID, 0, len(rec.in))
	for id := range rec.in {
		lenderIDs = append(lenderIDs, id)
	}
	sort.Slice(lenderIDs, func(i, j int) bool { return lenderIDs[i] < lenderIDs[j] })

	in := make([]InEdge, 0, len(rec.in))
	for _, id := range lenderIDs {
		lenderRec := g.rec(id)
		lender := &Node{name: lenderRec.name, id: id, g: g}
		for _, cid := range rec.in[id].contracts {
			in = append(in, InEdge{Lender: lender, Contract: g.contracts[cid]})
		}
	}

	return in
}
