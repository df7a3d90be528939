// File: node.go
// Role: Node-level operations — AddDebtor, Equity, Clear.
package graph

import "github.com/finlib/debtcut/contract"

// AddDebtor records a contract this node extends to debtor, appending it to
// the ordered out/in bundle shared between the two nodes.
//
// Returns ErrInvalidState if n has no owner graph, or if debtor belongs to
// a different graph (or none). Always increments the graph's
// contractAmount; increments edgeAmount only the first time this (lender,
// debtor) pair gains a contract. Updates both nodes' and the graph's cached
// maximum timestamp.
//
// Complexity: O(1) amortized.
func (n *Node) AddDebtor(debtor *Node, c contract.Contract) error {
	if n.g == nil || debtor == nil || debtor.g != n.g {
		return ErrInvalidState
	}
	g := n.g

	g.muContracts.Lock()
	defer g.muContracts.Unlock()

	cid := ContractID(len(g.contracts))
	g.contracts = append(g.contracts, c)
	g.contractDebtor = append(g.contractDebtor, debtor.id)
	g.contractLender = append(g.contractLender, n.id)
	g.contractAmount++

	g.muNodes.RLock()
	lenderRec := g.rec(n.id)
	debtorRec := g.rec(debtor.id)
	g.muNodes.RUnlock()

	bundle, exists := lenderRec.out[debtor.id]
	if !exists {
		bundle = &edgeBundle{}
		lenderRec.out[debtor.id] = bundle
		debtorRec.in[n.id] = bundle
		g.edgeAmount++
	}
	bundle.contracts = append(bundle.contracts, cid)

	ts := c.Timestamp()
	if ts > lenderRec.maxTimestamp {
		lenderRec.maxTimestamp = ts
	}
	if ts > debtorRec.maxTimestamp {
		debtorRec.maxTimestamp = ts
	}
	if ts > g.maxTimestamp {
		g.maxTimestamp = ts
	}

	return nil
}

// Equity returns the node's net equity at time t: the sum of outgoing
// contract values at t minus the sum of incoming contract values at t.
func (n *Node) Equity(t float64) (float64, error) {
	if n.g == nil {
		return 0, ErrInvalidState
	}
	g := n.g
	rec := g.rec(n.id)

	g.muContracts.RLock()
	defer g.muContracts.RUnlock()

	total := 0.0
	for _, bundle := range rec.out {
		for _, cid := range bundle.contracts {
			c := g.contracts[cid]
			v, err := c.Evaluate(t - c.Timestamp())
			if err != nil {
				return 0, err
			}
			total += v
		}
	}
	for _, bundle := range rec.in {
		for _, cid := range bundle.contracts {
			c := g.contracts[cid]
			v, err := c.Evaluate(t - c.Timestamp())
			if err != nil {
				return 0, err
			}
			total -= v
		}
	}

	return total, nil
}

// Clear detaches all edges incident to n (both as lender and as debtor),
// adjusting the graph's edgeAmount and contractAmount accordingly. It does
// not remove n from the graph's name index — see Graph.Remove.
func (n *Node) Clear() error {
	if n.g == nil {
		return ErrInvalidState
	}
	g := n.g

	g.muContracts.Lock()
	defer g.muContracts.Unlock()

	rec := g.rec(n.id)
	for debtorID, bundle := range rec.out {
		g.contractAmount -= len(bundle.contracts)
		g.edgeAmount--
		delete(g.rec(debtorID).in, n.id)
		delete(rec.out, debtorID)
	}
	for lenderID, bundle := range rec.in {
		g.contractAmount -= len(bundle.contracts)
		g.edgeAmount--
		delete(g.rec(lenderID).out, n.id)
		delete(rec.in, lenderID)
	}

	return nil
}
