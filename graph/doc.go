// Package graph defines the multigraph of parties (Node) and directed loan
// contracts (contract.Contract) the debt-cut solver operates on, plus
// TimeAssignment, the per-(Node,Contract) payment-time map the solver
// requires as input.
//
// Structure follows lvlath/core's Graph/Vertex split, adapted to an
// arena+indices ownership model: Graph owns one node arena (indexed by
// NodeID) and one contract arena (indexed by ContractID); Node is a
// lightweight handle (id + owning *Graph), never the owner of adjacency
// state, which sidesteps a Node<->Graph heap-cycle while still letting
// Node.AddDebtor(debtor, contract) read naturally from the caller's side —
// Go's garbage collector handles the resulting reference cycle natively, so
// the handle carries a back-pointer instead of every operation threading an
// explicit *Graph parameter.
//
//	g := graph.NewGraph("demo")
//	u, _ := g.Add("u")
//	v, _ := g.Add("v")
//	c, _ := contract.NewContinuous("u-to-v", 100, 0.1, 0)
//	_ = u.AddDebtor(v, c)
package graph
