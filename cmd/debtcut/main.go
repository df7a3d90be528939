// Command debtcut demonstrates the equilibrium debt-cut solver end to end:
// build a small three-party loan cycle, compute the minimal set of cuts
// that brings every party to zero equity at a chosen time, and print the
// result.
//
// Not part of the library's public surface — this is a driver only,
// grounded on the teacher's
// examples/*.go "one main per scenario" convention.
package main

import (
	"fmt"
	"log"

	"github.com/finlib/debtcut/contract"
	"github.com/finlib/debtcut/graph"
	"github.com/finlib/debtcut/solver"
)

func main() {
	g := graph.NewGraph("three-party-cycle")

	alice, err := g.Add("alice")
	if err != nil {
		log.Fatalf("add alice: %v", err)
	}
	bob, err := g.Add("bob")
	if err != nil {
		log.Fatalf("add bob: %v", err)
	}
	carol, err := g.Add("carol")
	if err != nil {
		log.Fatalf("add carol: %v", err)
	}

	loanAB, err := contract.NewContinuous("alice-to-bob", 10.0, 0.15, 3.0)
	if err != nil {
		log.Fatalf("new contract: %v", err)
	}
	loanBC, err := contract.NewContinuous("bob-to-carol", 10.0, 0.15, 3.0)
	if err != nil {
		log.Fatalf("new contract: %v", err)
	}
	loanCA, err := contract.NewContinuous("carol-to-alice", 12.0, 0.15, 3.0)
	if err != nil {
		log.Fatalf("new contract: %v", err)
	}

	if err := alice.AddDebtor(bob, loanAB); err != nil {
		log.Fatalf("add debtor: %v", err)
	}
	if err := bob.AddDebtor(carol, loanBC); err != nil {
		log.Fatalf("add debtor: %v", err)
	}
	if err := carol.AddDebtor(alice, loanCA); err != nil {
		log.Fatalf("add debtor: %v", err)
	}

	ta := graph.NewTimeAssignment()
	if err := ta.Put(bob, loanAB, 3.0); err != nil {
		log.Fatalf("put time: %v", err)
	}
	if err := ta.Put(carol, loanBC, 3.0); err != nil {
		log.Fatalf("put time: %v", err)
	}
	if err := ta.Put(alice, loanCA, 3.0); err != nil {
		log.Fatalf("put time: %v", err)
	}

	g.SetDebtCutFinder(solver.New(solver.WithVerbose(true)))

	const tEq = 5.0
	fmt.Print(g.Describe(tEq))

	dca, err := g.FindEquilibrialDebtCuts(tEq, ta)
	if err != nil {
		log.Fatalf("find equilibrial debt cuts: %v", err)
	}
	if dca.IsNoSolution() {
		log.Fatal("equilibrium system has no solution")
	}

	fmt.Printf("\ntotal forgiven: %.6g\n", dca.Sum())
	for _, name := range []string{"alice-to-bob", "bob-to-carol", "carol-to-alice"} {
		cut, _ := dca.Get(name)
		fmt.Printf("  %s: cut=%.6g\n", name, cut)
	}

	out, err := g.ApplyDebtCuts(dca, ta)
	if err != nil {
		log.Fatalf("apply debt cuts: %v", err)
	}

	ok, err := out.IsInEquilibriumAt(tEq)
	if err != nil {
		log.Fatalf("check equilibrium: %v", err)
	}
	fmt.Printf("\nin equilibrium at t=%.1f: %v\n", tEq, ok)
}
