package graph_test

import (
	"testing"

	"github.com/finlib/debtcut/contract"
	"github.com/finlib/debtcut/graph"
	"github.com/stretchr/testify/require"
)

func mustContract(t *testing.T, name string, principal, rate, ts float64) contract.Contract {
	t.Helper()
	c, err := contract.NewContinuous(name, principal, rate, ts)
	require.NoError(t, err)
	return c
}

func TestAddNode_DuplicateName(t *testing.T) {
	g := graph.NewGraph("g")
	_, err := g.Add("alice")
	require.NoError(t, err)
	_, err = g.Add("alice")
	require.Error(t, err)
}

func TestAddNode_AlreadyOwned(t *testing.T) {
	g1 := graph.NewGraph("g1")
	g2 := graph.NewGraph("g2")
	n := graph.NewNode("alice")
	require.NoError(t, g1.AddNode(n))
	require.Error(t, g2.AddNode(n))
}

func TestAddDebtor_SharedBundle(t *testing.T) {
	g := graph.NewGraph("g")
	alice, err := g.Add("alice")
	require.NoError(t, err)
	bob, err := g.Add("bob")
	require.NoError(t, err)

	c1 := mustContract(t, "loan1", 100, 0.1, 0)
	c2 := mustContract(t, "loan2", 50, 0.1, 0)
	require.NoError(t, alice.AddDebtor(bob, c1))
	require.NoError(t, alice.AddDebtor(bob, c2))

	require.Equal(t, 1, g.EdgeAmount())
	require.Equal(t, 2, g.ContractAmount())

	out := g.OutgoingContracts(alice)
	require.Len(t, out, 2)
	require.Equal(t, "loan1", out[0].Contract.Name())
	require.Equal(t, "loan2", out[1].Contract.Name())

	in := g.IncomingContracts(bob)
	require.Len(t, in, 2)
	require.Equal(t, "loan1", in[0].Contract.Name())
	require.Equal(t, alice.Name(), in[0].Lender.Name())
}

func TestEquity_BalancesOutAndIn(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")
	bob, _ := g.Add("bob")

	c := mustContract(t, "loan", 100, 0, 0)
	require.NoError(t, alice.AddDebtor(bob, c))

	eqAlice, err := alice.Equity(0)
	require.NoError(t, err)
	require.Equal(t, 100.0, eqAlice)

	eqBob, err := bob.Equity(0)
	require.NoError(t, err)
	require.Equal(t, -100.0, eqBob)
}

func TestIsInEquilibriumAt(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")
	bob, _ := g.Add("bob")

	c1 := mustContract(t, "loan1", 100, 0, 0)
	c2 := mustContract(t, "loan2", 100, 0, 0)
	require.NoError(t, alice.AddDebtor(bob, c1))
	require.NoError(t, bob.AddDebtor(alice, c2))

	ok, err := g.IsInEquilibriumAt(0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestClear_RemovesBothSidesOfBundle(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")
	bob, _ := g.Add("bob")
	c := mustContract(t, "loan", 100, 0, 0)
	require.NoError(t, alice.AddDebtor(bob, c))

	require.NoError(t, alice.Clear())
	require.Equal(t, 0, g.EdgeAmount())
	require.Equal(t, 0, g.ContractAmount())
	require.Empty(t, g.IncomingContracts(bob))
}

func TestRemove_UnknownNode(t *testing.T) {
	g := graph.NewGraph("g")
	require.ErrorIs(t, g.Remove("ghost"), graph.ErrNodeNotFound)
}

func TestNodes_OrderedByInsertion(t *testing.T) {
	g := graph.NewGraph("g")
	names := []string{"charlie", "alice", "bob"}
	for _, n := range names {
		_, err := g.Add(n)
		require.NoError(t, err)
	}
	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	for i, n := range nodes {
		require.Equal(t, names[i], n.Name())
	}
}

func TestFindEquilibrialDebtCuts_NoFinderInstalled(t *testing.T) {
	g := graph.NewGraph("g")
	_, err := g.FindEquilibrialDebtCuts(0, graph.NewTimeAssignment())
	require.ErrorIs(t, err, graph.ErrInvalidState)
}

type stubFinder struct {
	dca contract.DebtCutAssignment
	err error
}

func (s stubFinder) Compute(*graph.Graph, float64, *graph.TimeAssignment) (contract.DebtCutAssignment, error) {
	return s.dca, s.err
}

func TestFindEquilibrialDebtCuts_DelegatesToFinder(t *testing.T) {
	g := graph.NewGraph("g")
	want := contract.NewDebtCutAssignment(5)
	g.SetDebtCutFinder(stubFinder{dca: want})

	got, err := g.FindEquilibrialDebtCuts(5, graph.NewTimeAssignment())
	require.NoError(t, err)
	require.Equal(t, want.EquilibriumTime(), got.EquilibriumTime())
}

func TestApplyDebtCuts_OnlyAppliesKnownContracts(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")
	bob, _ := g.Add("bob")
	c1 := mustContract(t, "loan1", 100, 0, 0)
	c2 := mustContract(t, "loan2", 50, 0, 0)
	require.NoError(t, alice.AddDebtor(bob, c1))
	require.NoError(t, alice.AddDebtor(bob, c2))

	ta := graph.NewTimeAssignment()
	require.NoError(t, ta.Put(bob, c1, 1))
	require.NoError(t, ta.Put(bob, c2, 1))

	dca := contract.NewDebtCutAssignment(1)
	require.NoError(t, dca.Put("loan1", 20))

	out, err := g.ApplyDebtCuts(dca, ta)
	require.NoError(t, err)
	require.Equal(t, 1, out.ContractAmount())

	newAlice, err := out.GetByName("alice")
	require.NoError(t, err)
	outs := out.OutgoingContracts(newAlice)
	require.Len(t, outs, 1)
	require.Equal(t, 80.0, outs[0].Contract.Principal())
}
