package graph_test

import (
	"math"
	"testing"

	"github.com/finlib/debtcut/graph"
	"github.com/stretchr/testify/require"
)

func TestTimeAssignment_PutAndGet(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")
	c := mustContract(t, "loan", 100, 0, 0)

	ta := graph.NewTimeAssignment()
	require.NoError(t, ta.Put(alice, c, 3))

	got, err := ta.Get(alice, c)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
	require.Equal(t, 3.0, ta.GetMaximumTimestamp())
}

func TestTimeAssignment_Put_RejectsNonFinite(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")
	c := mustContract(t, "loan", 100, 0, 0)

	ta := graph.NewTimeAssignment()
	require.Error(t, ta.Put(alice, c, math.NaN()))
	require.Error(t, ta.Put(nil, c, 1))
}

func TestTimeAssignment_Get_MissingEntry(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")
	c := mustContract(t, "loan", 100, 0, 0)

	ta := graph.NewTimeAssignment()
	_, err := ta.Get(alice, c)
	require.ErrorIs(t, err, graph.ErrInvalidState)
}

func TestTimeAssignment_EnsureNode_DummyEntry(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")

	ta := graph.NewTimeAssignment()
	require.NoError(t, ta.EnsureNode(alice))
	require.True(t, ta.HasNode("alice"))
	require.False(t, ta.HasNode("bob"))
}

func TestTimeAssignment_MaxTimestamp_TracksLatest(t *testing.T) {
	g := graph.NewGraph("g")
	alice, _ := g.Add("alice")
	c1 := mustContract(t, "loan1", 100, 0, 0)
	c2 := mustContract(t, "loan2", 100, 0, 0)

	ta := graph.NewTimeAssignment()
	require.NoError(t, ta.Put(alice, c1, 5))
	require.NoError(t, ta.Put(alice, c2, 2))
	require.Equal(t, 5.0, ta.GetMaximumTimestamp())
}
