package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/phylocore/core"
)

func TestNewTreeIsEmpty(t *testing.T) {
	tree := core.New()
	require.Equal(t, core.NodeID(core.None), tree.Base())
	require.Equal(t, 0, tree.Ntaxa())
	require.Equal(t, 0, tree.Nedges())
}

func TestAttachDetachRoundTrip(t *testing.T) {
	tree := core.New()
	a := tree.NewNode()
	b := tree.NewNode()
	e := tree.NewEdge()

	require.NoError(t, tree.Attach(e, a, b))
	require.Equal(t, a, tree.EdgeNode(e, 0))
	require.Equal(t, b, tree.EdgeNode(e, 1))
	require.Equal(t, 1, tree.Degree(a))
	require.Equal(t, 1, tree.Degree(b))

	require.ErrorIs(t, tree.Attach(e, a, b), core.ErrAttached)

	require.NoError(t, tree.Detach(e))
	require.Equal(t, 0, tree.Degree(a))
	require.Equal(t, 0, tree.Degree(b))
	require.ErrorIs(t, tree.Detach(e), core.ErrDetached)
}

func TestAttachRejectsSameNode(t *testing.T) {
	tree := core.New()
	a := tree.NewNode()
	e := tree.NewEdge()
	require.ErrorIs(t, tree.Attach(e, a, a), core.ErrSameNode)
}

func TestDeleteRequiresDetached(t *testing.T) {
	tree := core.New()
	a := tree.NewNode()
	b := tree.NewNode()
	e := tree.NewEdge()
	require.NoError(t, tree.Attach(e, a, b))

	require.ErrorIs(t, tree.DeleteNode(a), core.ErrAttached)
	require.ErrorIs(t, tree.DeleteEdge(e), core.ErrAttached)

	require.NoError(t, tree.Detach(e))
	require.NoError(t, tree.DeleteEdge(e))
	require.NoError(t, tree.DeleteNode(a))
	require.NoError(t, tree.DeleteNode(b))
}

func TestRingOrderAroundAHub(t *testing.T) {
	tree := core.New()
	hub := tree.NewNode()
	spokes := make([]core.NodeID, 4)
	for i := range spokes {
		spokes[i] = tree.NewNode()
		newEdgeBetween(t, tree, hub, spokes[i])
	}
	require.Equal(t, 4, tree.Degree(hub))

	// Walking ringForEach's next-chain from the hub's head must visit
	// exactly the 4 spokes, each exactly once.
	seen := map[core.NodeID]bool{}
	head := tree.NodeEdge(hub)
	r := head
	for {
		other := tree.RingNode(core.RingOther(r))
		require.False(t, seen[other], "spoke visited twice")
		seen[other] = true
		r = tree.RingNext(r)
		if r == head {
			break
		}
	}
	require.Len(t, seen, 4)
}

func TestNtaxaNedgesCountOnlyBaseComponent(t *testing.T) {
	tree, _, _, _ := buildQuartet(t)
	require.Equal(t, 4, tree.Ntaxa())
	require.Equal(t, 5, tree.Nedges())
}

func TestDegreeOneRequiresTaxon(t *testing.T) {
	tree, _, b, _ := buildQuartet(t)
	require.NoError(t, tree.Validate())

	// A degree-1 node without a taxon number is rejected.
	bare := tree.NewNode()
	newEdgeBetween(t, tree, b, bare)
	require.ErrorIs(t, tree.Validate(), core.ErrDegreeInvariant)
}

func TestDistanceHopCount(t *testing.T) {
	tree, a, b, leaves := buildQuartet(t)
	require.Equal(t, 0, tree.Distance(leaves[0], leaves[0]))
	require.Equal(t, 1, tree.Distance(leaves[0], a))
	require.Equal(t, 2, tree.Distance(leaves[0], b))
	require.Equal(t, 3, tree.Distance(leaves[0], leaves[2]))
}

func TestDupIsIndependent(t *testing.T) {
	tree, a, _, _ := buildQuartet(t)
	dup := tree.Dup()

	require.Equal(t, tree.Ntaxa(), dup.Ntaxa())
	require.Equal(t, tree.Nedges(), dup.Nedges())

	// Mutating the original must not affect the duplicate.
	e := tree.NewEdge()
	extra := tree.NewNode()
	require.NoError(t, tree.Attach(e, a, extra))
	require.NotEqual(t, tree.Nedges(), dup.Nedges())
}

func TestValidateCatchesNothingOnAWellFormedTree(t *testing.T) {
	tree := buildCaterpillar(t, []uint32{3, 1, 4, 2, 5, 9})
	require.NoError(t, tree.Validate())
}
