package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/phylocore/core"
)

func TestTbrNeighborCountMatchesFormula(t *testing.T) {
	tree, _, _, _ := buildQuartet(t)

	var total uint32
	for _, e := range tree.TrtRows() {
		edgesA, _, edgesB, _, err := tree.TbrBisectionEdges(e)
		require.NoError(t, err)
		n := len(edgesA) * len(edgesB)
		require.Greater(t, n, 0)
		total += uint32(n - 1)
	}
	require.Equal(t, total, tree.TbrNNeighbors())
}

func TestTbrNeighborDecodeIsInRange(t *testing.T) {
	tree, _, _, _ := buildQuartet(t)
	total := tree.TbrNNeighbors()
	require.Greater(t, total, uint32(0))

	for k := uint32(0); k < total; k++ {
		bisect, _, _, err := tree.TbrNeighbor(k)
		require.NoError(t, err)
		require.NotEqual(t, core.EdgeID(core.None), bisect)
	}

	_, _, _, err := tree.TbrNeighbor(total)
	require.ErrorIs(t, err, core.ErrNeighborRange)
}

func TestTbrRearrangementPreservesStructuralInvariants(t *testing.T) {
	tree := buildCaterpillar(t, []uint32{0, 1, 2, 3, 4, 5})
	require.NoError(t, tree.Validate())

	total := tree.TbrNNeighbors()
	require.Greater(t, total, uint32(0))

	bisect, reconnectA, reconnectB, err := tree.TbrNeighbor(0)
	require.NoError(t, err)

	require.NoError(t, tree.Tbr(bisect, reconnectA, reconnectB))
	require.NoError(t, tree.Validate())
	require.Equal(t, 6, tree.Ntaxa())
	require.Equal(t, 9, tree.Nedges()) // 6 taxa, fully resolved unrooted: 2n-3 edges
}

func TestTbrOnInvalidEdgeErrors(t *testing.T) {
	tree, _, _, _ := buildQuartet(t)
	_, _, _, _, err := tree.TbrBisectionEdges(core.EdgeID(core.None))
	require.ErrorIs(t, err, core.ErrInvalidHandle)
}
