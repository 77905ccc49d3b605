package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/phylocore/core"
)

func TestCanonizeMovesBaseToMinTaxonLeaf(t *testing.T) {
	tree := buildCaterpillar(t, []uint32{7, 3, 9, 1, 5})
	require.NoError(t, tree.Canonize())
	require.Equal(t, uint32(1), tree.TaxonNum(tree.Base()))
}

func TestCanonizeIsAFixedPoint(t *testing.T) {
	tree := buildCaterpillar(t, []uint32{7, 3, 9, 1, 5})
	require.NoError(t, tree.Canonize())
	first := canonicalTaxonOrder(t, tree)
	firstBase := tree.Base()

	require.NoError(t, tree.Canonize())
	require.Equal(t, firstBase, tree.Base())
	require.Equal(t, first, canonicalTaxonOrder(t, tree))
}

func TestCanonizeOnEmptyTreeErrors(t *testing.T) {
	tree := core.New()
	require.ErrorIs(t, tree.Canonize(), core.ErrEmptyTree)
}

func TestCanonizeAgreesAcrossEquivalentStartingBase(t *testing.T) {
	// Two trees with the same topology and taxon labels, but different
	// starting Base, must canonicalize to the same Base and the same
	// taxon visitation order.
	treeA := buildCaterpillar(t, []uint32{4, 2, 8, 6, 0})
	treeB := buildCaterpillar(t, []uint32{4, 2, 8, 6, 0})

	// Re-root treeB on one of its internal-adjacent leaves before
	// canonicalizing, to confirm Canonize doesn't depend on the
	// caller's chosen starting Base.
	treeB.SetBase(core.NodeID(2))

	require.NoError(t, treeA.Canonize())
	require.NoError(t, treeB.Canonize())

	require.Equal(t, treeA.TaxonNum(treeA.Base()), treeB.TaxonNum(treeB.Base()))
	require.Equal(t, canonicalTaxonOrder(t, treeA), canonicalTaxonOrder(t, treeB))
}
