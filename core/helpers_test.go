package core_test

import (
	"testing"

	"github.com/arborist-go/phylocore/core"
)

// newEdgeBetween allocates a fresh edge and attaches it between a and b,
// failing the test immediately on any error.
func newEdgeBetween(t *testing.T, tree *core.Tree, a, b core.NodeID) core.EdgeID {
	t.Helper()
	e := tree.NewEdge()
	if err := tree.Attach(e, a, b); err != nil {
		t.Fatalf("attach %d-%d: %v", a, b, err)
	}
	return e
}

// buildQuartet builds the single resolved unrooted topology on 4 taxa:
// (0,1) on one side of the internal edge, (2,3) on the other.
//
//	0   2
//	 \ /
//	  A--B
//	 / \
//	1   3
func buildQuartet(t *testing.T) (tree *core.Tree, a, b core.NodeID, leaves [4]core.NodeID) {
	t.Helper()
	tree = core.New()
	leaves[0] = tree.NewNode()
	leaves[1] = tree.NewNode()
	leaves[2] = tree.NewNode()
	leaves[3] = tree.NewNode()
	a = tree.NewNode()
	b = tree.NewNode()
	tree.SetTaxonNum(leaves[0], 0)
	tree.SetTaxonNum(leaves[1], 1)
	tree.SetTaxonNum(leaves[2], 2)
	tree.SetTaxonNum(leaves[3], 3)

	newEdgeBetween(t, tree, a, leaves[0])
	newEdgeBetween(t, tree, a, leaves[1])
	newEdgeBetween(t, tree, b, leaves[2])
	newEdgeBetween(t, tree, b, leaves[3])
	newEdgeBetween(t, tree, a, b)

	tree.SetBase(leaves[0])
	return tree, a, b, leaves
}

// buildCaterpillar builds an unrooted caterpillar on n taxa (n >= 3):
// leaf0 and leaf1 hang off the first internal node, every subsequent
// leaf hangs off a new internal node chained to the previous one.
func buildCaterpillar(t *testing.T, taxa []uint32) *core.Tree {
	t.Helper()
	if len(taxa) < 3 {
		t.Fatalf("buildCaterpillar needs at least 3 taxa")
	}
	tree := core.New()
	leaves := make([]core.NodeID, len(taxa))
	for i, tn := range taxa {
		leaves[i] = tree.NewNode()
		tree.SetTaxonNum(leaves[i], tn)
	}
	internals := make([]core.NodeID, len(taxa)-2)
	for i := range internals {
		internals[i] = tree.NewNode()
	}

	newEdgeBetween(t, tree, internals[0], leaves[0])
	newEdgeBetween(t, tree, internals[0], leaves[1])
	for i := 1; i < len(internals); i++ {
		newEdgeBetween(t, tree, internals[i-1], internals[i])
		newEdgeBetween(t, tree, internals[i], leaves[i+1])
	}
	last := len(leaves) - 1
	newEdgeBetween(t, tree, internals[len(internals)-1], leaves[last])

	tree.SetBase(leaves[0])
	return tree
}

// canonicalTaxonOrder walks t from Base, always following the incidence
// ring in next-order, and records the taxon numbers of every leaf in the
// order visited. Used to detect whether Canonize produced a stable order.
func canonicalTaxonOrder(t *testing.T, tree *core.Tree) []uint32 {
	t.Helper()
	var order []uint32
	seen := map[core.NodeID]bool{}
	var walk func(n core.NodeID, enter core.RingID)
	walk = func(n core.NodeID, enter core.RingID) {
		if seen[n] {
			return
		}
		seen[n] = true
		if tn := tree.TaxonNum(n); tn != core.None {
			order = append(order, tn)
		}
		head := tree.NodeEdge(n)
		if head == core.RingID(core.None) {
			return
		}
		r := head
		for {
			if r != enter {
				other := tree.RingNode(core.RingOther(r))
				if other != core.NodeID(core.None) {
					walk(other, core.RingOther(r))
				}
			}
			r = tree.RingNext(r)
			if r == head {
				break
			}
		}
	}
	walk(tree.Base(), core.RingID(core.None))
	return order
}
