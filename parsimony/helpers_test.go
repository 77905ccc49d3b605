package parsimony_test

import (
	"testing"

	"github.com/arborist-go/phylocore/core"
)

// buildQuartet builds the unrooted topology ((0,1),(2,3)): leaves 0 and 1
// hang off internal node a, leaves 2 and 3 off internal node b, a-b is
// the single internal edge.
func buildQuartet(t *testing.T) *core.Tree {
	t.Helper()
	tree := core.New()
	l0 := tree.NewNode()
	l1 := tree.NewNode()
	l2 := tree.NewNode()
	l3 := tree.NewNode()
	a := tree.NewNode()
	b := tree.NewNode()
	tree.SetTaxonNum(l0, 0)
	tree.SetTaxonNum(l1, 1)
	tree.SetTaxonNum(l2, 2)
	tree.SetTaxonNum(l3, 3)

	attach := func(x, y core.NodeID) {
		e := tree.NewEdge()
		if err := tree.Attach(e, x, y); err != nil {
			t.Fatalf("attach: %v", err)
		}
	}
	attach(a, l0)
	attach(a, l1)
	attach(b, l2)
	attach(b, l3)
	attach(a, b)

	tree.SetBase(l0)
	return tree
}
