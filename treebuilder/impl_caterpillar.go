// impl_caterpillar.go - implementation of the Caterpillar(n) constructor,
// mirroring the teacher's builder/impl_path.go (a deterministic chain
// built in ascending index order) but retargeted to the classic unrooted
// "comb" topology: a path of internal nodes, each carrying one pendant
// leaf, with the final internal node carrying the last two leaves.
//
// Contract:
//   - n >= 3 (else ErrTooFewTaxa).
//   - Leaves are labeled TaxonNum 0..n-1 in ascending order.
//   - Every internal node has degree exactly 3 (n == 3 degenerates to a
//     single internal node, i.e. the same shape as Star(3)).
//   - Base is set to the first internal node.
//
// Complexity: O(n) nodes, O(n) edges.
package treebuilder

import (
	"fmt"

	"github.com/arborist-go/phylocore/core"
)

const minCaterpillarTaxa = 3

// Caterpillar returns a Constructor that builds a comb topology over n
// taxa: a path of internal nodes each bearing one leaf, except the last
// internal node which bears the final two leaves.
func Caterpillar(n int) Constructor {
	return func(t *core.Tree, cfg config) error {
		if n < minCaterpillarTaxa {
			return fmt.Errorf("treebuilder.Caterpillar: n=%d < min=%d: %w", n, minCaterpillarTaxa, ErrTooFewTaxa)
		}

		attachLeaf := func(internal core.NodeID, taxon int) error {
			leaf := t.NewNode()
			t.SetTaxonNum(leaf, uint32(taxon))
			e := t.NewEdge()
			if err := t.Attach(e, internal, leaf); err != nil {
				return fmt.Errorf("treebuilder.Caterpillar: Attach(internal, leaf %d): %w", taxon, err)
			}
			t.SetLength(e, cfg.lengthFn(cfg.rng))
			return nil
		}

		first := t.NewNode()
		if err := attachLeaf(first, 0); err != nil {
			return err
		}
		if err := attachLeaf(first, 1); err != nil {
			return err
		}

		prev := first
		// Internal nodes I_2..I_{n-2} each bear one pendant leaf and link
		// back to the previous internal node; the last one additionally
		// bears the final leaf instead of spawning a successor.
		for taxon := 2; taxon < n-1; taxon++ {
			cur := t.NewNode()
			e := t.NewEdge()
			if err := t.Attach(e, prev, cur); err != nil {
				return fmt.Errorf("treebuilder.Caterpillar: Attach(I, I): %w", err)
			}
			t.SetLength(e, cfg.lengthFn(cfg.rng))

			if err := attachLeaf(cur, taxon); err != nil {
				return err
			}
			prev = cur
		}

		if err := attachLeaf(prev, n-1); err != nil {
			return err
		}

		t.SetBase(first)
		return nil
	}
}
