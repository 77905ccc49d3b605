// impl_star.go - implementation of the Star(n) constructor, mirroring
// the teacher's builder/impl_star.go (a fixed hub plus n-1 deterministic
// spokes) but retargeted to an unrooted multifurcating phylogenetic
// topology: one internal hub node of degree n directly connects every
// taxon leaf.
//
// Contract:
//   - n >= 3 (else ErrTooFewTaxa; a hub of degree < 3 would violate the
//     "internal nodes have degree >= 3" shape this package promises).
//   - Leaves are labeled TaxonNum 0..n-1 in ascending order.
//   - Base is set to the hub node.
//
// Complexity: O(n) nodes, O(n) edges.
package treebuilder

import (
	"fmt"

	"github.com/arborist-go/phylocore/core"
)

const minStarTaxa = 3

// Star returns a Constructor that builds a star topology over n taxa: one
// internal hub connected directly to every leaf.
func Star(n int) Constructor {
	return func(t *core.Tree, cfg config) error {
		if n < minStarTaxa {
			return fmt.Errorf("treebuilder.Star: n=%d < min=%d: %w", n, minStarTaxa, ErrTooFewTaxa)
		}

		hub := t.NewNode()
		for i := 0; i < n; i++ {
			leaf := t.NewNode()
			t.SetTaxonNum(leaf, uint32(i))

			e := t.NewEdge()
			if err := t.Attach(e, hub, leaf); err != nil {
				return fmt.Errorf("treebuilder.Star: Attach(hub, leaf %d): %w", i, err)
			}
			t.SetLength(e, cfg.lengthFn(cfg.rng))
		}

		t.SetBase(hub)
		return nil
	}
}
