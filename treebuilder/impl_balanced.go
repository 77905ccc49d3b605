// impl_balanced.go - implementation of the Balanced(n) constructor,
// mirroring the teacher's builder/impl_platonic.go (a fixed, recursively
// defined combinatorial shape rather than a stochastic one) but
// retargeted to a balanced unrooted binary phylogenetic topology.
//
// Shape: recursively bisect the first n-1 taxa into two halves, joining
// each half at a new internal node, producing a balanced rooted binary
// tree of depth O(log n) over those n-1 taxa; the final taxon is then
// attached directly to the top of that recursion, turning what would
// otherwise be a degree-2 root into a degree-3 internal node (the
// standard rooted-to-unrooted conversion: spec.md invariant 4 forbids
// degree-2 nodes).
//
// Contract:
//   - n >= 3 (else ErrTooFewTaxa).
//   - Leaves are labeled TaxonNum 0..n-1 in ascending order.
//   - Base is set to the top-level hub node.
//
// Complexity: O(n) nodes, O(n) edges.
package treebuilder

import (
	"fmt"

	"github.com/arborist-go/phylocore/core"
)

const minBalancedTaxa = 3

// Balanced returns a Constructor that builds a balanced unrooted binary
// topology over n taxa.
func Balanced(n int) Constructor {
	return func(t *core.Tree, cfg config) error {
		if n < minBalancedTaxa {
			return fmt.Errorf("treebuilder.Balanced: n=%d < min=%d: %w", n, minBalancedTaxa, ErrTooFewTaxa)
		}

		var build func(lo, hi int) (core.NodeID, error)
		build = func(lo, hi int) (core.NodeID, error) {
			if hi-lo == 1 {
				leaf := t.NewNode()
				t.SetTaxonNum(leaf, uint32(lo))
				return leaf, nil
			}
			mid := lo + (hi-lo)/2
			left, err := build(lo, mid)
			if err != nil {
				return core.NodeID(core.None), err
			}
			right, err := build(mid, hi)
			if err != nil {
				return core.NodeID(core.None), err
			}

			hub := t.NewNode()
			eLeft := t.NewEdge()
			if err := t.Attach(eLeft, hub, left); err != nil {
				return core.NodeID(core.None), fmt.Errorf("treebuilder.Balanced: Attach(hub, left): %w", err)
			}
			t.SetLength(eLeft, cfg.lengthFn(cfg.rng))

			eRight := t.NewEdge()
			if err := t.Attach(eRight, hub, right); err != nil {
				return core.NodeID(core.None), fmt.Errorf("treebuilder.Balanced: Attach(hub, right): %w", err)
			}
			t.SetLength(eRight, cfg.lengthFn(cfg.rng))

			return hub, nil
		}

		hub, err := build(0, n-1)
		if err != nil {
			return err
		}

		last := t.NewNode()
		t.SetTaxonNum(last, uint32(n-1))
		e := t.NewEdge()
		if err := t.Attach(e, hub, last); err != nil {
			return fmt.Errorf("treebuilder.Balanced: Attach(hub, last leaf): %w", err)
		}
		t.SetLength(e, cfg.lengthFn(cfg.rng))

		t.SetBase(hub)
		return nil
	}
}
