// impl_random_sparse.go - implementation of the RandomTree(n) constructor,
// mirroring the teacher's builder/impl_random_sparse.go (an RNG-driven
// generator gated by WithSeed/WithRand, returning ErrNeedRandSource when
// no source is resolved) but retargeted from Erdos-Renyi edge sampling to
// the stepwise random-addition-sequence construction used throughout
// phylogenetics to seed a starting tree for TBR search: begin from a
// 3-leaf star and, for each remaining taxon, splice it onto a uniformly
// chosen existing edge.
//
// Contract:
//   - n >= 3 (else ErrTooFewTaxa).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); unlike the
//     teacher's p-in-{0,1} degenerate cases, every taxon beyond the
//     first three requires a random edge choice, so there is no
//     RNG-free path.
//   - Leaves are labeled TaxonNum 0..n-1 in ascending order.
//   - Every internal node has degree exactly 3 (splicing a new leaf onto
//     an edge always adds exactly one new degree-3 node).
//
// Determinism: deterministic given a fixed cfg.rng/seed, since edges are
// tried in the stable order they were created.
//
// Complexity: O(n) nodes, O(n) edges.
package treebuilder

import (
	"fmt"

	"github.com/arborist-go/phylocore/core"
)

const minRandomTreeTaxa = 3

// RandomTree returns a Constructor that builds a tree over n taxa by
// random sequential addition: a 3-leaf star, then each further taxon
// spliced onto a uniformly chosen existing edge.
func RandomTree(n int) Constructor {
	return func(t *core.Tree, cfg config) error {
		if n < minRandomTreeTaxa {
			return fmt.Errorf("treebuilder.RandomTree: n=%d < min=%d: %w", n, minRandomTreeTaxa, ErrTooFewTaxa)
		}
		if cfg.rng == nil {
			return fmt.Errorf("treebuilder.RandomTree: %w", ErrNeedRandSource)
		}

		hub := t.NewNode()
		edges := make([]core.EdgeID, 0, 2*n-3)
		for i := 0; i < 3; i++ {
			leaf := t.NewNode()
			t.SetTaxonNum(leaf, uint32(i))
			e := t.NewEdge()
			if err := t.Attach(e, hub, leaf); err != nil {
				return fmt.Errorf("treebuilder.RandomTree: Attach(hub, leaf %d): %w", i, err)
			}
			t.SetLength(e, cfg.lengthFn(cfg.rng))
			edges = append(edges, e)
		}

		for taxon := 3; taxon < n; taxon++ {
			j := cfg.rng.Intn(len(edges))
			e := edges[j]

			a := t.EdgeNode(e, 0)
			b := t.EdgeNode(e, 1)
			if err := t.Detach(e); err != nil {
				return fmt.Errorf("treebuilder.RandomTree: Detach(splice edge): %w", err)
			}

			splice := t.NewNode()
			if err := t.Attach(e, a, splice); err != nil {
				return fmt.Errorf("treebuilder.RandomTree: Attach(a, splice): %w", err)
			}

			eb := t.NewEdge()
			if err := t.Attach(eb, splice, b); err != nil {
				return fmt.Errorf("treebuilder.RandomTree: Attach(splice, b): %w", err)
			}
			t.SetLength(eb, cfg.lengthFn(cfg.rng))

			leaf := t.NewNode()
			t.SetTaxonNum(leaf, uint32(taxon))
			el := t.NewEdge()
			if err := t.Attach(el, splice, leaf); err != nil {
				return fmt.Errorf("treebuilder.RandomTree: Attach(splice, leaf %d): %w", taxon, err)
			}
			t.SetLength(el, cfg.lengthFn(cfg.rng))

			edges[j] = e
			edges = append(edges, eb, el)
		}

		t.SetBase(hub)
		return nil
	}
}
