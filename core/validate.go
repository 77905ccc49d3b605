// File: validate.go
// Role: debug-build structural validation (SPEC_FULL.md §7 supplement,
//       ported from the original implementation's assertion-heavy debug
//       builds without carrying over its build-tag gating): re-checks
//       invariants 1-5 listed in doc.go against the live arena state;
//       invariants 6 (canonical order) and 7 (trt) are not checked.
// AI-HINT (file):
//   - Intended for test harnesses and callers who just finished a batch
//     of mutations and want a cheap (O(nnodes+nedges)) sanity check
//     before trusting scores computed over the result.
package core

import "fmt"

// Validate re-derives invariants 1-5 of doc.go from the raw
// arena state and returns the first violation found, or nil if t is
// internally consistent. It does not mutate t.
//
// Complexity: O(nnodes + nedges).
func (t *Tree) Validate() error {
	if t.base == NodeID(None) {
		if len(t.nodes) == 0 {
			return nil
		}
		return fmt.Errorf("core: validate: base is None but arena has %d node slots", len(t.nodes))
	}
	if !t.nodes[t.base].used {
		return fmt.Errorf("core: validate: base node %d is not marked used", t.base)
	}

	seenNodes := map[NodeID]struct{}{}
	seenEdges := map[EdgeID]struct{}{}
	taxa := map[uint32]NodeID{}

	var walk func(n NodeID) error
	walk = func(n NodeID) error {
		if _, ok := seenNodes[n]; ok {
			return nil
		}
		seenNodes[n] = struct{}{}
		if !t.nodes[n].used {
			return fmt.Errorf("core: validate: reachable node %d is not marked used", n)
		}

		if tn := t.nodes[n].taxonNum; tn != None {
			if prior, dup := taxa[tn]; dup {
				return fmt.Errorf("core: validate: taxon %d borne by both node %d and node %d: %w", tn, prior, n, ErrTaxonMismatch)
			}
			taxa[tn] = n
		}

		degree := 0
		var ringErr error
		t.ringForEach(t.nodes[n].ringsHead, func(r RingID) bool {
			if t.rings[r].node != n {
				ringErr = fmt.Errorf("core: validate: ring %d claims node %d, reached via node %d's incidence list: %w", r, t.rings[r].node, n, ErrDegreeInvariant)
				return false
			}
			other := RingOther(r)
			if t.rings[other].node == NodeID(None) {
				ringErr = fmt.Errorf("core: validate: edge %d has one detached end while ring %d is attached: %w", RingToEdge(r), r, ErrDetached)
				return false
			}
			e := RingToEdge(r)
			if _, ok := seenEdges[e]; !ok {
				seenEdges[e] = struct{}{}
				if !t.edges[e].used {
					ringErr = fmt.Errorf("core: validate: edge %d is reachable but not marked used", e)
					return false
				}
			}
			degree++
			return true
		})
		if ringErr != nil {
			return ringErr
		}
		if degree == 1 && t.nodes[n].taxonNum == None {
			return fmt.Errorf("core: validate: degree-1 node %d bears no taxon: %w", n, ErrDegreeInvariant)
		}
		if degree == 2 {
			return fmt.Errorf("core: validate: node %d has degree 2, violating the no-degree-2-internal-node invariant: %w", n, ErrDegreeInvariant)
		}

		var walkErr error
		t.ringForEach(t.nodes[n].ringsHead, func(r RingID) bool {
			other := t.rings[RingOther(r)].node
			if other != NodeID(None) {
				if err := walk(other); err != nil {
					walkErr = err
					return false
				}
			}
			return true
		})
		return walkErr
	}
	if err := walk(t.base); err != nil {
		return err
	}

	wantNtaxa, wantNedges := len(taxa), len(seenEdges)
	if !t.modified {
		if t.ntaxa != wantNtaxa {
			return fmt.Errorf("core: validate: cached ntaxa %d disagrees with recount %d", t.ntaxa, wantNtaxa)
		}
		if t.nedges != wantNedges {
			return fmt.Errorf("core: validate: cached nedges %d disagrees with recount %d", t.nedges, wantNedges)
		}
	}
	return nil
}
