// File: prepare.go
// Role: mp_prepare (spec.md §4.H step 1-3): informative-column
//       elimination, leaf PS population from taxon sequences, and
//       recursive PS allocation on every other ring/edge reached from
//       Base.
// Grounded on builder/api.go's "validate everything up front, return
// sentinel errors, no panics" contract.
package parsimony

import (
	"github.com/arborist-go/phylocore/core"
)

// Prepare allocates and populates the PS vectors a subsequent ScoreTree/
// ComputeViews call needs: it walks every taxon-bearing node reachable
// from t.Base(), requires a matching entry in sequences (by taxon
// number) of exactly nchars characters, optionally drops uninformative
// columns, and returns the number of informative characters actually
// allocated.
//
// Complexity: O(nleaves*nchars) to tally informativity, O(nnodes+nedges)
// to allocate PS everywhere else.
func Prepare(t *core.Tree, sequences map[uint32]string, nchars int, opts ...Option) (ninf int, err error) {
	o := gatherOptions(opts)

	if t.Base() == core.NodeID(core.None) {
		return 0, core.ErrEmptyTree
	}

	leaves, err := leafNodes(t)
	if err != nil {
		return 0, err
	}
	for _, n := range leaves {
		tn := t.TaxonNum(n)
		seq, ok := sequences[tn]
		if !ok {
			return 0, ErrUnknownTaxon
		}
		if len(seq) != nchars {
			return 0, ErrSequenceLength
		}
	}

	var columns []int
	if o.eliminateUninformative {
		columns = informativeColumns(leaves, sequences, t, nchars)
	} else {
		columns = make([]int, nchars)
		for i := range columns {
			columns[i] = i
		}
	}
	ninf = len(columns)

	for _, n := range leaves {
		tn := t.TaxonNum(n)
		seq := sequences[tn]
		ps := core.NewPS(ninf)
		for i, col := range columns {
			ps.SetChar(i, nucleotideCode(seq[col]))
		}
		r := t.NodeEdge(n)
		t.SetRingPS(r, ps)
	}

	allocateInterior(t, ninf)
	return ninf, nil
}

// leafNodes returns every node reachable from Base with TaxonNum != None.
func leafNodes(t *core.Tree) ([]core.NodeID, error) {
	var leaves []core.NodeID
	seen := map[core.NodeID]bool{}
	var walk func(n core.NodeID)
	walk = func(n core.NodeID) {
		if seen[n] {
			return
		}
		seen[n] = true
		if t.TaxonNum(n) != core.None {
			leaves = append(leaves, n)
		}
		head := t.NodeEdge(n)
		if head == core.RingID(core.None) {
			return
		}
		r := head
		for {
			other := t.RingNode(core.RingOther(r))
			if other != core.NodeID(core.None) {
				walk(other)
			}
			r = t.RingNext(r)
			if r == head {
				break
			}
		}
	}
	walk(t.Base())
	if len(leaves) == 0 {
		return nil, core.ErrEmptyTree
	}
	return leaves, nil
}

// informativeColumns returns the indices of every column that is
// informative under spec.md §4.H step 1: two distinct codes each occur
// at least twice with disjoint bit-masks.
func informativeColumns(leaves []core.NodeID, sequences map[uint32]string, t *core.Tree, nchars int) []int {
	var cols []int
	for col := 0; col < nchars; col++ {
		counts := map[byte]int{}
		for _, n := range leaves {
			seq := sequences[t.TaxonNum(n)]
			counts[nucleotideCode(seq[col])]++
		}
		if columnIsInformative(counts) {
			cols = append(cols, col)
		}
	}
	return cols
}

// columnIsInformative applies spec.md §4.H step 1's test directly: at
// least two distinct codes each occurring >= 2 times, with pairwise
// disjoint bit-masks (so an ambiguity code that overlaps a pure code
// does not, by itself, make the column informative).
func columnIsInformative(counts map[byte]int) bool {
	var frequent []byte
	for code, n := range counts {
		if n >= 2 {
			frequent = append(frequent, code)
		}
	}
	for i := 0; i < len(frequent); i++ {
		for j := i + 1; j < len(frequent); j++ {
			if frequent[i]&frequent[j] == 0 {
				return true
			}
		}
	}
	return false
}

// allocateInterior walks every ring and edge reached from Base that
// does not already carry a PS (leaves were populated by the caller) and
// gives it a fresh zeroed PS of ninf characters, ready for score_recurse
// to fill in.
func allocateInterior(t *core.Tree, ninf int) {
	seenNodes := map[core.NodeID]bool{}
	seenEdges := map[core.EdgeID]bool{}
	var walk func(n core.NodeID)
	walk = func(n core.NodeID) {
		if seenNodes[n] {
			return
		}
		seenNodes[n] = true
		head := t.NodeEdge(n)
		if head == core.RingID(core.None) {
			return
		}
		r := head
		for {
			e := core.RingToEdge(r)
			if !seenEdges[e] {
				seenEdges[e] = true
				t.SetEdgePS(e, core.NewPS(ninf))
			}
			if t.RingPS(r) == nil {
				t.SetRingPS(r, core.NewPS(ninf))
			}
			other := t.RingNode(core.RingOther(r))
			if other != core.NodeID(core.None) {
				walk(other)
			}
			r = t.RingNext(r)
			if r == head {
				break
			}
		}
	}
	walk(t.Base())
}
