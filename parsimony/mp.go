// File: mp.go
// Role: mp_finish (spec.md §6 external interface): releases every PS
//       this package allocated, so a caller that only needed one score
//       can drop the memory before the next Prepare.
package parsimony

import "github.com/arborist-go/phylocore/core"

// Finish releases every ring and edge PS reachable from Base (mp_finish).
//
// Complexity: O(nnodes + nedges).
func Finish(t *core.Tree) {
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
				t.SetEdgePS(e, nil)
			}
			t.SetRingPS(r, nil)
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
	if t.Base() != core.NodeID(core.None) {
		walk(t.Base())
	}
}
