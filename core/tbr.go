// File: tbr.go
// Role: the TBR enumeration table (component E: trt/trti/bedges) and the
//       bisection/splice/reconnect mutation (component F), per spec.md
//       §4.F/§4.G. rebuildTbrTables is called lazily from Tree.update();
//       Tbr performs one rearrangement in place.
// AI-HINT (file):
//   - A bisection-adjacent node of (pre-bisect) degree 3 collapses into a
//     single merged edge; enumeration represents that merged position
//     with the edge id of the first remaining ring (see otherRingsFrom),
//     and Tbr's collapseDegree2 uses the identical anchor rule so the
//     enumerated neighbor index and the mutated topology agree.
//   - A bisection-adjacent node of degree >= 4 does not collapse; its own
//     incident edges are ordinary reconnection targets.
package core

import "sort"

// TbrNNeighbors returns the total number of distinct trees reachable from
// t by a single TBR rearrangement (spec.md §8 "TBR enumeration
// completeness": the sum, over every edge, of nbedgesA*nbedgesB - 1).
//
// Complexity: amortized O(1) (served from the lazily rebuilt trt table).
func (t *Tree) TbrNNeighbors() uint32 {
	t.update()
	if len(t.trt) == 0 {
		return 0
	}
	return t.trt[len(t.trt)-1].Offset
}

// TbrNeighbor decodes global neighbor index k into the (bisect,
// reconnectA, reconnectB) triple that Tbr would need to materialize it
// (spec.md §4.G). reconnectA/B are None when that side is a single node
// (the bisection edge reattaches directly to that node).
//
// Complexity: O(log nedges) for the binary search, O(nedges) to
// regenerate the bedges list for the located row.
func (t *Tree) TbrNeighbor(k uint32) (bisect, reconnectA, reconnectB EdgeID, err error) {
	t.update()
	total := t.TbrNNeighbors()
	if k >= total {
		return EdgeID(None), EdgeID(None), EdgeID(None), ErrNeighborRange
	}
	row := sort.Search(len(t.trt)-1, func(i int) bool { return t.trt[i+1].Offset > k })
	bisect = t.trt[row].BisectEdge
	edgesA, singleA, edgesB, _ := t.tbrBisectionEdges(bisect)
	_ = singleA
	nbedgesB := len(edgesB)

	rem := k - t.trt[row].Offset + 1
	ra := edgesA[rem/uint32(nbedgesB)]
	rb := edgesB[rem%uint32(nbedgesB)]
	return bisect, ra, rb, nil
}

// TbrBisectionEdges exposes, for a tbrmp driver sweep, the subtree edge
// lists bisecting edge e would produce, without mutating t (spec.md
// §4.I step 1-2: "generate bedges, note single_node_a/b").
//
// Complexity: O(nedges) for the subtree it walks.
func (t *Tree) TbrBisectionEdges(e EdgeID) (edgesA []EdgeID, singleA NodeID, edgesB []EdgeID, singleB NodeID, err error) {
	if !t.validEdge(e) {
		return nil, NodeID(None), nil, NodeID(None), ErrInvalidHandle
	}
	edgesA, singleA, edgesB, singleB = t.tbrBisectionEdges(e)
	return
}

// TrtRows returns, in the order a driver sweep should visit them, every
// bisection edge currently in the TBR enumeration table.
//
// Complexity: amortized O(1) (served from the lazily rebuilt trti list).
func (t *Tree) TrtRows() []EdgeID {
	t.update()
	return append([]EdgeID(nil), t.trti...)
}

// Held returns the currently retained TBR-neighbor records (spec.md §6
// "held_get"). The slice is the tree's own backing storage; callers must
// not retain it past the next mutating call.
func (t *Tree) Held() []Held {
	t.update()
	return t.held
}

// HeldFinish clears the held vector (spec.md §6 "held_finish").
func (t *Tree) HeldFinish() { t.held = t.held[:0] }

// AppendHeld appends a retained TBR-neighbor record; used by package
// tbrmp to populate Held() during a driver sweep.
func (t *Tree) AppendHeld(neighborIndex, score uint32) {
	t.held = append(t.held, Held{NeighborIndex: neighborIndex, Score: score})
}

// rebuildTbrTables regenerates trti (the in-order edge list reached by
// traversing from Base) and trt (the per-edge neighbor-count prefix sum),
// per spec.md §4.C steps (b)-(d).
func (t *Tree) rebuildTbrTables() {
	t.trti = t.trti[:0]
	if t.base == NodeID(None) || !t.nodes[t.base].used {
		t.trt = []trtRow{{Offset: 0, BisectEdge: EdgeID(None)}}
		return
	}
	seen := map[EdgeID]struct{}{}
	var walk func(n NodeID)
	walk = func(n NodeID) {
		t.ringForEach(t.nodes[n].ringsHead, func(r RingID) bool {
			e := RingToEdge(r)
			if _, ok := seen[e]; ok {
				return true
			}
			seen[e] = struct{}{}
			t.trti = append(t.trti, e)
			other := t.rings[RingOther(r)].node
			if other != NodeID(None) {
				walk(other)
			}
			return true
		})
	}
	walk(t.base)

	trt := make([]trtRow, 0, len(t.trti)+1)
	var offset uint32
	for _, e := range t.trti {
		trt = append(trt, trtRow{Offset: offset, BisectEdge: e})
		edgesA, _, edgesB, _ := t.tbrBisectionEdges(e)
		n := len(edgesA) * len(edgesB)
		if n > 0 {
			offset += uint32(n - 1)
		}
	}
	trt = append(trt, trtRow{Offset: offset, BisectEdge: EdgeID(None)})
	t.trt = trt
}

// tbrBisectionEdges materializes, without mutating t, the two subtree
// edge lists that bisecting edge e would produce (spec.md §4.G). Each
// side's list has exactly one EdgeID(None) sentinel entry when that side
// is a single node (the node is returned separately as singleA/singleB).
func (t *Tree) tbrBisectionEdges(e EdgeID) (edgesA []EdgeID, singleA NodeID, edgesB []EdgeID, singleB NodeID) {
	singleA, singleB = NodeID(None), NodeID(None)
	r0, r1 := EdgeToRing(e, 0), EdgeToRing(e, 1)
	edgesA, singleA = t.sideEdges(t.rings[r0].node, r0)
	edgesB, singleB = t.sideEdges(t.rings[r1].node, r1)
	return
}

// sideEdges returns the bedges list for the subtree attached at node n
// through bisectRing (the ring at n that belongs to the bisection edge).
func (t *Tree) sideEdges(n NodeID, bisectRing RingID) ([]EdgeID, NodeID) {
	others := t.otherRingsFrom(bisectRing)
	switch len(others) {
	case 0:
		// n is a leaf: this side is a single node.
		return []EdgeID{EdgeID(None)}, n
	case 2:
		// Degree-3 node adjacent to the bisection: it collapses into a
		// single merged position, represented by others[0]'s edge id.
		// Each collectBeyond list starts with the ring's own edge; both of
		// those edges vanish into the merged position, so only what lies
		// beyond them is listed.
		edges := []EdgeID{RingToEdge(others[0])}
		edges = append(edges, t.collectBeyond(others[0])[1:]...)
		edges = append(edges, t.collectBeyond(others[1])[1:]...)
		return edges, NodeID(None)
	default:
		// Degree >= 4: n persists; every incident edge is an ordinary
		// reconnection target.
		var edges []EdgeID
		for _, r := range others {
			edges = append(edges, t.collectBeyond(r)...)
		}
		return edges, NodeID(None)
	}
}

// otherRingsFrom returns the rings at anchor's node other than anchor
// itself, in next-order starting immediately after anchor. This exact
// ordering rule is what collapseDegree2 also uses, so enumeration and
// mutation agree on which ring represents the merged position.
func (t *Tree) otherRingsFrom(anchor RingID) []RingID {
	var out []RingID
	t.ringOthersForEach(anchor, func(r RingID) bool { out = append(out, r); return true })
	return out
}

// collectBeyond returns the in-order edge list reached through ring r:
// the edge r itself belongs to, followed (unless the far node is a leaf)
// by the lists reached through each of the far node's other rings.
func (t *Tree) collectBeyond(r RingID) []EdgeID {
	e := RingToEdge(r)
	far := RingOther(r)
	others := t.otherRingsFrom(far)
	out := []EdgeID{e}
	for _, rr := range others {
		out = append(out, t.collectBeyond(rr)...)
	}
	return out
}

// TbrBisectionViews exposes the same subtree position lists as
// TbrBisectionEdges, paired with the ring oriented into each position's
// subtree, so a driver can fetch that ring's Fitch view PS (via RingPS)
// directly without re-deriving orientation itself (spec.md §4.I step 2:
// "call views_recurse ... ps_a(j)"). edgesA[i]/ringsA[i] always name the
// same position; same for the B side.
//
// Complexity: O(nedges) for the subtree it walks.
func (t *Tree) TbrBisectionViews(e EdgeID) (edgesA []EdgeID, ringsA []RingID, singleA NodeID, edgesB []EdgeID, ringsB []RingID, singleB NodeID, err error) {
	if !t.validEdge(e) {
		return nil, nil, NodeID(None), nil, nil, NodeID(None), ErrInvalidHandle
	}
	r0, r1 := EdgeToRing(e, 0), EdgeToRing(e, 1)
	edgesA, ringsA, singleA = t.sideEdgesWithRings(t.rings[r0].node, r0)
	edgesB, ringsB, singleB = t.sideEdgesWithRings(t.rings[r1].node, r1)
	return
}

// sideEdgesWithRings is sideEdges, additionally returning the ring that
// reaches each listed edge, in lockstep.
func (t *Tree) sideEdgesWithRings(n NodeID, bisectRing RingID) ([]EdgeID, []RingID, NodeID) {
	others := t.otherRingsFrom(bisectRing)
	switch len(others) {
	case 0:
		return []EdgeID{EdgeID(None)}, []RingID{bisectRing}, n
	case 2:
		edges := []EdgeID{RingToEdge(others[0])}
		rings := []RingID{others[0]}
		e0, r0 := t.collectBeyondWithRings(others[0])
		edges, rings = append(edges, e0[1:]...), append(rings, r0[1:]...)
		e1, r1 := t.collectBeyondWithRings(others[1])
		edges, rings = append(edges, e1[1:]...), append(rings, r1[1:]...)
		return edges, rings, NodeID(None)
	default:
		var edges []EdgeID
		var rings []RingID
		for _, r := range others {
			e, rr := t.collectBeyondWithRings(r)
			edges, rings = append(edges, e...), append(rings, rr...)
		}
		return edges, rings, NodeID(None)
	}
}

// collectBeyondWithRings is collectBeyond, additionally returning the
// ring that reaches each listed edge, in lockstep.
func (t *Tree) collectBeyondWithRings(r RingID) ([]EdgeID, []RingID) {
	e := RingToEdge(r)
	far := RingOther(r)
	others := t.otherRingsFrom(far)
	edges, rings := []EdgeID{e}, []RingID{r}
	for _, rr := range others {
		e2, r2 := t.collectBeyondWithRings(rr)
		edges, rings = append(edges, e2...), append(rings, r2...)
	}
	return edges, rings
}

// Tbr performs one Tree Bisection and Reconnection rearrangement in
// place: detach bisect, simplify each endpoint, splice reconnectA/B (if
// not None) into a new node, then reattach bisect between the two
// resulting attachment nodes (spec.md §4.F).
//
// Complexity: O(1) for the mutation itself (the next query pays O(nedges)
// to refresh the TBR tables).
func (t *Tree) Tbr(bisect, reconnectA, reconnectB EdgeID) error {
	if !t.validEdge(bisect) {
		return ErrInvalidHandle
	}
	r0, r1 := EdgeToRing(bisect, 0), EdgeToRing(bisect, 1)
	if t.rings[r0].node == NodeID(None) {
		return ErrDetached
	}
	aEnd, bEnd := t.rings[r0].node, t.rings[r1].node

	// Precompute the collapse anchors before detaching bisect: once
	// detached, ringRemove resets the bisect rings to singletons and the
	// neighbor pointers needed to find "others" are lost.
	aOthers := t.otherRingsFrom(r0)
	bOthers := t.otherRingsFrom(r1)

	if err := t.Detach(bisect); err != nil {
		return err
	}

	var spare EdgeID = EdgeID(None)
	collapseIfNeeded := func(others []RingID) NodeID {
		if len(others) != 2 {
			return NodeID(None)
		}
		freed := t.collapseDegree2(others[0], others[1])
		spare = freed
		return NodeID(None)
	}
	aSingle := aEnd
	if len(aOthers) != 0 {
		aSingle = collapseIfNeeded(aOthers)
	}
	bSingle := bEnd
	if len(bOthers) != 0 {
		bSingle = collapseIfNeeded(bOthers)
	}

	attachA, err := t.spliceSide(reconnectA, aSingle, &spare)
	if err != nil {
		return err
	}
	attachB, err := t.spliceSide(reconnectB, bSingle, &spare)
	if err != nil {
		return err
	}

	if err := t.Attach(bisect, attachA, attachB); err != nil {
		return err
	}
	if spare != EdgeID(None) {
		_ = t.DeleteEdge(spare)
	}
	t.modified = true
	return nil
}

// spliceSide resolves one side of a Tbr call: if reconnect is None, the
// attachment node is the precomputed single node for that side (a leaf,
// or None if that side did not collapse and had no reconnect — a caller
// error); otherwise a new node is spliced into edge reconnect, reusing
// *spare if a collapse freed one.
func (t *Tree) spliceSide(reconnect EdgeID, single NodeID, spare *EdgeID) (NodeID, error) {
	if reconnect == EdgeID(None) {
		if single == NodeID(None) {
			return NodeID(None), ErrInvalidHandle
		}
		return single, nil
	}
	if !t.validEdge(reconnect) {
		return NodeID(None), ErrInvalidHandle
	}
	p, q := t.EdgeNode(reconnect, 0), t.EdgeNode(reconnect, 1)
	// reconnect's ring 0 already carries p's Fitch state (e.g. p's leaf
	// PS, if p is a leaf); ring 1 carries q's. Save q's before Detach so
	// it can be routed onto the ring that ends up facing q on e2 below —
	// Detach itself leaves both rings' ps fields untouched.
	qPS := t.RingPS(EdgeToRing(reconnect, 1))
	if err := t.Detach(reconnect); err != nil {
		return NodeID(None), err
	}
	x := t.allocNode()
	// p, not x, must land on ring 0 so the PS already sitting there stays
	// with p; x's ring (ring 1) still points at q's PS until it is given
	// its own below.
	if err := t.Attach(reconnect, p, x); err != nil {
		return NodeID(None), err
	}
	var e2 EdgeID
	if *spare != EdgeID(None) {
		e2 = *spare
		*spare = EdgeID(None)
	} else {
		e2 = t.allocEdge()
	}
	if err := t.Attach(e2, x, q); err != nil {
		return NodeID(None), err
	}
	t.SetRingPS(EdgeToRing(e2, 1), qPS)
	if qPS != nil {
		// x's two rings and e2 itself get PS storage of their own: scoring
		// writes into x's rings, and a fresh or recycled e2 carries none.
		t.SetRingPS(EdgeToRing(reconnect, 1), NewPS(qPS.nchars))
		t.SetRingPS(EdgeToRing(e2, 0), NewPS(qPS.nchars))
		t.SetEdgePS(e2, NewPS(qPS.nchars))
	}
	return x, nil
}

// collapseDegree2 merges node x's two remaining rings (r1, r2, given in
// the canonical otherRingsFrom order) into a single surviving edge
// connecting their far neighbors, frees x, and returns the discarded
// edge id (a spare the caller may reuse in a subsequent splice).
func (t *Tree) collapseDegree2(r1, r2 RingID) EdgeID {
	e2 := RingToEdge(r2)
	farRing := RingOther(r2)
	other2 := t.rings[farRing].node
	x := t.rings[r1].node

	// farRing carries other2's own state (its leaf PS, if other2 is a
	// leaf); that state must move onto r1, the ring that survives and
	// now attaches directly to other2 in farRing's place (spec.md §4.F
	// step 2: "leaf-ring PS vectors must stay with their leaves").
	farPS := t.RingPS(farRing)

	t.detachRing(r1)
	t.detachRing(r2)
	t.detachRing(farRing)
	t.attachRing(r1, other2)
	t.SetRingPS(r1, farPS)

	t.edges[e2].ps = nil
	t.rings[EdgeToRing(e2, 0)].ps = nil
	t.rings[EdgeToRing(e2, 1)].ps = nil
	t.freeNodeSlot(x)
	return e2
}
