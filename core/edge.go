// File: edge.go
// Role: Edge operations (component A/B/F wiring): New/Delete, Attach/
//       Detach, Node/Next/Prev at an end, Length get/set, Aux.
// Steps (Attach):
//  1. Require e fully detached (ErrAttached otherwise).
//  2. Require a != b (ErrSameNode).
//  3. Insert ring 2e at the tail of a's incidence list, ring.node = a.
//  4. Insert ring 2e+1 at the tail of b's incidence list, ring.node = b.
//  5. Mark tree modified.
// Complexity: O(1). Concurrency: none (see package doc).
package core

// NewEdge allocates a fresh, fully detached edge (both rings singleton,
// Node == None).
//
// Complexity: amortized O(1).
func (t *Tree) NewEdge() EdgeID {
	return t.allocEdge()
}

// DeleteEdge releases edge e. Both ends must already be detached; per-ring
// PS is released along with the slot.
//
// Complexity: O(1).
func (t *Tree) DeleteEdge(e EdgeID) error {
	if !t.validEdge(e) {
		return ErrInvalidHandle
	}
	r0, r1 := EdgeToRing(e, 0), EdgeToRing(e, 1)
	if t.rings[r0].node != NodeID(None) || t.rings[r1].node != NodeID(None) {
		return ErrAttached
	}
	t.rings[r0].ps = nil
	t.rings[r1].ps = nil
	t.edges[e].ps = nil
	t.freeEdgeSlot(e)
	return nil
}

// Attach connects detached edge e between nodes a and b. a and b must be
// distinct nodes; e must be fully detached.
//
// Complexity: O(1).
func (t *Tree) Attach(e EdgeID, a, b NodeID) error {
	if !t.validEdge(e) || !t.validNode(a) || !t.validNode(b) {
		return ErrInvalidHandle
	}
	if a == b {
		return ErrSameNode
	}
	r0, r1 := EdgeToRing(e, 0), EdgeToRing(e, 1)
	if t.rings[r0].node != NodeID(None) || t.rings[r1].node != NodeID(None) {
		return ErrAttached
	}

	t.attachRing(r0, a)
	t.attachRing(r1, b)
	t.modified = true
	return nil
}

// attachRing links ring r into node n's incidence list, appending at the
// tail, and sets r's node field.
func (t *Tree) attachRing(r RingID, n NodeID) {
	t.rings[r].node = n
	head := t.nodes[n].ringsHead
	if head == RingID(None) {
		t.ringInit(r)
		t.nodes[n].ringsHead = r
		return
	}
	t.ringInsertBefore(head, r) // tail == just before head in a circular list
}

// Detach removes edge e from its two endpoint nodes' incidence lists,
// leaving it fully detached. Both ring Node fields become None.
//
// Complexity: O(1).
func (t *Tree) Detach(e EdgeID) error {
	if !t.validEdge(e) {
		return ErrInvalidHandle
	}
	r0, r1 := EdgeToRing(e, 0), EdgeToRing(e, 1)
	if t.rings[r0].node == NodeID(None) {
		return ErrDetached
	}
	t.detachRing(r0)
	t.detachRing(r1)
	t.modified = true
	return nil
}

// detachRing unlinks ring r from its node's incidence list, updating the
// node's head pointer if r was it, and clears r's node field.
func (t *Tree) detachRing(r RingID) {
	n := t.rings[r].node
	if n == NodeID(None) {
		return
	}
	if t.nodes[n].ringsHead == r {
		next := t.rings[r].next
		if next == r {
			t.nodes[n].ringsHead = RingID(None)
		} else {
			t.nodes[n].ringsHead = next
		}
	}
	t.ringRemove(r)
	t.rings[r].node = NodeID(None)
}

// EdgeNode returns the node attached at end (0 or 1) of edge e, or None.
func (t *Tree) EdgeNode(e EdgeID, end uint8) NodeID {
	return t.rings[EdgeToRing(e, end)].node
}

// EdgeNext returns the next ring, in incidence order, after end (0 or 1)
// of edge e, within that end's node's incidence list.
func (t *Tree) EdgeNext(e EdgeID, end uint8) RingID {
	return t.rings[EdgeToRing(e, end)].next
}

// EdgePrev returns the previous ring, in incidence order, before end (0
// or 1) of edge e, within that end's node's incidence list.
func (t *Tree) EdgePrev(e EdgeID, end uint8) RingID {
	return t.rings[EdgeToRing(e, end)].prev
}

// Length returns edge e's branch length. Parsimony scoring ignores this
// value (spec.md §1 Non-goals); it is carried for collaborators that do
// care about branch lengths (e.g. a likelihood engine, excluded here).
func (t *Tree) Length(e EdgeID) float64 { return t.edges[e].length }

// SetLength sets edge e's branch length.
func (t *Tree) SetLength(e EdgeID, length float64) { t.edges[e].length = length }

// EdgeAux returns edge e's opaque auxiliary handle.
func (t *Tree) EdgeAux(e EdgeID) interface{} { return t.edges[e].aux }

// SetEdgeAux sets edge e's opaque auxiliary handle.
func (t *Tree) SetEdgeAux(e EdgeID, v interface{}) { t.edges[e].aux = v }

// RingNode returns the node ring r is attached to, or None if detached.
func (t *Tree) RingNode(r RingID) NodeID { return t.rings[r].node }

// RingNext returns the next ring after r in its node's incidence list.
func (t *Tree) RingNext(r RingID) RingID { return t.rings[r].next }

// RingPrev returns the previous ring before r in its node's incidence list.
func (t *Tree) RingPrev(r RingID) RingID { return t.rings[r].prev }
