// File: node.go
// Role: Node operations (component A/B wiring): New/Delete, taxon number
//       get/set, first-incident-edge lookup, degree, graph distance, aux.
// AI-HINT (file):
//   - A node with TaxonNum != None must have degree <= 1 (spec.md §3);
//     callers are responsible for this invariant (undefined behavior in
//     release builds per spec.md §7, not re-checked on every mutation).
package core

// NewNode allocates a fresh node with TaxonNum == None and degree 0.
//
// Complexity: amortized O(1).
func (t *Tree) NewNode() NodeID {
	return t.allocNode()
}

// DeleteNode releases node n. The node must have degree 0 (no incident
// rings); callers detach all incident edges first.
//
// Complexity: O(1).
func (t *Tree) DeleteNode(n NodeID) error {
	if !t.validNode(n) {
		return ErrInvalidHandle
	}
	if t.nodes[n].ringsHead != RingID(None) {
		return ErrAttached
	}
	t.freeNodeSlot(n)
	return nil
}

// TaxonNum returns the node's taxon number, or None for internal nodes.
func (t *Tree) TaxonNum(n NodeID) uint32 { return t.nodes[n].taxonNum }

// SetTaxonNum sets the node's taxon number (None clears it back to internal).
func (t *Tree) SetTaxonNum(n NodeID, taxon uint32) {
	t.nodes[n].taxonNum = taxon
	t.modified = true
}

// NodeAux returns the node's opaque auxiliary handle.
func (t *Tree) NodeAux(n NodeID) interface{} { return t.nodes[n].aux }

// SetNodeAux sets the node's opaque auxiliary handle.
func (t *Tree) SetNodeAux(n NodeID, v interface{}) { t.nodes[n].aux = v }

// NodeEdge returns the first incident ring of node n (None if degree 0).
// Combine with RingToEdge/RingOther to recover an (edge, end) pair.
func (t *Tree) NodeEdge(n NodeID) RingID { return t.nodes[n].ringsHead }

// Degree returns the number of edges incident to node n.
//
// Complexity: O(degree).
func (t *Tree) Degree(n NodeID) int {
	return t.ringDegree(t.nodes[n].ringsHead)
}

// Distance reports the graph distance (number of edges on the unique path)
// between nodes a and b, or -1 if they are not in the same connected
// component. It does not consult edge Length (parsimony ignores branch
// lengths; spec.md §1 Non-goals), it counts hops.
//
// Complexity: O(nnodes + nedges).
func (t *Tree) Distance(a, b NodeID) int {
	if a == b {
		return 0
	}
	type frame struct {
		n NodeID
		d int
	}
	seen := map[NodeID]struct{}{a: {}}
	queue := []frame{{a, 0}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		found := -1
		t.ringForEach(t.nodes[f.n].ringsHead, func(r RingID) bool {
			nb := t.rings[RingOther(r)].node
			if nb == NodeID(None) {
				return true
			}
			if nb == b {
				found = f.d + 1
				return false
			}
			if _, ok := seen[nb]; !ok {
				seen[nb] = struct{}{}
				queue = append(queue, frame{nb, f.d + 1})
			}
			return true
		})
		if found >= 0 {
			return found
		}
	}
	return -1
}

// validNode reports whether n addresses an allocated node slot.
func (t *Tree) validNode(n NodeID) bool {
	return n != NodeID(None) && int(n) < len(t.nodes) && t.nodes[n].used
}

// validEdge reports whether e addresses an allocated edge slot.
func (t *Tree) validEdge(e EdgeID) bool {
	return e != EdgeID(None) && int(e) < len(t.edges) && t.edges[e].used
}
