// File: types.go
// Role: handle types (NodeID/EdgeID/RingID), sentinel value None, and the
//       raw Node/Edge/Ring record shapes stored in the arenas.
package core

import "math"

// None is the sentinel "no handle" value shared by NodeID, EdgeID, RingID
// and TaxonNum. It is math.MaxUint32, matching spec.md §6 ("NONE for
// node, edge, and ring handles is u32::MAX").
const None uint32 = math.MaxUint32

// NodeID addresses a slot in the node arena.
type NodeID uint32

// EdgeID addresses a slot in the edge arena; an edge is permanently
// paired with ring indices 2*EdgeID and 2*EdgeID+1.
type EdgeID uint32

// RingID addresses a slot in the ring arena.
type RingID uint32

// RingToEdge returns the edge that ring r is one half of.
//
// Complexity: O(1).
func RingToEdge(r RingID) EdgeID { return EdgeID(uint32(r) >> 1) }

// RingOther returns the other ring element of the same edge as r.
//
// Complexity: O(1).
func RingOther(r RingID) RingID { return RingID(uint32(r) ^ 1) }

// EdgeToRing returns the ring element at the given end (0 or 1) of edge e.
//
// Complexity: O(1).
func EdgeToRing(e EdgeID, end uint8) RingID {
	return RingID((uint32(e) << 1) | uint32(end&1))
}

// node is the raw arena record for one tree node.
//
// Free-list encoding: when a node slot is unallocated, RingsHead holds the
// index of the next spare node (or None), matching spec.md §3's "free-list
// encoding reuses the rings_head slot as a next-spare link".
type node struct {
	taxonNum  uint32 // None for internal nodes
	ringsHead RingID // first ring in this node's incidence list, or None
	aux       interface{}
	used      bool
}

// edge is the raw arena record for one tree edge. Its two ring halves live
// at ring indices 2*id and 2*id+1 in the ring arena.
type edge struct {
	length float64
	ps     *PS
	aux    interface{}
	used   bool
	link   EdgeID // free-list next-spare when !used
}

// ring is the raw arena record for one ring element ("one end of an edge
// as seen from the node it attaches to").
type ring struct {
	prev, next RingID
	node       NodeID // None iff the edge is detached at this end
	ps         *PS
}
