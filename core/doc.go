// Package core implements the arena-backed representation of an unrooted
// multifurcating phylogenetic tree: Node/Edge/Ring handles over slab
// arenas, the intrusive ring lists that thread a node's incidence set,
// canonicalization, and the Tree Bisection and Reconnection (TBR)
// enumeration table and bisect/reconnect mechanics.
//
// Invariants (1-5 checked by Tree.Validate, maintained by every exported
// mutator whenever Tree.modified is false):
//
//  1. Every allocated edge is either fully detached (both ring Node
//     fields None, both rings singleton) or fully attached (both ring
//     Node fields set, each ring linked into its node's incidence list).
//  2. Node.RingsHead == None iff the node has degree 0; otherwise it
//     points into a ring whose Node field is that node.
//  3. For every ring r in a node's incidence list, RingOther(r)'s node
//     is the graph neighbor reached through r.
//  4. No node has degree 2 (Bisect/Splice collapse degree-2 nodes).
//  5. Ntaxa/Nedges count only the connected component reachable from Base.
//  6. After Canonize, Base is the minimum-taxon leaf, and every node's
//     ring order starts with the ring leading back to Base, the rest
//     ascending by minimum reachable taxon.
//  7. trt rows have non-decreasing Offset; the sentinel row holds the
//     total TBR neighbor count.
//
// Errors:
//
//	ErrDetached        - edge/ring operation required an attached edge.
//	ErrAttached        - edge/ring operation required a detached edge.
//	ErrSameNode        - Attach called with identical endpoints.
//	ErrInvalidHandle   - a NodeID/EdgeID/RingID is out of range or None.
//	ErrNeighborRange   - TbrNeighbor index is outside [0, TbrNNeighbors()).
//	ErrEmptyTree       - an operation requires Base set but the tree is empty.
//	ErrTaxonMismatch   - RobinsonFoulds compared trees over different taxon sets.
//
// Concurrency: a Tree is a single mutable aggregate; concurrent calls on
// the same Tree are undefined (spec.md §5). Use Tree.Dup to obtain an
// independent snapshot for use on another goroutine.
package core

import "errors"

// Sentinel errors for core tree/node/edge/ring operations.
var (
	// ErrDetached indicates an operation required an attached edge but found one detached.
	ErrDetached = errors.New("core: edge is detached")

	// ErrAttached indicates Attach was called on an edge that is already attached.
	ErrAttached = errors.New("core: edge is already attached")

	// ErrSameNode indicates Attach was called with identical endpoint nodes.
	ErrSameNode = errors.New("core: attach endpoints are identical")

	// ErrInvalidHandle indicates a NodeID/EdgeID/RingID argument is out of range or None.
	ErrInvalidHandle = errors.New("core: invalid handle")

	// ErrNeighborRange indicates a TBR neighbor index outside [0, TbrNNeighbors()).
	ErrNeighborRange = errors.New("core: tbr neighbor index out of range")

	// ErrEmptyTree indicates an operation requires a non-empty tree (Base set).
	ErrEmptyTree = errors.New("core: tree has no base node")

	// ErrTaxonMismatch indicates two trees being compared do not share a taxon set.
	ErrTaxonMismatch = errors.New("core: trees do not share a taxon set")

	// ErrDegreeInvariant indicates an internal-node degree invariant was broken (bug, not caller error).
	ErrDegreeInvariant = errors.New("core: degree invariant violated")
)
