// File: tree.go
// Role: the Tree object (component C): owns the node/edge/ring arenas,
//       the distinguished base node, cached ntaxa/nedges, the TBR tables,
//       the held-neighbor vector, and the modified dirty flag. Every
//       public query routes through update(), which lazily refreshes the
//       cached counts and the TBR tables (spec.md §4.C); it does not
//       re-root the tree (Canonize does that).
package core

// Tree is the arena-backed representation of one unrooted multifurcating
// phylogenetic tree. A Tree is not safe for concurrent use; see doc.go.
type Tree struct {
	nodes []node
	edges []edge
	rings []ring

	freeNode NodeID
	freeEdge EdgeID

	base  NodeID
	ntaxa int
	nedges int

	modified bool
	aux      interface{}

	// TBR enumeration table (component E), rebuilt lazily by update().
	// bedges lists are regenerated on demand per row (spec.md §4.G step 2)
	// rather than cached, since a driver sweep visits each row once.
	trti []EdgeID // in-order edge list as walked from base
	trt  []trtRow // len(trti)+1; sentinel holds the total neighbor count

	held []Held
}

// trtRow is one row of the TBR enumeration table: "neighbors reachable by
// bisecting BisectEdge are numbered [Offset, next row's Offset)".
type trtRow struct {
	Offset     uint32
	BisectEdge EdgeID
}

// Held is a retained TBR-neighbor record kept by the tbrmp driver.
type Held struct {
	NeighborIndex uint32
	Score         uint32
}

// New returns an empty Tree (no nodes, no edges, Base == None).
//
// Complexity: O(1).
func New() *Tree {
	return &Tree{
		base:     NodeID(None),
		freeNode: NodeID(None),
		freeEdge: EdgeID(None),
	}
}

// Base returns the tree's distinguished base node, or None if empty.
func (t *Tree) Base() NodeID { return t.base }

// SetBase sets the tree's distinguished base node and marks the tree
// modified (the next query re-derives ntaxa/nedges/trt from the new base).
func (t *Tree) SetBase(n NodeID) {
	t.base = n
	t.modified = true
}

// Aux returns the tree-level opaque auxiliary handle.
func (t *Tree) Aux() interface{} { return t.aux }

// SetAux sets the tree-level opaque auxiliary handle.
func (t *Tree) SetAux(v interface{}) { t.aux = v }

// Ntaxa returns the number of taxon-bearing nodes reachable from Base,
// lazily recomputing it if the tree was modified since the last query.
//
// Complexity: amortized O(1); O(nedges) on the refresh that follows a
// mutation.
func (t *Tree) Ntaxa() int {
	t.update()
	return t.ntaxa
}

// Nedges returns the number of edges in the connected component reachable
// from Base, lazily recomputing it if needed.
func (t *Tree) Nedges() int {
	t.update()
	return t.nedges
}

// update is the single gate every public query routes through (spec.md
// §4.C): if the tree is modified, it recounts ntaxa/nedges from Base,
// rebuilds the TBR tables and clears the held vector. It neither
// canonicalizes nor moves Base; Canonize does that.
func (t *Tree) update() {
	if !t.modified {
		return
	}
	t.refreshCounts()
	t.rebuildTbrTables()
	t.held = t.held[:0]
	t.modified = false
}

// refreshCounts walks from Base tallying taxa and edges in the connected
// component, matching invariant 5 in doc.go.
func (t *Tree) refreshCounts() {
	t.ntaxa = 0
	t.nedges = 0
	if t.base == NodeID(None) || !t.nodes[t.base].used {
		return
	}
	seenEdges := make(map[EdgeID]struct{})
	seenNodes := make(map[NodeID]struct{})
	var walk func(n NodeID)
	walk = func(n NodeID) {
		if _, ok := seenNodes[n]; ok {
			return
		}
		seenNodes[n] = struct{}{}
		if t.nodes[n].taxonNum != None {
			t.ntaxa++
		}
		t.ringForEach(t.nodes[n].ringsHead, func(r RingID) bool {
			e := RingToEdge(r)
			if _, ok := seenEdges[e]; !ok {
				seenEdges[e] = struct{}{}
				t.nedges++
			}
			other := t.rings[RingOther(r)].node
			if other != NodeID(None) {
				walk(other)
			}
			return true
		})
	}
	walk(t.base)
}

// Delete frees the tree's own bookkeeping (arenas, TBR tables, held
// vector) and resets Base to None. The representation is non-owning
// over user-visible handles (spec.md §3 Lifecycle): callers must have
// already released every Node/Edge they allocated via Node.Delete /
// Edge.Delete before calling Delete, exactly as an arena cannot be torn
// down out from under live handles.
func (t *Tree) Delete() {
	t.nodes = nil
	t.edges = nil
	t.rings = nil
	t.trti = nil
	t.trt = nil
	t.held = nil
	t.base = NodeID(None)
}

// Dup returns a snapshot Tree sharing no mutable state with t (spec.md §5,
// §9 "tr_dup"): arenas, TBR tables and held state are deep-copied so the
// two trees can be mutated independently, including on different
// goroutines.
//
// Complexity: O(nnodes + nedges).
func (t *Tree) Dup() *Tree {
	d := &Tree{
		base:     t.base,
		ntaxa:    t.ntaxa,
		nedges:   t.nedges,
		modified: t.modified,
		freeNode: t.freeNode,
		freeEdge: t.freeEdge,
	}
	d.nodes = append([]node(nil), t.nodes...)
	d.edges = make([]edge, len(t.edges))
	for i, e := range t.edges {
		d.edges[i] = e
		if e.ps != nil {
			d.edges[i].ps = e.ps.clone()
		}
	}
	d.rings = make([]ring, len(t.rings))
	for i, r := range t.rings {
		d.rings[i] = r
		if r.ps != nil {
			d.rings[i].ps = r.ps.clone()
		}
	}
	d.trti = append([]EdgeID(nil), t.trti...)
	d.trt = append([]trtRow(nil), t.trt...)
	d.held = append([]Held(nil), t.held...)
	return d
}

// clone returns a deep copy of p (Parent is NOT copied: a cloned PS has no
// valid cache relationship to the clone's siblings until recomputed).
func (p *PS) clone() *PS {
	cp := &PS{Score: p.Score, SubtreesScore: p.SubtreesScore, nchars: p.nchars}
	cp.raw = append([]byte(nil), p.raw...)
	cp.Data = alignedSlice(cp.raw, len(p.Data))
	return cp
}
