// Package phylocore (arborist-go/phylocore) is an in-memory engine for
// unrooted multifurcating phylogenetic trees: an arena-backed node/edge/
// ring representation, Fitch parsimony scoring, and systematic Tree
// Bisection and Reconnection (TBR) enumeration.
//
// What is phylocore?
//
//	A single-threaded-per-tree, zero-cgo library that brings together:
//
//	  - core        — arena-backed Node/Edge/Ring handles, canonicalization,
//	    the TBR enumeration table and bisect/reconnect mechanics
//	  - parsimony   — packed-nibble Fitch state sets, scalar and SIMD-gated
//	    scoring, view caching for O(1) re-rooting
//	  - tbrmp       — the TBR-MP driver: enumerate every one-step neighbor of
//	    a tree and hold the best/better/all under a score cap
//	  - distmatrix  — symmetric distance matrices, APSP gap-filling, MDS stress
//	  - njoin       — relaxed neighbor-joining tree construction from a distance matrix
//	  - treebuilder — canonical starting topologies (star, caterpillar, balanced, random)
//	  - cpufeature  — a process-wide, once-detected SIMD availability flag
//
// Why phylocore?
//
//   - Deterministic    — canonicalization gives every unrooted topology one
//     canonical ring ordering; TBR enumeration order is reproducible.
//   - Arena-backed     — nodes, edges and rings are slab-allocated and index-
//     addressed; no pointer graphs, no GC pressure during a TBR sweep.
//   - Correct by construction — every structural edit is required to leave
//     the seven invariants in core/doc.go intact; degree-2 internal nodes
//     cannot exist outside of a bisection in progress.
//
// Quick ASCII example, an unrooted 4-taxon tree:
//
//	0   2
//	 \ /
//	  *
//	 / \
//	1   3
//
// has 5 edges; bisecting either pendant edge of taxon 0 or 1 reaches 2
// distinct TBR neighbors, while bisecting the internal edge reaches none
// (both resulting subtrees collapse to a single edge, so the only
// reconnection is the identity, which enumeration always excludes).
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// requirements this module implements and the grounding for each part.
//
//	go get github.com/arborist-go/phylocore
package phylocore
