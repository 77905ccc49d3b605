// Package tbrmp drives a tree bisection-reconnection search scored by
// Fitch parsimony (component I): it walks every neighbor a single TBR
// move can reach from a tree, scores each one, and retains the ones a
// hold policy selects into the tree's held-neighbor vector.
//
// Complexity:
//
//	– Time: O(TbrNNeighbors(t) * (ntaxa + nedges)) — each candidate is
//	  materialized on a duplicated tree and rescored from scratch via
//	  parsimony.ScoreTree, rather than the incremental per-bisection view
//	  reuse spec.md §4.I sketches. This trades the amortized O(1)
//	  per-neighbor update for a scorer whose correctness rests entirely on
//	  core.Tree.Tbr and parsimony.ScoreTree, both already exercised
//	  end-to-end by their own package tests.
//	– Space: O(ntaxa + nedges) per candidate (freed once scored).
//
// Errors (sentinel):
//
//	– ErrUnknownHow if a How value outside {Best, Better, All} is supplied.
//
// Concurrency: a *core.Tree is not safe for concurrent use; Run must not
// be called from more than one goroutine against the same tree. Run the
// same *core.Tree.Dup() on separate goroutines for parallel sweeps.
package tbrmp
