// Package treebuilder assembles canonical starting topologies directly
// over core.Tree: star, caterpillar (comb), balanced and a random
// sequential-addition tree. It keeps the teacher's builder/api.go and
// builder/config.go shape (Constructor closures resolved against a
// functional-options config by a single orchestrator) but retargets
// every Constructor from core.Graph's string-keyed vertices to
// core.Tree's arena-backed NodeID/EdgeID, since these fixtures exist to
// seed parsimony scoring and TBR search rather than to model a generic
// graph.
//
// Complexity: each topology factory is documented individually; all are
// linear or near-linear in the number of taxa.
//
// Errors (sentinel): ErrTooFewTaxa, ErrNeedRandSource, ErrConstructFailed.
package treebuilder
