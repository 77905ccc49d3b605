// Package parsimony implements Fitch parsimony scoring over a
// core.Tree: informative-column elimination and PS allocation
// (Prepare), the post-order/pre-order view computation that produces a
// valid Fitch state set at every directed ring (ScoreTree,
// ComputeViews), and the scalar and SIMD-fast-path scoring kernels that
// back both (pscoreWords/fscoreWords, and their pure-Go 64-bit-word
// counterparts pscoreWordsWide/fscoreWordsWide, used when
// cpufeature.Detect reports SIMD support).
//
// The package never holds Tree mutation methods: it reads and writes
// PS values through core's exported Ring/Edge PS accessors only, so
// scoring a tree never needs the tree to be structurally altered.
package parsimony

import "errors"

// Sentinel errors for parsimony preparation and scoring.
var (
	// ErrNotPrepared indicates ScoreTree/ComputeViews was called before Prepare.
	ErrNotPrepared = errors.New("parsimony: tree has not been prepared")

	// ErrSequenceLength indicates a taxon's sequence length does not match nchars.
	ErrSequenceLength = errors.New("parsimony: sequence length does not match nchars")

	// ErrUnknownTaxon indicates Prepare was given a sequence for a taxon number not present in the tree.
	ErrUnknownTaxon = errors.New("parsimony: sequence supplied for unknown taxon")

	// ErrHighDegree indicates score_recurse encountered a node of degree > 3 relative to its entry ring (spec.md §4.H "not implemented").
	ErrHighDegree = errors.New("parsimony: scoring does not support degree > 3 nodes")
)
