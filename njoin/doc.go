// Package njoin builds a starting topology from a distance matrix using
// relaxed neighbor joining, grounded directly on
// original_source/trunk/crux/src/CxTreeNj.c rather than invented: the
// same r/rScaled bookkeeping, the same Q-criterion minimization, the
// same xMin-slot-reuse/yMin-slot-compaction matrix shrink, and the same
// two-cluster direct join at the end. Its Go shape (single orchestrator
// function, functional options) follows the teacher's builder/api.go.
//
// Complexity: O(n^3) time (n-2 rounds, each an O(n^2) scan), O(n^2)
// space for the working distance matrix.
//
// Errors (sentinel): ErrTooFewTaxa, plus any distmatrix validation error
// wrapped from the input matrix.
package njoin
