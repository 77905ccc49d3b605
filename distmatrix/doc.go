// Package distmatrix represents a symmetric pairwise distance matrix,
// the input njoin.Build consumes. It is adapted from the teacher's
// matrix package: the same MatrixOptions-style functional-options shape,
// the same dense row-major flat storage, and the same Floyd-Warshall
// dense APSP routine, repurposed here as a distance-matrix *completion*
// pass (filling +Inf gaps a partial alignment can leave) rather than a
// graph shortest-path query.
//
// Complexity:
//
//	– Validate: O(n^2).
//	– Complete: O(n^3) time, O(1) extra space.
//	– Stress: O(maxIter * n^2) worst case (Jacobi eigen decomposition of
//	  the double-centered squared-distance matrix).
//
// Errors (sentinel): ErrDimensionMismatch, ErrNonZeroDiagonal,
// ErrNotSymmetric, ErrNegativeDistance, ErrIncomplete, ErrEigenFailed.
package distmatrix
