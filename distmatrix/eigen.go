// File: eigen.go
// Role: symmetric eigen decomposition via cyclic Jacobi rotation,
// adapted from the teacher's matrix/ops/eigen.go (identical pivot
// search, rotation, and Q-accumulation steps), rewritten against a flat
// row-major buffer instead of the teacher's Matrix interface since
// Stress has no use for the rest of that interface's surface.
package distmatrix

import "math"

// jacobiEigen computes the eigenvalues and eigenvectors (as columns of
// the returned flat n×n buffer) of the symmetric n×n matrix a.
//
// Complexity: O(n^2) per rotation (pivot search), O(maxIter*n^2) worst case.
func jacobiEigen(a []float64, n int, tol float64, maxIter int) ([]float64, []float64, error) {
	work := make([]float64, len(a))
	copy(work, a)
	q := make([]float64, n*n)
	for i := 0; i < n; i++ {
		q[i*n+i] = 1
	}

	var iter int
	for iter = 0; iter < maxIter; iter++ {
		p, pivotQ, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off := math.Abs(work[i*n+j])
				if off > maxOff {
					maxOff = off
					p, pivotQ = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app := work[p*n+p]
		aqq := work[pivotQ*n+pivotQ]
		apq := work[p*n+pivotQ]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i != p && i != pivotQ {
				aip := work[i*n+p]
				aiq := work[i*n+pivotQ]
				work[i*n+p] = c*aip - s*aiq
				work[p*n+i] = work[i*n+p]
				work[i*n+pivotQ] = s*aip + c*aiq
				work[pivotQ*n+i] = work[i*n+pivotQ]
			}
		}
		work[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		work[pivotQ*n+pivotQ] = s*s*app + 2*c*s*apq + c*c*aqq
		work[p*n+pivotQ] = 0
		work[pivotQ*n+p] = 0

		for i := 0; i < n; i++ {
			qip := q[i*n+p]
			qiq := q[i*n+pivotQ]
			q[i*n+p] = c*qip - s*qiq
			q[i*n+pivotQ] = s*qip + c*qiq
		}
	}
	if iter == maxIter {
		return nil, nil, ErrEigenFailed
	}

	eigvals := make([]float64, n)
	for i := 0; i < n; i++ {
		eigvals[i] = work[i*n+i]
	}
	return eigvals, q, nil
}
