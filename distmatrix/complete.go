// File: complete.go
// Role: distance-matrix completion via dense Floyd-Warshall APSP,
// grounded on the teacher's matrix/impl_floydwarshall.go (same k->i->j
// loop order, same flat-buffer in-place relaxation), repurposed here to
// fill +Inf gaps a partial alignment's distance matrix can leave before
// njoin.Build runs (original_source/trunk/crux/src/CxTreeNj.c assumes a
// fully dense matrix, so a completion pass belongs ahead of it).
package distmatrix

import "math"

// Complete fills every +Inf entry of m in place with the shortest path
// over known finite entries, using the fixed k -> i -> j loop order the
// teacher's FloydWarshall uses for deterministic accumulation. Returns
// ErrIncomplete if any entry remains unreachable (the known-distance
// graph is disconnected).
//
// Complexity: O(n^3) time, O(1) extra space.
func Complete(m *Matrix) error {
	n := m.n
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, ij   float64
		cand         float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij {
					data[baseI+j] = cand
				}
			}
		}
	}

	for i = 0; i < n*n; i++ {
		if math.IsInf(data[i], 1) {
			return ErrIncomplete
		}
	}
	return nil
}
