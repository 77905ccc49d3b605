// File: stress.go
// Role: classical multidimensional-scaling stress diagnostic, the
// supplemental feature SPEC_FULL.md §6 adds to give the teacher's linear
// algebra package a job: double-center the squared distance matrix,
// take the eigen decomposition's top components as an embedding, and
// report Kruskal's normalized stress-1 between the original and
// embedded distances — a statistic the neighbor-joining literature
// commonly reports alongside a built tree.
package distmatrix

import (
	"fmt"
	"math"
	"sort"
)

// Stress reports Kruskal's normalized stress-1 for the classical MDS
// embedding of m into opts' requested number of components (default 2).
// A value near 0 means the embedding reproduces m's distances well; 1.0
// or above means it does not.
//
// Complexity: O(maxIter * n^2) worst case (jacobiEigen dominates).
func Stress(m *Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts)
	n := m.n
	if n < 2 {
		return 0, nil
	}
	if err := m.Validate(WithTolerance(o.tolerance)); err != nil {
		return 0, fmt.Errorf("distmatrix.Stress: %w", err)
	}

	d2 := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			d2[i*n+j] = v * v
		}
	}

	rowMean := make([]float64, n)
	var grandMean float64
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += d2[i*n+j]
		}
		rowMean[i] = s / float64(n)
		grandMean += s
	}
	grandMean /= float64(n * n)

	b := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b[i*n+j] = -0.5 * (d2[i*n+j] - rowMean[i] - rowMean[j] + grandMean)
		}
	}

	eigvals, eigvecs, err := jacobiEigen(b, n, o.tolerance, o.maxIter)
	if err != nil {
		return 0, fmt.Errorf("distmatrix.Stress: %w", err)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, c int) bool { return eigvals[order[a]] > eigvals[order[c]] })

	k := o.components
	if k > n {
		k = n
	}
	coords := make([][]float64, n)
	for i := 0; i < n; i++ {
		coords[i] = make([]float64, k)
		for c := 0; c < k; c++ {
			lambda := eigvals[order[c]]
			if lambda <= 0 {
				continue
			}
			coords[i][c] = eigvecs[i*n+order[c]] * math.Sqrt(lambda)
		}
	}

	var num, den float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			orig := m.At(i, j)
			var sum float64
			for c := 0; c < k; c++ {
				diff := coords[i][c] - coords[j][c]
				sum += diff * diff
			}
			embedded := math.Sqrt(sum)
			delta := orig - embedded
			num += delta * delta
			den += orig * orig
		}
	}
	if den == 0 {
		return 0, nil
	}
	return math.Sqrt(num / den), nil
}
