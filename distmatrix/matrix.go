package distmatrix

import (
	"fmt"
	"math"
)

// Matrix is a dense, symmetric n×n distance matrix stored row-major, in
// the same flat-slice-backed shape as the teacher's matrix.Dense.
type Matrix struct {
	n    int
	data []float64
}

// New allocates an n×n Matrix initialized to zero.
//
// Complexity: O(n^2).
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("distmatrix.New: size %d: %w", n, ErrDimensionMismatch)
	}
	return &Matrix{n: n, data: make([]float64, n*n)}, nil
}

// FromRows builds a Matrix from a square slice-of-slices and validates it
// (square, zero diagonal, symmetric within opts' tolerance, no negative
// finite entries). Missing pairwise distances may be represented as
// math.Inf(1); call Complete before Stress or handing the matrix to
// njoin.Build.
//
// Complexity: O(n^2).
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts)
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("distmatrix.FromRows: empty input: %w", ErrDimensionMismatch)
	}
	m := &Matrix{n: n, data: make([]float64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("distmatrix.FromRows: row %d has %d entries, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	if err := m.Validate(WithTolerance(o.tolerance)); err != nil {
		return nil, fmt.Errorf("distmatrix.FromRows: %w", err)
	}
	return m, nil
}

// N returns the matrix's taxon count (its row/column dimension).
//
// Complexity: O(1).
func (m *Matrix) N() int { return m.n }

// At returns the distance between i and j.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set writes the distance between i and j, keeping the matrix
// symmetric by writing both (i,j) and (j,i).
//
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// Clone returns a deep copy of m.
//
// Complexity: O(n^2).
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Matrix{n: m.n, data: cp}
}

// Validate checks that m has a zero diagonal, is symmetric within
// tolerance, and has no negative finite entries.
//
// Complexity: O(n^2).
func (m *Matrix) Validate(opts ...Option) error {
	o := gatherOptions(opts)
	for i := 0; i < m.n; i++ {
		if d := m.At(i, i); d != 0 {
			return fmt.Errorf("distmatrix.Validate: diagonal (%d,%d)=%g: %w", i, i, d, ErrNonZeroDiagonal)
		}
		for j := i + 1; j < m.n; j++ {
			a, b := m.At(i, j), m.At(j, i)
			if math.IsInf(a, 1) && math.IsInf(b, 1) {
				continue
			}
			if math.Abs(a-b) > o.tolerance {
				return fmt.Errorf("distmatrix.Validate: (%d,%d)=%g != (%d,%d)=%g: %w", i, j, a, j, i, b, ErrNotSymmetric)
			}
			if a < 0 || b < 0 {
				return fmt.Errorf("distmatrix.Validate: negative entry at (%d,%d): %w", i, j, ErrNegativeDistance)
			}
		}
	}
	return nil
}
