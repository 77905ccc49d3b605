package distmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/phylocore/distmatrix"
)

func TestFromRows_ValidMatrix(t *testing.T) {
	m, err := distmatrix.FromRows([][]float64{
		{0, 2, 4},
		{2, 0, 6},
		{4, 6, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.N())
	require.Equal(t, 6.0, m.At(1, 2))
}

func TestFromRows_RejectsNonSquareRow(t *testing.T) {
	_, err := distmatrix.FromRows([][]float64{
		{0, 1},
		{1, 0, 5},
	})
	require.ErrorIs(t, err, distmatrix.ErrDimensionMismatch)
}

func TestFromRows_RejectsNonZeroDiagonal(t *testing.T) {
	_, err := distmatrix.FromRows([][]float64{
		{1, 2},
		{2, 0},
	})
	require.ErrorIs(t, err, distmatrix.ErrNonZeroDiagonal)
}

func TestFromRows_RejectsAsymmetry(t *testing.T) {
	_, err := distmatrix.FromRows([][]float64{
		{0, 2},
		{3, 0},
	})
	require.ErrorIs(t, err, distmatrix.ErrNotSymmetric)
}

func TestFromRows_RejectsNegativeDistance(t *testing.T) {
	_, err := distmatrix.FromRows([][]float64{
		{0, -1},
		{-1, 0},
	})
	require.ErrorIs(t, err, distmatrix.ErrNegativeDistance)
}

func TestFromRows_AllowsInfGaps(t *testing.T) {
	m, err := distmatrix.FromRows([][]float64{
		{0, math.Inf(1)},
		{math.Inf(1), 0},
	})
	require.NoError(t, err)
	require.True(t, math.IsInf(m.At(0, 1), 1))
}

func TestSet_KeepsSymmetry(t *testing.T) {
	m, err := distmatrix.New(2)
	require.NoError(t, err)
	m.Set(0, 1, 5)
	require.Equal(t, 5.0, m.At(0, 1))
	require.Equal(t, 5.0, m.At(1, 0))
}

func TestClone_IsIndependent(t *testing.T) {
	m, err := distmatrix.New(2)
	require.NoError(t, err)
	m.Set(0, 1, 5)
	cp := m.Clone()
	cp.Set(0, 1, 9)
	require.Equal(t, 5.0, m.At(0, 1))
	require.Equal(t, 9.0, cp.At(0, 1))
}
