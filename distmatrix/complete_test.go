package distmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/phylocore/distmatrix"
)

func TestComplete_FillsGapViaIntermediate(t *testing.T) {
	m, err := distmatrix.FromRows([][]float64{
		{0, 1, math.Inf(1)},
		{1, 0, 1},
		{math.Inf(1), 1, 0},
	})
	require.NoError(t, err)

	require.NoError(t, distmatrix.Complete(m))
	require.Equal(t, 2.0, m.At(0, 2))
	require.Equal(t, 2.0, m.At(2, 0))
}

func TestComplete_LeavesCompleteMatrixUnchanged(t *testing.T) {
	m, err := distmatrix.FromRows([][]float64{
		{0, 2, 3},
		{2, 0, 4},
		{3, 4, 0},
	})
	require.NoError(t, err)

	before := m.Clone()
	require.NoError(t, distmatrix.Complete(m))
	for i := 0; i < m.N(); i++ {
		for j := 0; j < m.N(); j++ {
			require.Equal(t, before.At(i, j), m.At(i, j))
		}
	}
}

func TestComplete_DisconnectedReturnsErrIncomplete(t *testing.T) {
	m, err := distmatrix.FromRows([][]float64{
		{0, 1, math.Inf(1)},
		{1, 0, math.Inf(1)},
		{math.Inf(1), math.Inf(1), 0},
	})
	require.NoError(t, err)

	require.ErrorIs(t, distmatrix.Complete(m), distmatrix.ErrIncomplete)
}
