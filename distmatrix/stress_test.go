package distmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/phylocore/distmatrix"
)

func TestStress_ZeroForPlanarEmbeddableDistances(t *testing.T) {
	// Four points on a unit square are exactly embeddable in 2
	// dimensions, so stress should be ~0.
	m, err := distmatrix.FromRows([][]float64{
		{0, 1, 1, 1.4142135623730951},
		{1, 0, 1.4142135623730951, 1},
		{1, 1.4142135623730951, 0, 1},
		{1.4142135623730951, 1, 1, 0},
	})
	require.NoError(t, err)

	s, err := distmatrix.Stress(m)
	require.NoError(t, err)
	require.InDelta(t, 0, s, 1e-6)
}

func TestStress_TrivialForSinglePairOrLess(t *testing.T) {
	m, err := distmatrix.New(1)
	require.NoError(t, err)
	s, err := distmatrix.Stress(m)
	require.NoError(t, err)
	require.Equal(t, 0.0, s)
}

func TestStress_RejectsNegativeDistance(t *testing.T) {
	m, err := distmatrix.New(3)
	require.NoError(t, err)
	m.Set(0, 1, 1)
	m.Set(0, 2, 2)
	m.Set(1, 2, -1)
	_, err = distmatrix.Stress(m)
	require.ErrorIs(t, err, distmatrix.ErrNegativeDistance)
}
