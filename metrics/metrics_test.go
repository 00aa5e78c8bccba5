package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phat/metrics"
)

func TestSymmetricDifferenceCardinality(t *testing.T) {
	assert.Equal(t, 0, metrics.SymmetricDifferenceCardinality([]int{}, []int{}))
	assert.Equal(t, 0, metrics.SymmetricDifferenceCardinality([]int{1, 2, 2}, []int{2, 1}))
	assert.Equal(t, 2, metrics.SymmetricDifferenceCardinality([]string{"a", "b"}, []string{"b", "c"}))
	assert.Equal(t, 3, metrics.SymmetricDifferenceCardinality([]int{1, 2, 3}, nil))
}

func TestHausdorff(t *testing.T) {
	s := [][]float64{{0, 0}, {1, 0}}
	q := [][]float64{{0, 0}, {4, 0}}

	d, err := metrics.DirectedHausdorff(s, q)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-15)

	d, err = metrics.DirectedHausdorff(q, s)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-15)

	d, err = metrics.Hausdorff(s, q)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-15)

	d, err = metrics.Hausdorff(s, s)
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = metrics.Hausdorff([][]float64{{0, 0}}, [][]float64{{3, 4}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-15)
}

func TestHausdorff_Errors(t *testing.T) {
	_, err := metrics.Hausdorff(nil, [][]float64{{1}})
	require.ErrorIs(t, err, metrics.ErrEmptySet)

	_, err = metrics.DirectedHausdorff([][]float64{{1, 2}}, [][]float64{{1}})
	require.ErrorIs(t, err, metrics.ErrDimensionMismatch)
}
