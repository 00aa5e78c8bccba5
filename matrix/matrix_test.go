package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/phat/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromRows(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	// The input must not be retained.
	rows[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{0.5, 0.5}, {0.1, 0.9}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 7))
	v, _ := m.At(0, 0)
	require.Equal(t, 0.5, v)
}

func TestTranspose(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	rows, err := matrix.ToRows(tr)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, rows)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestHadamardWithTranspose(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{0.2, 0.8}, {0.4, 0.6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	h, err := matrix.Hadamard(m, tr)
	require.NoError(t, err)

	rows, _ := matrix.ToRows(h)
	require.InDelta(t, 0.04, rows[0][0], 1e-12)
	require.InDelta(t, 0.32, rows[0][1], 1e-12)
	require.InDelta(t, 0.32, rows[1][0], 1e-12)
	require.InDelta(t, 0.36, rows[1][1], 1e-12)

	other, _ := matrix.NewDense(3, 3)
	_, err = matrix.Hadamard(m, other)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestZeroDiagonal(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{0.5, 0.5}, {0.3, 0.7}})
	require.NoError(t, matrix.ZeroDiagonal(m))
	rows, _ := matrix.ToRows(m)
	require.Equal(t, [][]float64{{0, 0.5}, {0.3, 0}}, rows)

	rect, _ := matrix.NewDense(2, 3)
	require.ErrorIs(t, matrix.ZeroDiagonal(rect), matrix.ErrNonSquare)
}

func TestValidateFinite(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}, {0, 1}})
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)

	m, _ = matrix.NewDenseFromRows([][]float64{{1, 0}, {math.Inf(1), 1}})
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)

	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateFinite(nilDense), matrix.ErrNilMatrix)
}
