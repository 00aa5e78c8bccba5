package markov_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phat/markov"
	"github.com/katalvlaran/phat/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestValidateTransitionMatrix(t *testing.T) {
	tol := markov.DefaultTolerance

	ok := dense(t, [][]float64{{0.1, 0.2, 0.7}, {0.3, 0.3, 0.4}, {0, 0, 1}})
	require.NoError(t, markov.ValidateTransitionMatrix(ok, tol))
	require.True(t, markov.IsTransitionMatrix(ok, tol))

	badSum := dense(t, [][]float64{{0.5, 0.4}, {0.5, 0.5}})
	require.ErrorIs(t, markov.ValidateTransitionMatrix(badSum, tol), markov.ErrNotStochastic)

	negative := dense(t, [][]float64{{1.5, -0.5}, {0.5, 0.5}})
	require.ErrorIs(t, markov.ValidateTransitionMatrix(negative, tol), markov.ErrNotStochastic)

	rect := dense(t, [][]float64{{0.5, 0.5, 0}})
	require.ErrorIs(t, markov.ValidateTransitionMatrix(rect, tol), matrix.ErrNonSquare)

	nan := dense(t, [][]float64{{math.NaN(), 1}, {0.5, 0.5}})
	require.ErrorIs(t, markov.ValidateTransitionMatrix(nan, tol), matrix.ErrNaNInf)

	require.ErrorIs(t, markov.ValidateTransitionMatrix(nil, tol), matrix.ErrNilMatrix)
	require.ErrorIs(t, markov.ValidateTransitionMatrix(ok, -1), markov.ErrBadTolerance)
}

func TestSupportGraph(t *testing.T) {
	T := dense(t, [][]float64{{0.5, 0.5, 0}, {0.25, 0.5, 0.25}, {0, 0, 1}})
	g, err := markov.SupportGraph(T)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, g.Vertices())
	require.Equal(t, 3, g.EdgeCount())
	require.False(t, g.HasEdge(0, 0), "diagonal never becomes an edge")
	require.False(t, g.HasEdge(2, 1))
	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	require.Equal(t, 0.25, w)
}

func TestStationaryDistribution_BirthDeath(t *testing.T) {
	T := dense(t, [][]float64{
		{0.5, 0.5, 0},
		{0.25, 0.5, 0.25},
		{0, 0.5, 0.5},
	})
	pi, err := markov.StationaryDistribution(T, markov.DefaultTolerance)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.25, 0.5, 0.25}, pi, 1e-12)
	require.True(t, markov.IsReversible(T, markov.DefaultTolerance))
}

func TestStationaryDistribution_Reducible(t *testing.T) {
	T := dense(t, [][]float64{{1, 0}, {0, 1}})
	pi, err := markov.StationaryDistribution(T, markov.DefaultTolerance)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, 0.5}, pi, 1e-12)
}

func TestValidateReversible_Failures(t *testing.T) {
	tol := markov.DefaultTolerance

	// Rotational drift around a 3-cycle: doubly stochastic, yet irreversible.
	drift := dense(t, [][]float64{
		{0, 0.9, 0.1},
		{0.1, 0, 0.9},
		{0.9, 0.1, 0},
	})
	require.ErrorIs(t, markov.ValidateReversible(drift, tol), markov.ErrNotReversible)

	// One-way transition: structural asymmetry.
	oneWay := dense(t, [][]float64{{0.5, 0.5}, {0, 1}})
	require.ErrorIs(t, markov.ValidateReversible(oneWay, tol), markov.ErrNotReversible)
	require.False(t, markov.IsReversible(oneWay, tol))

	// Not a transition matrix at all.
	bad := dense(t, [][]float64{{0.9, 0.9}, {0.5, 0.5}})
	require.ErrorIs(t, markov.ValidateReversible(bad, tol), markov.ErrNotStochastic)
}

func TestValidateReversible_SmallRates(t *testing.T) {
	tol := markov.DefaultTolerance

	// Rotational drift with rates far below the tolerance: flows differ by 2x.
	a, b := 2e-11, 1e-11
	drift := dense(t, [][]float64{
		{1 - a - b, a, b},
		{b, 1 - a - b, a},
		{a, b, 1 - a - b},
	})
	require.ErrorIs(t, markov.ValidateReversible(drift, tol), markov.ErrNotReversible)
	require.False(t, markov.IsReversible(drift, tol))

	// A birth-death chain with the same tiny rates is still reversible.
	e := 1e-12
	birthDeath := dense(t, [][]float64{
		{1 - e, e, 0},
		{e, 1 - 2*e, e},
		{0, 2 * e, 1 - 2*e},
	})
	pi, err := markov.StationaryDistribution(birthDeath, tol)
	require.NoError(t, err)
	require.InDelta(t, 1, pi[0]+pi[1]+pi[2], 1e-12)
	require.InDelta(t, 2*pi[2], pi[1], 1e-12)
}

func TestStationaryDistribution_TwoState(t *testing.T) {
	p, q := 0.3, 0.6
	T := dense(t, [][]float64{{1 - p, p}, {q, 1 - q}})
	pi, err := markov.StationaryDistribution(T, markov.DefaultTolerance)
	require.NoError(t, err)
	require.InDelta(t, q/(p+q), pi[0], 1e-12)
	require.InDelta(t, p/(p+q), pi[1], 1e-12)
}
