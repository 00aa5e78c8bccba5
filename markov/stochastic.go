package markov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/phat/core"
	"github.com/katalvlaran/phat/matrix"
)

// DefaultTolerance is the absolute and relative tolerance used for row sums
// and detailed-balance comparisons when callers have no better value.
const DefaultTolerance = 1e-10

func validateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("%w: %v", ErrBadTolerance, tol)
	}

	return nil
}

// ValidateTransitionMatrix checks that T is a non-nil, square, finite,
// row-stochastic matrix: entries ≥ 0 and every row sums to 1 within tol.
//
// Errors (in order): ErrBadTolerance, matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrNaNInf, ErrNotStochastic.
// Complexity: O(n²).
func ValidateTransitionMatrix(T matrix.Matrix, tol float64) error {
	if err := validateTolerance(tol); err != nil {
		return err
	}
	if err := matrix.ValidateSquareNonNil(T); err != nil {
		return err
	}
	if err := matrix.ValidateFinite(T); err != nil {
		return err
	}

	rows, err := matrix.ToRows(T)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if k := floats.MinIdx(row); row[k] < 0 {
			return fmt.Errorf("%w: T(%d,%d) = %g is negative", ErrNotStochastic, i, k, row[k])
		}
		if s := floats.Sum(row); !scalar.EqualWithinAbsOrRel(s, 1, tol, tol) {
			return fmt.Errorf("%w: row %d sums to %.17g", ErrNotStochastic, i, s)
		}
	}

	return nil
}

// IsTransitionMatrix reports whether ValidateTransitionMatrix accepts T.
func IsTransitionMatrix(T matrix.Matrix, tol float64) bool {
	return ValidateTransitionMatrix(T, tol) == nil
}

// SupportGraph returns the transition graph of T over state indices:
// an edge i→j with weight T(i,j) for every off-diagonal positive entry,
// inserted in row-major order. Every state is a vertex, isolated or not.
//
// T is assumed to have passed ValidateTransitionMatrix.
// Complexity: O(n²).
func SupportGraph(T matrix.Matrix) (*core.Graph[int], error) {
	rows, err := matrix.ToRows(T)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph[int]()
	for i := range rows {
		g.AddVertex(i)
	}
	for i, row := range rows {
		for j, p := range row {
			if i == j || p <= 0 {
				continue
			}
			if err = g.AddEdge(i, j, p); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
