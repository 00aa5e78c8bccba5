package markov

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/phat/bfs"
	"github.com/katalvlaran/phat/matrix"
)

// StationaryDistribution returns a distribution π satisfying detailed
// balance for the reversible chain T, or an error wrapping ErrNotReversible.
//
// Implementation:
//   - Stage 1: validate T as a transition matrix.
//   - Stage 2: require a structurally symmetric support graph.
//   - Stage 3: for each connected component (roots taken in index order),
//     BFS from the root; the visit hook propagates π along the tree edges.
//   - Stage 4: normalize each component to (component size / n).
//   - Stage 5: verify π(i)T(i,j) ≈ π(j)T(j,i) for every i < j, relative to
//     the larger of the two flows, so chains with tiny rates are judged on
//     the same footing as chains with large ones.
//
// Complexity: O(n²).
func StationaryDistribution(T matrix.Matrix, tol float64) ([]float64, error) {
	// Stage 1
	if err := ValidateTransitionMatrix(T, tol); err != nil {
		return nil, err
	}
	rows, err := matrix.ToRows(T)
	if err != nil {
		return nil, err
	}
	n := len(rows)

	// Stage 2
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if (rows[i][j] > 0) != (rows[j][i] > 0) {
				return nil, fmt.Errorf("%w: T(%d,%d)=%g but T(%d,%d)=%g", ErrNotReversible, i, j, rows[i][j], j, i, rows[j][i])
			}
		}
	}

	support, err := SupportGraph(T)
	if err != nil {
		return nil, err
	}

	// Stage 3 + 4
	pi := make([]float64, n)
	seen := make([]bool, n)
	var component []int
	propagate := bfs.WithOnVisit(func(v bfs.Visit[int]) error {
		seen[v.Vertex] = true
		if v.Depth == 0 {
			pi[v.Vertex] = 1
		} else {
			pi[v.Vertex] = pi[v.Parent] * rows[v.Parent][v.Vertex] / rows[v.Vertex][v.Parent]
		}
		component = append(component, v.Vertex)
		return nil
	})
	mass := make([]float64, 0, n)
	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		component = component[:0]
		if _, err = bfs.BFS(support, root, propagate); err != nil {
			return nil, err
		}
		mass = mass[:0]
		for _, v := range component {
			mass = append(mass, pi[v])
		}
		share := float64(len(component)) / float64(n) / floats.Sum(mass)
		for _, v := range component {
			pi[v] *= share
		}
	}

	// Stage 5
	var flowIJ, flowJI float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			flowIJ, flowJI = pi[i]*rows[i][j], pi[j]*rows[j][i]
			if !scalar.EqualWithinRel(flowIJ, flowJI, tol) {
				return nil, fmt.Errorf("%w: detailed balance fails on (%d,%d): %g != %g", ErrNotReversible, i, j, flowIJ, flowJI)
			}
		}
	}

	return pi, nil
}

// ValidateReversible returns nil when T is a reversible transition matrix.
// Errors wrap ErrNotReversible, or the ValidateTransitionMatrix sentinels
// when T is not a transition matrix at all.
func ValidateReversible(T matrix.Matrix, tol float64) error {
	_, err := StationaryDistribution(T, tol)
	return err
}

// IsReversible reports whether T is a reversible transition matrix.
func IsReversible(T matrix.Matrix, tol float64) bool {
	return ValidateReversible(T, tol) == nil
}
