package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptySet indicates a Hausdorff input without points.
	ErrEmptySet = errors.New("metrics: point set is empty")

	// ErrDimensionMismatch indicates points of differing dimension.
	ErrDimensionMismatch = errors.New("metrics: point dimensions differ")
)

// SymmetricDifferenceCardinality returns how many distinct elements occur
// in exactly one of s and q. Duplicates within one collection count once.
func SymmetricDifferenceCardinality[T comparable](s, q []T) int {
	inS := make(map[T]struct{}, len(s))
	for _, v := range s {
		inS[v] = struct{}{}
	}
	inQ := make(map[T]struct{}, len(q))
	for _, v := range q {
		inQ[v] = struct{}{}
	}

	n := 0
	for v := range inS {
		if _, ok := inQ[v]; !ok {
			n++
		}
	}
	for v := range inQ {
		if _, ok := inS[v]; !ok {
			n++
		}
	}

	return n
}

func checkPoints(s, q [][]float64) error {
	if len(s) == 0 || len(q) == 0 {
		return ErrEmptySet
	}
	dim := len(s[0])
	for _, set := range [][][]float64{s, q} {
		for i, p := range set {
			if len(p) != dim {
				return fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(p), dim)
			}
		}
	}

	return nil
}

// DirectedHausdorff returns max over a in s of min over b in q of |a-b|.
//
// Errors: ErrEmptySet, ErrDimensionMismatch.
// Complexity: O(|s|·|q|·d).
func DirectedHausdorff(s, q [][]float64) (float64, error) {
	if err := checkPoints(s, q); err != nil {
		return 0, err
	}

	return directed(s, q), nil
}

func directed(s, q [][]float64) float64 {
	worst := 0.0
	for _, a := range s {
		best := math.Inf(1)
		for _, b := range q {
			if d := floats.Distance(a, b, 2); d < best {
				best = d
			}
		}
		if best > worst {
			worst = best
		}
	}

	return worst
}

// Hausdorff returns the larger of the two directed Hausdorff distances.
//
// Errors: ErrEmptySet, ErrDimensionMismatch.
func Hausdorff(s, q [][]float64) (float64, error) {
	if err := checkPoints(s, q); err != nil {
		return 0, err
	}

	return math.Max(directed(s, q), directed(q, s)), nil
}
