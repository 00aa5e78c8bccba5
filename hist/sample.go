package hist

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WeightedSample is an ordered sequence of (observation, weight) pairs.
// The zero value is an empty sample ready for use.
type WeightedSample[T any] struct {
	obs     []T
	weights []float64
}

func validateWeight(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}

	return nil
}

func validateWeights(weights []float64) error {
	for i, w := range weights {
		if err := validateWeight(w); err != nil {
			return fmt.Errorf("weight %d: %w", i, err)
		}
	}

	return nil
}

// NewWeightedSample pairs obs with weights. A nil weights slice gives every
// observation weight 1. Both slices are copied.
//
// Errors: ErrLengthMismatch, ErrInvalidWeight.
func NewWeightedSample[T any](obs []T, weights []float64) (*WeightedSample[T], error) {
	if weights == nil {
		weights = ones(len(obs))
	} else if len(weights) != len(obs) {
		return nil, fmt.Errorf("%w: %d observations, %d weights", ErrLengthMismatch, len(obs), len(weights))
	}
	if err := validateWeights(weights); err != nil {
		return nil, err
	}

	return &WeightedSample[T]{
		obs:     append([]T(nil), obs...),
		weights: append([]float64(nil), weights...),
	}, nil
}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}

// Append adds (obs, w). On ErrInvalidWeight nothing is recorded.
func (s *WeightedSample[T]) Append(obs T, w float64) error {
	if err := validateWeight(w); err != nil {
		return err
	}
	s.obs = append(s.obs, obs)
	s.weights = append(s.weights, w)

	return nil
}

// Len returns the number of pairs.
func (s *WeightedSample[T]) Len() int { return len(s.obs) }

// Empty reports whether the sample has no pairs.
func (s *WeightedSample[T]) Empty() bool { return len(s.obs) == 0 }

// TotalWeight returns the sum of all weights, 0 for an empty sample.
func (s *WeightedSample[T]) TotalWeight() float64 { return floats.Sum(s.weights) }

// Concat returns a new sample holding s's pairs followed by other's.
// A nil receiver or a nil other is treated as empty.
func (s *WeightedSample[T]) Concat(other *WeightedSample[T]) *WeightedSample[T] {
	out := s.Clone()
	if other != nil {
		out.obs = append(out.obs, other.obs...)
		out.weights = append(out.weights, other.weights...)
	}

	return out
}

// Scale returns a new sample with every weight multiplied by c.
//
// Errors: ErrInvalidScale for c < 0, NaN or ±Inf.
func (s *WeightedSample[T]) Scale(c float64) (*WeightedSample[T], error) {
	if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, c)
	}
	out := s.Clone()
	floats.Scale(c, out.weights)

	return out, nil
}

// At returns the i-th pair.
func (s *WeightedSample[T]) At(i int) (T, float64, error) {
	if i < 0 || i >= len(s.obs) {
		var zero T
		return zero, 0, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s.obs))
	}

	return s.obs[i], s.weights[i], nil
}

// Slice returns a new sample holding pairs [lo, hi).
func (s *WeightedSample[T]) Slice(lo, hi int) (*WeightedSample[T], error) {
	if lo < 0 || hi > len(s.obs) || lo > hi {
		return nil, fmt.Errorf("%w: [%d:%d] (len %d)", ErrIndexOutOfRange, lo, hi, len(s.obs))
	}

	return &WeightedSample[T]{
		obs:     append([]T(nil), s.obs[lo:hi]...),
		weights: append([]float64(nil), s.weights[lo:hi]...),
	}, nil
}

// Observations returns a copy of the observations in order.
func (s *WeightedSample[T]) Observations() []T { return append([]T{}, s.obs...) }

// Weights returns a copy of the weights in order.
func (s *WeightedSample[T]) Weights() []float64 { return append([]float64{}, s.weights...) }

// All iterates over the pairs in order.
func (s *WeightedSample[T]) All() iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		for i := range s.obs {
			if !yield(s.obs[i], s.weights[i]) {
				return
			}
		}
	}
}

// Normalized returns the weights divided by their total.
//
// Errors: ErrZeroTotalWeight for an empty or all-zero sample.
func (s *WeightedSample[T]) Normalized() ([]float64, error) {
	total := s.TotalWeight()
	if total == 0 {
		return nil, ErrZeroTotalWeight
	}
	out := s.Weights()
	floats.Scale(1/total, out)

	return out, nil
}

// Clear removes every pair.
func (s *WeightedSample[T]) Clear() {
	s.obs = nil
	s.weights = nil
}

// Clone returns an independent copy of s. A nil s clones to an empty sample.
func (s *WeightedSample[T]) Clone() *WeightedSample[T] {
	if s == nil {
		return &WeightedSample[T]{}
	}
	return &WeightedSample[T]{
		obs:     append([]T(nil), s.obs...),
		weights: append([]float64(nil), s.weights...),
	}
}

// String summarizes the sample as its length and total weight.
func (s *WeightedSample[T]) String() string {
	return fmt.Sprintf("WeightedSample(len=%d, total=%g)", s.Len(), s.TotalWeight())
}
