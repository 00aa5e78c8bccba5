package hist

import (
	"fmt"
)

// Classifier maps an observation to its pathway class.
type Classifier[T any, C comparable] func(T) (C, error)

// Infallible adapts a classifier that cannot fail.
func Infallible[T any, C comparable](fn func(T) C) Classifier[T, C] {
	return func(v T) (C, error) { return fn(v), nil }
}

// PathwayHistogram maps pathway classes to the WeightedSample of the
// observations classified into them. Classes appear on first insertion and
// iterate in that order.
type PathwayHistogram[T any, C comparable] struct {
	classify Classifier[T, C]
	order    []C
	data     map[C]*WeightedSample[T]
}

// NewPathwayHistogram returns an empty histogram.
//
// Errors: ErrNilClassifier.
func NewPathwayHistogram[T any, C comparable](classifier Classifier[T, C]) (*PathwayHistogram[T, C], error) {
	if classifier == nil {
		return nil, ErrNilClassifier
	}

	return &PathwayHistogram[T, C]{
		classify: classifier,
		data:     make(map[C]*WeightedSample[T]),
	}, nil
}

// Build creates a histogram and fills it with trajs. It is the one-call
// form of NewPathwayHistogram followed by Fill.
func Build[T any, C comparable](classifier Classifier[T, C], trajs []T, weights []float64) (*PathwayHistogram[T, C], error) {
	h, err := NewPathwayHistogram(classifier)
	if err != nil {
		return nil, err
	}
	if err = h.Fill(trajs, weights, true); err != nil {
		return nil, err
	}

	return h, nil
}

// Classifier returns the configured classifier.
func (h *PathwayHistogram[T, C]) Classifier() Classifier[T, C] { return h.classify }

// Add classifies traj and appends (traj, weight) to its class.
//
// Errors: ErrInvalidWeight, or ErrClassify wrapping the classifier's error.
// Nothing is recorded on error.
func (h *PathwayHistogram[T, C]) Add(traj T, weight float64) error {
	if err := validateWeight(weight); err != nil {
		return err
	}
	class, err := h.classify(traj)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClassify, err)
	}
	h.insert(class, traj, weight)

	return nil
}

// AddOne adds traj with weight 1.
func (h *PathwayHistogram[T, C]) AddOne(traj T) error { return h.Add(traj, 1) }

func (h *PathwayHistogram[T, C]) insert(class C, traj T, weight float64) {
	ws, ok := h.data[class]
	if !ok {
		ws = &WeightedSample[T]{}
		h.data[class] = ws
		h.order = append(h.order, class)
	}
	ws.obs = append(ws.obs, traj)
	ws.weights = append(ws.weights, weight)
}

// Fill adds every trajectory in order, paired with weights[i] or with 1
// when weights is nil. With accumulate false, existing contents are
// discarded first.
//
// A weights slice whose length differs from trajs is rejected with
// ErrLengthMismatch rather than truncated to the shorter of the two, so a
// mispaired input never fills a partial histogram.
//
// Every weight is validated and every trajectory classified before anything
// is committed, so on error the histogram is unchanged, including when
// accumulate is false.
//
// Errors: ErrLengthMismatch, ErrInvalidWeight, ErrClassify.
func (h *PathwayHistogram[T, C]) Fill(trajs []T, weights []float64, accumulate bool) error {
	if weights == nil {
		weights = ones(len(trajs))
	} else if len(weights) != len(trajs) {
		return fmt.Errorf("%w: %d trajectories, %d weights", ErrLengthMismatch, len(trajs), len(weights))
	}
	if err := validateWeights(weights); err != nil {
		return err
	}

	classes := make([]C, len(trajs))
	var err error
	for i, traj := range trajs {
		if classes[i], err = h.classify(traj); err != nil {
			return fmt.Errorf("%w: trajectory %d: %w", ErrClassify, i, err)
		}
	}

	if !accumulate {
		h.Clear()
	}
	for i, traj := range trajs {
		h.insert(classes[i], traj, weights[i])
	}

	return nil
}

// Clear removes every class and its data.
func (h *PathwayHistogram[T, C]) Clear() {
	h.order = nil
	h.data = make(map[C]*WeightedSample[T])
}

// Len returns the number of observed classes.
func (h *PathwayHistogram[T, C]) Len() int { return len(h.order) }

// Classes returns the observed classes in first-insertion order.
func (h *PathwayHistogram[T, C]) Classes() []C { return append([]C{}, h.order...) }

// Blocks returns copies of the per-class samples, aligned with Classes.
func (h *PathwayHistogram[T, C]) Blocks() []*WeightedSample[T] {
	out := make([]*WeightedSample[T], len(h.order))
	for i, c := range h.order {
		out[i] = h.data[c].Clone()
	}

	return out
}

// Data returns a read-only view of the class→sample mapping.
func (h *PathwayHistogram[T, C]) Data() View[T, C] { return View[T, C]{h: h} }

// TotalWeight returns the summed weight over all classes.
func (h *PathwayHistogram[T, C]) TotalWeight() float64 {
	var total float64
	for _, c := range h.order {
		total += h.data[c].TotalWeight()
	}

	return total
}

// Probabilities returns each class's share of the total weight.
//
// Errors: ErrZeroTotalWeight.
func (h *PathwayHistogram[T, C]) Probabilities() (map[C]float64, error) {
	total := h.TotalWeight()
	if total == 0 {
		return nil, ErrZeroTotalWeight
	}
	out := make(map[C]float64, len(h.order))
	for _, c := range h.order {
		out[c] = h.data[c].TotalWeight() / total
	}

	return out, nil
}

// Merge appends other's per-class samples onto h, class by class in other's
// order. Classes new to h are appended after h's existing classes. other is
// not modified; merging h into itself doubles every sample.
func (h *PathwayHistogram[T, C]) Merge(other *PathwayHistogram[T, C]) {
	if other == nil {
		return
	}
	for _, c := range other.Classes() {
		src := other.data[c].Clone()
		for i := range src.obs {
			h.insert(c, src.obs[i], src.weights[i])
		}
	}
}
