package hist

// View is a read-only window on a PathwayHistogram's class→sample mapping.
// Every sample it hands out is a copy. The view tracks later changes to
// the histogram.
type View[T any, C comparable] struct {
	h *PathwayHistogram[T, C]
}

// Get returns a copy of class c's sample and whether c was observed.
func (v View[T, C]) Get(c C) (*WeightedSample[T], bool) {
	ws, ok := v.h.data[c]
	if !ok {
		return nil, false
	}

	return ws.Clone(), true
}

// Len returns the number of classes.
func (v View[T, C]) Len() int { return v.h.Len() }

// Classes returns the classes in first-insertion order.
func (v View[T, C]) Classes() []C { return v.h.Classes() }

// Range calls fn for each class in order with a copy of its sample,
// stopping early when fn returns false.
func (v View[T, C]) Range(fn func(C, *WeightedSample[T]) bool) {
	for _, c := range v.h.Classes() {
		if !fn(c, v.h.data[c].Clone()) {
			return
		}
	}
}
