// Package hist holds weighted samples and pathway histograms.
//
// A WeightedSample is an ordered list of (observation, weight) pairs with
// non-negative finite weights. A PathwayHistogram routes observations
// through a classifier and appends each one to the WeightedSample of its
// class, creating classes lazily on first insertion.
//
// Mutating operations validate every input before touching state, so a
// failed call leaves the receiver exactly as it was.
//
// Neither type is safe for concurrent mutation. Fill one histogram per
// goroutine and combine them with Merge.
package hist
