// Package metrics provides distance helpers that classifiers compose:
// set symmetric-difference cardinality and Hausdorff distance between
// finite point sets in Euclidean space.
package metrics
