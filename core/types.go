// File: types.go
// Role: Graph, Edge and sentinel errors.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - NaN or ±Inf weight supplied to AddEdge.
//	ErrLoopNotAllowed      - self-loop supplied to AddEdge.
//	ErrMultiEdgeNotAllowed - second edge for an existing (from,to) pair.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Surprisal graphs
	// never carry the diagonal of their weight basis.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed, weighted connection From → To.
type Edge[N comparable] struct {
	From   N
	To     N
	Weight float64
}

// Pair is an ordered (From, To) vertex pair, used as an edge key.
type Pair[N comparable] struct {
	From N
	To   N
}

// Graph is a directed weighted graph over vertex labels of type N.
//
// vertices keeps insertion order; index maps a label to its position.
// out[i] lists the outgoing edges of vertices[i] in insertion order.
// weights gives O(1) lookups by ordered pair.
type Graph[N comparable] struct {
	vertices []N
	index    map[N]int
	out      [][]Edge[N]
	weights  map[Pair[N]]float64
	edgeSeq  []Pair[N] // global insertion order of edges
}

// NewGraph creates an empty directed Graph. Self-loops are always rejected.
// Complexity: O(1)
func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{
		index:   make(map[N]int),
		weights: make(map[Pair[N]]float64),
	}
}
