// Package bfs provides the visit hook and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Visit describes a vertex as it is dequeued. Parent is the vertex that
// discovered it and is meaningful only when Depth > 0.
type Visit[N comparable] struct {
	Vertex N
	Parent N
	Depth  int
}

// Option configures BFS behavior via functional arguments.
type Option[N comparable] func(*Options[N])

// Options holds callbacks to customize BFS execution.
type Options[N comparable] struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v Visit[N]) error
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnVisit: func(Visit[N]) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS. A nil fn is ignored.
func WithOnVisit[N comparable](fn func(v Visit[N]) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree
//     (the start vertex has no entry).
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}
