// Package core: Graph method implementations.
//
// Vertex and edge insertion are O(1) amortized. Lookups by label and by
// ordered pair are O(1) through the index and weights maps; the slices
// exist only to keep iteration deterministic.

package core

import (
	"fmt"
	"math"
)

// AddVertex inserts v into the Graph.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[N]) AddVertex(v N) {
	if _, exists := g.index[v]; exists {
		return
	}
	g.index[v] = len(g.vertices)
	g.vertices = append(g.vertices, v)
	g.out = append(g.out, nil)
}

// HasVertex reports whether v exists in the graph.
// Complexity: O(1).
func (g *Graph[N]) HasVertex(v N) bool {
	_, ok := g.index[v]
	return ok
}

// AddEdge adds the directed edge from→to with the given weight, creating
// missing endpoints first.
//
// Returns ErrBadWeight, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed; on error
// the graph is left unchanged.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(from, to N, weight float64) error {
	// 1) Weight constraint
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrBadWeight, from, to, weight)
	}
	// 2) Loop constraint
	if from == to {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}
	// 3) Multi-edge constraint
	key := Pair[N]{From: from, To: to}
	if _, exists := g.weights[key]; exists {
		return fmt.Errorf("%w: %v→%v", ErrMultiEdgeNotAllowed, from, to)
	}

	// 4) Ensure both endpoints exist (idempotent) and store the edge.
	g.AddVertex(from)
	g.AddVertex(to)
	i := g.index[from]
	g.out[i] = append(g.out[i], Edge[N]{From: from, To: to, Weight: weight})
	g.weights[key] = weight
	g.edgeSeq = append(g.edgeSeq, key)

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph[N]) HasEdge(from, to N) bool {
	_, ok := g.weights[Pair[N]{From: from, To: to}]
	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph[N]) Weight(from, to N) (float64, bool) {
	w, ok := g.weights[Pair[N]{From: from, To: to}]
	return w, ok
}

// Neighbors returns the outgoing edges of v in insertion order.
// The returned slice is a copy.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(deg⁺(v)).
func (g *Graph[N]) Neighbors(v N) ([]Edge[N], error) {
	i, ok := g.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]Edge[N], len(g.out[i]))
	copy(out, g.out[i])

	return out, nil
}

// Vertices returns all vertex labels in insertion order.
// Complexity: O(V).
func (g *Graph[N]) Vertices() []N {
	out := make([]N, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], 0, len(g.edgeSeq))
	for _, key := range g.edgeSeq {
		out = append(out, Edge[N]{From: key.From, To: key.To, Weight: g.weights[key]})
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph[N]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph[N]) EdgeCount() int { return len(g.edgeSeq) }
