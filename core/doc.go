// Package core provides the in-memory directed, weighted Graph that backs
// surprisal graphs, with a minimal, composable API surface.
//
// The Graph G = (V,E) is generic over its vertex label type N (any
// comparable type), so Markov-chain states can be labeled with ints,
// strings or small structs without an ID translation layer.
//
//   - Directed edges only; at most one edge per ordered pair (from,to).
//   - float64 weights; NaN and ±Inf are rejected with ErrBadWeight.
//   - Self-loops are rejected with ErrLoopNotAllowed.
//   - Deterministic iteration: Vertices(), Edges() and Neighbors() return
//     elements in insertion order, which makes shortest-path tie-breaking
//     reproducible.
//
// Views:
//
//	EdgeSubgraph(g, pairs) // keeps only the listed edges and their endpoints
//
// Concurrency:
//
//	Graph has no internal locking. It is meant to be built once and then
//	read; callers sharing a Graph across goroutines must not mutate it.
package core
