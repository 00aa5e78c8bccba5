// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook sees each vertex with its tree parent and depth, and may
//     abort the walk with an error.
//
// Determinism
//
//	core.Graph returns neighbors in edge insertion order, and BFS enqueues
//	them in that order, so the visit sequence and the BFS tree are
//	reproducible for a given construction order.
//
// Use in this module
//
//	The markov package walks the support graph of a transition matrix with
//	BFS; an OnVisit hook propagates a stationary distribution candidate from
//	each visited vertex's tree parent, so the walk builds a spanning forest
//	and the candidate in a single pass.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
