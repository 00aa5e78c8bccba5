// Package dijkstra provides Dijkstra's shortest-path algorithm on core.Graph
// values with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction (WithReturnPath).
//   - ShortestPath wraps a single source→target query and returns the vertex sequence.
//
// Tie-breaking (reproducibility):
//
//   - Relaxation is strict (newDist < dist[v]), so the first predecessor that
//     reaches a vertex with the minimal distance is kept.
//   - Neighbors are relaxed in core.Graph edge insertion order.
//   - Heap entries with equal distance pop in push order (a sequence number
//     breaks ties), so equal-cost vertices are settled first-discovered first.
//
// Callers must not depend on which of several equal-cost paths is returned;
// the rules above only make a given input reproduce the same answer.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source (or target for ShortestPath) is not in the graph.
//   - ErrNegativeWeight:  any edge has a negative weight (fast O(E) pre-scan).
//   - ErrNoPath:          ShortestPath target is unreachable.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent queries are safe as long as
//     nobody mutates the graph meanwhile.
package dijkstra
