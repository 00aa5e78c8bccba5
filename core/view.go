// File: view.go
// Role: Non-mutating graph views (fresh graphs carved out of a source graph).
// Determinism:
//   - Vertex and edge insertion order of the source is preserved.

package core

// EdgeSubgraph returns the edge-induced subgraph of g: a new Graph holding
// exactly the edges of g whose (From, To) pair appears in keep, and only the
// vertices incident to at least one retained edge. Pairs in keep that are not
// edges of g are ignored. The input graph is not mutated.
//
// Vertex order follows the first retained edge touching each vertex, in the
// source's edge order.
//
// Complexity: O(E + |keep|).
func EdgeSubgraph[N comparable](g *Graph[N], keep []Pair[N]) *Graph[N] {
	want := make(map[Pair[N]]struct{}, len(keep))
	for _, p := range keep {
		want[p] = struct{}{}
	}

	out := NewGraph[N]()
	for _, key := range g.edgeSeq {
		if _, ok := want[key]; !ok {
			continue
		}
		_ = out.AddEdge(key.From, key.To, g.weights[key])
	}

	return out
}
