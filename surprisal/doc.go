// Package surprisal builds surprisal graphs from Markov transition matrices
// and reduces trajectories to their fundamental sequences.
//
// A surprisal graph has one node per chain state and a directed edge x→y
// for every off-diagonal positive entry of the weight basis W, carrying the
// surprisal −log W(x,y) ≥ 0. In the default symmetrized mode the chain must
// be reversible and W = T ⊙ Tᵀ, so both directions of a pair carry the same
// weight −log T(x,y) − log T(y,x). Without symmetrization W = T.
//
// The fundamental sequence of a trajectory is a minimum-total-surprisal path
// between its endpoints through the edges the trajectory actually traversed.
// Shortest paths come from the dijkstra package: binary heap, strict
// relaxation, neighbors in row-major matrix order, so among equal-cost
// paths the first one discovered is returned.
//
// Graphs are read-only after construction and carry no locks; share them
// across goroutines only for reading.
package surprisal
