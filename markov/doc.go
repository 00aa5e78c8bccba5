// Package markov validates discrete-time Markov chain transition matrices.
//
// It answers two questions the surprisal graph builder needs before it
// can trust a matrix:
//
//   - Is T row-stochastic? Every entry is finite and non-negative and every
//     row sums to one within a tolerance (ValidateTransitionMatrix).
//   - Is the chain reversible? There is a distribution π with
//     π(i)T(i,j) = π(j)T(j,i) for all i, j (ValidateReversible).
//
// Reversibility is decided without any eigen-analysis. The support graph
// of T (edge i→j iff T(i,j) > 0, i ≠ j) must be structurally symmetric;
// a BFS spanning forest of it then determines the only candidate π up to
// one scale factor per connected component,
//
//	π(child) = π(parent) · T(parent, child) / T(child, parent),
//
// and the candidate is checked against detailed balance on every pair.
// For a reducible chain the returned π is one member of the family of
// stationary distributions: each component is normalized to the share of
// states it contains.
//
// Numeric policy: row sums are compared to one with gonum's
// scalar.EqualWithinAbsOrRel, the same value serving as absolute and
// relative tolerance. Detailed-balance flows π(i)T(i,j) are compared with
// scalar.EqualWithinRel only: an absolute tolerance would accept any
// imbalance between flows smaller than it.
package markov
