// Package matrix provides the dense numeric container used to carry
// Markov-chain transition matrices through the toolkit.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix stored in a single flat slice.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite, ...) that
//     return package sentinels so callers can match them with errors.Is.
//   - Element-wise kernels (Transpose, Hadamard, ZeroDiagonal) used by the
//     surprisal graph builder to derive its weight basis.
//
// All kernels allocate a fresh result and never mutate their operands,
// except ZeroDiagonal which is documented as in-place and is always called
// on a private clone.
package matrix
