package markov

import "errors"

// Sentinel errors returned by the markov package.
var (
	// ErrNotStochastic indicates a negative entry or a row that does not sum to one.
	ErrNotStochastic = errors.New("markov: matrix is not row-stochastic")

	// ErrNotReversible indicates that no distribution satisfies detailed balance.
	ErrNotReversible = errors.New("markov: chain is not reversible")

	// ErrBadTolerance indicates a negative, NaN or infinite tolerance.
	ErrBadTolerance = errors.New("markov: tolerance must be finite and non-negative")
)
