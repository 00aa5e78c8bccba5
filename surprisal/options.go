package surprisal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phat/markov"
)

// Option configures New and NewLabeled.
type Option func(*options)

type options struct {
	symmetrized bool
	tol         float64
	err         error
}

func defaultOptions() options {
	return options{symmetrized: true, tol: markov.DefaultTolerance}
}

// WithSymmetrized selects the weight basis: T ⊙ Tᵀ when true (the default,
// requires a reversible chain), T itself when false.
func WithSymmetrized(on bool) Option {
	return func(o *options) { o.symmetrized = on }
}

// WithTolerance sets the tolerance for the row-sum and detailed-balance
// checks. Defaults to markov.DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: %v", ErrBadTolerance, tol)
			return
		}
		o.tol = tol
	}
}
