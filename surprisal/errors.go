package surprisal

import "errors"

var (
	// ErrInvalidMatrix indicates the input is not a finite square row-stochastic matrix.
	ErrInvalidMatrix = errors.New("surprisal: invalid transition matrix")

	// ErrNotReversible indicates symmetrization was requested for a chain
	// that violates detailed balance.
	ErrNotReversible = errors.New("surprisal: transition matrix is not reversible")

	// ErrNodeCountMismatch indicates the node labels do not match the matrix
	// dimension or are not unique.
	ErrNodeCountMismatch = errors.New("surprisal: node labels do not match matrix dimension")

	// ErrNotSurprisalGraph indicates a nil graph or one not built by New/NewLabeled.
	ErrNotSurprisalGraph = errors.New("surprisal: not a surprisal graph")

	// ErrEmptyTrajectory indicates a trajectory with no states.
	ErrEmptyTrajectory = errors.New("surprisal: empty trajectory")

	// ErrNoPathFound indicates the traversed edges hold no path between the
	// trajectory's endpoints.
	ErrNoPathFound = errors.New("surprisal: no path found")

	// ErrBadTolerance indicates a negative, NaN or infinite tolerance option.
	ErrBadTolerance = errors.New("surprisal: tolerance must be finite and non-negative")
)
