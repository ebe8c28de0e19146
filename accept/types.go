// Package accept - sentinel errors and the threshold update method enum.
package accept

import "errors"

var (
	// ErrNegativeEnd is returned when a final threshold is negative.
	ErrNegativeEnd = errors.New("accept: end threshold must be non-negative")

	// ErrEndExceedsStart is returned when the final threshold exceeds the start.
	ErrEndExceedsStart = errors.New("accept: end threshold must not exceed start")

	// ErrStepRange is returned when the step is invalid for the update
	// method: linear requires step ≥ 0, exponential requires 0 < step ≤ 1.
	ErrStepRange = errors.New("accept: step out of range for the update method")

	// ErrUnknownMethod is returned for an update method outside the enum.
	ErrUnknownMethod = errors.New("accept: unknown threshold update method")

	// ErrNonPositiveTemperature is returned when a simulated annealing
	// temperature bound is not strictly positive.
	ErrNonPositiveTemperature = errors.New("accept: temperatures must be strictly positive")

	// ErrProbabilityRange is returned when an acceptance probability lies
	// outside [0, 1].
	ErrProbabilityRange = errors.New("accept: probability must lie in [0, 1]")

	// ErrAcceptProbRange is returned when an autofit target probability lies
	// outside the open interval (0, 1).
	ErrAcceptProbRange = errors.New("accept: autofit acceptance probability must lie in (0, 1)")

	// ErrWorseRange is returned when the autofit worsening fraction lies
	// outside [0, 1].
	ErrWorseRange = errors.New("accept: worsening fraction must lie in [0, 1]")

	// ErrNumIters is returned when an autofit iteration budget is below one.
	ErrNumIters = errors.New("accept: autofit iteration budget must be at least one")

	// ErrLookbackPeriod is returned when a late-acceptance lookback is below one.
	ErrLookbackPeriod = errors.New("accept: lookback period must be at least one")

	// ErrAlphaRange is returned when a great-deluge alpha does not exceed one.
	ErrAlphaRange = errors.New("accept: alpha must exceed one")

	// ErrBetaRange is returned when a great-deluge beta lies outside (0, 1).
	ErrBetaRange = errors.New("accept: beta must lie in (0, 1)")

	// ErrGammaRange is returned when a non-linear great-deluge gamma is not positive.
	ErrGammaRange = errors.New("accept: gamma must be positive")

	// ErrDeltaRange is returned when a non-linear great-deluge delta is not positive.
	ErrDeltaRange = errors.New("accept: delta must be positive")

	// ErrNoCriteria is returned when a combinator is built without criteria.
	ErrNoCriteria = errors.New("accept: combinator needs at least one criterion")

	// ErrNilCriterion is returned when a combinator is given a nil criterion.
	ErrNilCriterion = errors.New("accept: criterion is nil")
)

// Method selects how a threshold/temperature decays across calls.
type Method int

const (
	// Linear subtracts step each call: T ← max(end, T − step).
	Linear Method = iota

	// Exponential multiplies by step each call: T ← max(end, T · step),
	// with step ∈ (0, 1].
	Exponential
)

// String returns the lower-case method name, or "unknown" outside the enum.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	default:
		return "unknown"
	}
}
