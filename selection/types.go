// Package selection - shared types, sentinel errors and validation helpers.
package selection

import (
	"errors"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

var (
	// ErrScoreLength is returned when the score vector does not have exactly
	// one entry per outcome category.
	ErrScoreLength = errors.New("selection: score vector must have one entry per outcome category")

	// ErrNegativeScore is returned when any score entry is negative.
	ErrNegativeScore = errors.New("selection: scores must be non-negative")

	// ErrInvalidScore is returned when any score entry is NaN or infinite.
	ErrInvalidScore = errors.New("selection: scores must be finite")

	// ErrNoOperators is returned when a scheme is constructed for fewer than
	// one destroy or one repair operator.
	ErrNoOperators = errors.New("selection: operator counts must be at least one")

	// ErrDecayRange is returned when the roulette decay lies outside [0, 1].
	ErrDecayRange = errors.New("selection: decay must lie in [0, 1]")

	// ErrSegmentLength is returned when the segment length is below one.
	ErrSegmentLength = errors.New("selection: segment length must be at least one")

	// ErrAlphaRange is returned when the UCB exploration parameter lies
	// outside (0, 1].
	ErrAlphaRange = errors.New("selection: alpha must lie in (0, 1]")

	// ErrNilBandit is returned when MABSelector is constructed without a
	// bandit policy.
	ErrNilBandit = errors.New("selection: bandit policy is nil")
)

// scoreVector is the internal fixed-size representation of the credit
// assigned per outcome category.
type scoreVector [alns.NumOutcomes]float64

// validateScores checks length, sign and finiteness, and copies the caller's
// slice into the internal fixed-size form so later mutation of the input
// cannot be observed.
//
// Complexity: O(1) (four entries).
func validateScores(scores []float64) (scoreVector, error) {
	var sv scoreVector
	if len(scores) != alns.NumOutcomes {
		return sv, ErrScoreLength
	}

	var (
		i int
		s float64
	)
	for i, s = range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return sv, ErrInvalidScore
		}
		if s < 0 {
			return sv, ErrNegativeScore
		}
		sv[i] = s
	}

	return sv, nil
}

// validateCounts guards the operator counts every scheme is built for.
func validateCounts(numDestroy, numRepair int) error {
	if numDestroy < 1 || numRepair < 1 {
		return ErrNoOperators
	}

	return nil
}

// armIndex encodes a (destroy, repair) pair as a row-major grid index.
func armIndex(dIdx, rIdx, numRepair int) int { return dIdx*numRepair + rIdx }

// armPair decodes a row-major grid index back into a (destroy, repair) pair.
func armPair(arm, numRepair int) (dIdx, rIdx int) { return arm / numRepair, arm % numRepair }

// sampleProportional draws an index with probability proportional to the
// weights. A degenerate vector (total weight ≤ 0) falls back to uniform
// sampling; the second return reports that fallback so callers can warn.
//
// Invariant: exactly one rng draw per call, degenerate or not, so the
// engine's RNG consumption order stays stable across both paths.
//
// Complexity: O(n).
func sampleProportional(rng *rand.Rand, weights []float64) (int, bool) {
	var (
		total float64
		i     int
		w     float64
	)
	for _, w = range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights)), true
	}

	var (
		u   = rng.Float64() * total
		acc float64
	)
	for i, w = range weights {
		acc += w
		if u < acc {
			return i, false
		}
	}

	// Floating-point slack: u landed on the accumulated total. Return the
	// last index with non-zero weight.
	for i = len(weights) - 1; i > 0; i-- {
		if weights[i] > 0 {
			return i, false
		}
	}

	return 0, false
}

// options carries optional knobs shared by the schemes in this package.
type options struct {
	logger *slog.Logger
}

// Option configures optional scheme behavior.
type Option func(*options)

// WithLogger installs a structured logger for non-fatal warnings (degenerate
// all-zero weights, bandit bridge failures). A nil logger keeps warnings
// disabled (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// applyOptions folds opts into a fresh options value.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// warn emits a structured warning when a logger is configured.
func (o options) warn(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Warn(msg, args...)
	}
}
