// Package selection - adaptive roulette-wheel selection.
//
// RouletteWheel is the classic ALNS scheme: one weight per operator, both
// chosen operators credited after every iteration by a convex combination
// with decay θ:
//
//	w[d] ← θ·w[d] + (1−θ)·score[outcome]
//	w[r] ← θ·w[r] + (1−θ)·score[outcome]
//
// Invariants:
//   - Weights stay non-negative and finite (scores are validated ≥ 0 and
//     finite at construction; a convex combination preserves both).
//   - If an entire weight vector reaches zero (possible with an all-zero
//     score vector), Select degrades to uniform sampling instead of failing.
package selection

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// RouletteWheel selects destroy and repair operators independently, each
// with probability proportional to its adaptive weight.
type RouletteWheel struct {
	scores scoreVector
	decay  float64

	destroyWeights []float64
	repairWeights  []float64

	opts options
}

// NewRouletteWheel constructs the scheme.
//
// Contracts:
//   - scores has one non-negative finite entry per alns.Outcome.
//   - decay ∈ [0, 1]: 1 freezes the weights, 0 replaces them wholesale.
//   - numDestroy, numRepair ≥ 1 and match the engine's registry.
//
// All weights start at 1 (uniform selection until outcomes arrive).
//
// Errors: ErrScoreLength, ErrNegativeScore, ErrInvalidScore, ErrDecayRange,
// ErrNoOperators.
func NewRouletteWheel(scores []float64, decay float64, numDestroy, numRepair int, opts ...Option) (*RouletteWheel, error) {
	sv, err := validateScores(scores)
	if err != nil {
		return nil, err
	}
	if decay < 0 || decay > 1 {
		return nil, ErrDecayRange
	}
	if err = validateCounts(numDestroy, numRepair); err != nil {
		return nil, err
	}

	return &RouletteWheel{
		scores:         sv,
		decay:          decay,
		destroyWeights: onesVector(numDestroy),
		repairWeights:  onesVector(numRepair),
		opts:           applyOptions(opts),
	}, nil
}

// Select samples the destroy index first, then the repair index, each
// proportional to its weight vector (two rng draws per call). A degenerate
// all-zero vector falls back to uniform sampling and emits one warning per
// affected draw when a logger is configured.
//
// Complexity: O(numDestroy + numRepair).
func (s *RouletteWheel) Select(rng *rand.Rand, _, _ alns.State) (int, int) {
	dIdx, dDegenerate := sampleProportional(rng, s.destroyWeights)
	rIdx, rDegenerate := sampleProportional(rng, s.repairWeights)
	if dDegenerate {
		s.opts.warn("all destroy weights are zero; sampling uniformly", slog.Int("num_destroy", len(s.destroyWeights)))
	}
	if rDegenerate {
		s.opts.warn("all repair weights are zero; sampling uniformly", slog.Int("num_repair", len(s.repairWeights)))
	}

	return dIdx, rIdx
}

// Update credits both chosen operators with score[outcome] via the decayed
// convex combination.
//
// Complexity: O(1).
func (s *RouletteWheel) Update(_ alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	score := s.scores[outcome]
	s.destroyWeights[dIdx] = s.decay*s.destroyWeights[dIdx] + (1-s.decay)*score
	s.repairWeights[rIdx] = s.decay*s.repairWeights[rIdx] + (1-s.decay)*score
}

// NumDestroy reports the destroy-operator count the scheme was built for.
func (s *RouletteWheel) NumDestroy() int { return len(s.destroyWeights) }

// NumRepair reports the repair-operator count the scheme was built for.
func (s *RouletteWheel) NumRepair() int { return len(s.repairWeights) }

// DestroyWeights returns the current destroy weight vector as a read-only view.
func (s *RouletteWheel) DestroyWeights() []float64 { return s.destroyWeights }

// RepairWeights returns the current repair weight vector as a read-only view.
func (s *RouletteWheel) RepairWeights() []float64 { return s.repairWeights }

// onesVector allocates a weight vector initialized to 1.
func onesVector(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}
