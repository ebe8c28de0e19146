// Package selection - segmented roulette-wheel selection.
//
// SegmentedRouletteWheel samples exactly like RouletteWheel but defers
// learning: per-operator score sums σ accumulate over a fixed-length segment
// of iterations without touching the weights, and only at each segment
// boundary do the weights fold in the accumulated evidence:
//
//	w[i] ← θ·w[i] + (1−θ)·σ[i], then σ ← 0.
//
// σ is a sum of scores, not an average: a per-operator usage count is
// tracked within the segment, but only the raw sums enter the weight update
// (the published segmented scheme rewards frequently-useful operators).
package selection

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// SegmentedRouletteWheel folds outcome scores into the selection weights
// once per segment instead of once per iteration.
type SegmentedRouletteWheel struct {
	scores    scoreVector
	decay     float64
	segLength int

	destroyWeights []float64
	repairWeights  []float64

	// Per-segment accumulators, reset at every boundary.
	destroySums  []float64
	repairSums   []float64
	destroyUsage []int
	repairUsage  []int
	updates      int // Update calls seen in the running segment

	opts options
}

// NewSegmentedRouletteWheel constructs the scheme.
//
// Contracts: as NewRouletteWheel, plus segLength ≥ 1.
//
// Errors: ErrScoreLength, ErrNegativeScore, ErrInvalidScore, ErrDecayRange,
// ErrSegmentLength, ErrNoOperators.
func NewSegmentedRouletteWheel(scores []float64, decay float64, segLength, numDestroy, numRepair int, opts ...Option) (*SegmentedRouletteWheel, error) {
	sv, err := validateScores(scores)
	if err != nil {
		return nil, err
	}
	if decay < 0 || decay > 1 {
		return nil, ErrDecayRange
	}
	if segLength < 1 {
		return nil, ErrSegmentLength
	}
	if err = validateCounts(numDestroy, numRepair); err != nil {
		return nil, err
	}

	return &SegmentedRouletteWheel{
		scores:         sv,
		decay:          decay,
		segLength:      segLength,
		destroyWeights: onesVector(numDestroy),
		repairWeights:  onesVector(numRepair),
		destroySums:    make([]float64, numDestroy),
		repairSums:     make([]float64, numRepair),
		destroyUsage:   make([]int, numDestroy),
		repairUsage:    make([]int, numRepair),
		opts:           applyOptions(opts),
	}, nil
}

// Select samples destroy then repair proportional to the segment-stable
// weights (two rng draws per call), with the same degenerate-vector uniform
// fallback as RouletteWheel.
//
// Complexity: O(numDestroy + numRepair).
func (s *SegmentedRouletteWheel) Select(rng *rand.Rand, _, _ alns.State) (int, int) {
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

// Update accumulates score[outcome] into the segment sums; at each segment
// boundary (every segLength updates) the sums fold into the weights and the
// accumulators reset.
//
// Complexity: O(1) off-boundary, O(numDestroy + numRepair) at a boundary.
func (s *SegmentedRouletteWheel) Update(_ alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	score := s.scores[outcome]
	s.destroySums[dIdx] += score
	s.repairSums[rIdx] += score
	s.destroyUsage[dIdx]++
	s.repairUsage[rIdx]++

	s.updates++
	if s.updates >= s.segLength {
		s.foldSegment()
	}
}

// foldSegment applies the boundary update and clears the accumulators.
func (s *SegmentedRouletteWheel) foldSegment() {
	var i int
	for i = range s.destroyWeights {
		s.destroyWeights[i] = s.decay*s.destroyWeights[i] + (1-s.decay)*s.destroySums[i]
		s.destroySums[i] = 0
		s.destroyUsage[i] = 0
	}
	for i = range s.repairWeights {
		s.repairWeights[i] = s.decay*s.repairWeights[i] + (1-s.decay)*s.repairSums[i]
		s.repairSums[i] = 0
		s.repairUsage[i] = 0
	}
	s.updates = 0
}

// NumDestroy reports the destroy-operator count the scheme was built for.
func (s *SegmentedRouletteWheel) NumDestroy() int { return len(s.destroyWeights) }

// NumRepair reports the repair-operator count the scheme was built for.
func (s *SegmentedRouletteWheel) NumRepair() int { return len(s.repairWeights) }

// DestroyWeights returns the current destroy weight vector as a read-only view.
func (s *SegmentedRouletteWheel) DestroyWeights() []float64 { return s.destroyWeights }

// RepairWeights returns the current repair weight vector as a read-only view.
func (s *SegmentedRouletteWheel) RepairWeights() []float64 { return s.repairWeights }
