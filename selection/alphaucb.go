// Package selection - upper-confidence-bound selection over operator pairs.
//
// AlphaUCB treats the numDestroy × numRepair grid as bandit arms. For arm a
// with play count n_a and empirical mean reward μ_a it plays
//
//	argmax_a [ μ_a + α · sqrt( (1 + ln(1+T)) / n_a ) ],  T = Σ n_a,
//
// with unplayed arms taking absolute priority (their index is +∞), so every
// arm is played once before any arm is played twice. Ties break toward the
// lowest arm index, making the scheme fully deterministic: it consumes no
// randomness at all.
package selection

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// AlphaUCB is a deterministic UCB policy over (destroy, repair) pairs.
// α ∈ (0,1] controls exploration; values around 0.05 are typical.
type AlphaUCB struct {
	scores scoreVector
	alpha  float64

	numDestroy int
	numRepair  int

	plays []int     // per-arm play counts n_a
	means []float64 // per-arm empirical mean rewards μ_a
	total int       // T = Σ n_a
}

// NewAlphaUCB constructs the scheme.
//
// Contracts:
//   - scores has one non-negative finite entry per alns.Outcome.
//   - alpha ∈ (0, 1].
//   - numDestroy, numRepair ≥ 1 and match the engine's registry.
//
// Errors: ErrScoreLength, ErrNegativeScore, ErrInvalidScore, ErrAlphaRange,
// ErrNoOperators.
func NewAlphaUCB(scores []float64, alpha float64, numDestroy, numRepair int) (*AlphaUCB, error) {
	sv, err := validateScores(scores)
	if err != nil {
		return nil, err
	}
	if alpha <= 0 || alpha > 1 {
		return nil, ErrAlphaRange
	}
	if err = validateCounts(numDestroy, numRepair); err != nil {
		return nil, err
	}

	arms := numDestroy * numRepair

	return &AlphaUCB{
		scores:     sv,
		alpha:      alpha,
		numDestroy: numDestroy,
		numRepair:  numRepair,
		plays:      make([]int, arms),
		means:      make([]float64, arms),
	}, nil
}

// Select returns the pair with the highest UCB index. Unplayed arms win
// outright in index order; among played arms ties break toward the lowest
// arm index. No rng draws are consumed.
//
// Complexity: O(numDestroy · numRepair).
func (s *AlphaUCB) Select(_ *rand.Rand, _, _ alns.State) (int, int) {
	var (
		arm      int
		bestArm  = -1
		bestVal  = math.Inf(-1)
		bonus    float64
		idxValue float64
	)

	// Unplayed arms have priority; the first one wins.
	for arm = range s.plays {
		if s.plays[arm] == 0 {
			return armPair(arm, s.numRepair)
		}
	}

	bonus = 1 + math.Log(1+float64(s.total))
	for arm = range s.plays {
		idxValue = s.means[arm] + s.alpha*math.Sqrt(bonus/float64(s.plays[arm]))
		if idxValue > bestVal {
			bestVal = idxValue
			bestArm = arm
		}
	}

	return armPair(bestArm, s.numRepair)
}

// Update increments the arm's play count and folds reward = score[outcome]
// into its empirical mean incrementally.
//
// Complexity: O(1).
func (s *AlphaUCB) Update(_ alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	arm := armIndex(dIdx, rIdx, s.numRepair)
	s.plays[arm]++
	s.total++
	s.means[arm] += (s.scores[outcome] - s.means[arm]) / float64(s.plays[arm])
}

// NumDestroy reports the destroy-operator count the scheme was built for.
func (s *AlphaUCB) NumDestroy() int { return s.numDestroy }

// NumRepair reports the repair-operator count the scheme was built for.
func (s *AlphaUCB) NumRepair() int { return s.numRepair }
