// Package selection - bridge to an external multi-armed-bandit policy.
//
// MABSelector maps each (destroy, repair) pair to a bandit arm via row-major
// encoding and forwards score[outcome] as the reward on every update. When
// the wrapped policy is contextual, the context vector is fetched from the
// current state immediately before prediction and the same vector is passed
// to the subsequent fit, so the policy always learns on the features it
// decided with.
//
// The bandit dependency is an injected interface: the engine works with the
// built-in schemes when no bridge is present, and any policy satisfying
// Bandit can be plugged in without this module depending on it.
package selection

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// Bandit is the capability contract an external multi-armed-bandit policy
// must satisfy to drive operator selection.
//
// Contracts:
//   - Predict returns an arm index in [0, numArms) for the given context
//     (nil when the policy is not contextual). Any rng draws must happen
//     inside Predict, never earlier.
//   - PartialFit folds one (arm, reward, context) observation into the policy.
//   - RequiresContext is constant for the lifetime of the policy.
type Bandit interface {
	Predict(rng *rand.Rand, context []float64) (int, error)
	PartialFit(arm int, reward float64, context []float64) error
	RequiresContext() bool
}

// MABSelector adapts a Bandit policy to alns.OperatorSelector.
type MABSelector struct {
	scores scoreVector
	bandit Bandit

	numDestroy int
	numRepair  int

	// lastContext is the feature vector used for the most recent Predict;
	// the following Update fits on the same vector.
	lastContext []float64

	opts options
}

// NewMABSelector constructs the bridge.
//
// Errors: ErrScoreLength, ErrNegativeScore, ErrInvalidScore, ErrNilBandit,
// ErrNoOperators.
func NewMABSelector(scores []float64, bandit Bandit, numDestroy, numRepair int, opts ...Option) (*MABSelector, error) {
	sv, err := validateScores(scores)
	if err != nil {
		return nil, err
	}
	if bandit == nil {
		return nil, ErrNilBandit
	}
	if err = validateCounts(numDestroy, numRepair); err != nil {
		return nil, err
	}

	return &MABSelector{
		scores:     sv,
		bandit:     bandit,
		numDestroy: numDestroy,
		numRepair:  numRepair,
		opts:       applyOptions(opts),
	}, nil
}

// Select asks the bandit for an arm and decodes it into a (destroy, repair)
// pair. A failing or out-of-range prediction falls back to one uniform draw
// over the pair grid (logged when a logger is configured) so a flaky policy
// degrades the search instead of aborting it.
//
// Complexity: O(cost of Predict), plus O(dim) for the context fetch.
func (s *MABSelector) Select(rng *rand.Rand, _, current alns.State) (int, int) {
	s.lastContext = s.contextOf(current)

	arm, err := s.bandit.Predict(rng, s.lastContext)
	if err != nil || arm < 0 || arm >= s.numDestroy*s.numRepair {
		s.opts.warn("bandit prediction unusable; sampling uniformly",
			slog.Int("arm", arm), slog.Any("error", err))
		arm = rng.Intn(s.numDestroy * s.numRepair)
	}

	return armPair(arm, s.numRepair)
}

// Update forwards reward = score[outcome] for the played arm, fitting on the
// context captured at Select time. A failing fit drops the observation with
// a warning; learning degrades, the search continues.
func (s *MABSelector) Update(_ alns.State, dIdx, rIdx int, outcome alns.Outcome) {
	arm := armIndex(dIdx, rIdx, s.numRepair)
	if err := s.bandit.PartialFit(arm, s.scores[outcome], s.lastContext); err != nil {
		s.opts.warn("bandit fit failed; observation dropped",
			slog.Int("arm", arm), slog.String("outcome", outcome.String()), slog.Any("error", err))
	}
}

// NumDestroy reports the destroy-operator count the scheme was built for.
func (s *MABSelector) NumDestroy() int { return s.numDestroy }

// NumRepair reports the repair-operator count the scheme was built for.
func (s *MABSelector) NumRepair() int { return s.numRepair }

// RequiresContext implements alns.ContextRequirer so the engine can fail
// early when states cannot provide contexts.
func (s *MABSelector) RequiresContext() bool { return s.bandit.RequiresContext() }

// contextOf fetches the state's context vector when the policy needs one.
// The engine has already verified the state implements alns.ContextualState.
func (s *MABSelector) contextOf(state alns.State) []float64 {
	if !s.bandit.RequiresContext() {
		return nil
	}
	cs, ok := state.(alns.ContextualState)
	if !ok {
		return nil
	}

	return cs.Context()
}
