// Package selection - uniform random selection.
package selection

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// RandomSelect chooses destroy and repair operators uniformly at random and
// never learns from outcomes. It is the baseline against which the adaptive
// schemes are compared, and the cheapest scheme when operator quality is
// already known to be uniform.
type RandomSelect struct {
	numDestroy int
	numRepair  int
}

// NewRandomSelect constructs a uniform scheme for the given operator counts.
//
// Errors: ErrNoOperators when either count is below one.
func NewRandomSelect(numDestroy, numRepair int) (*RandomSelect, error) {
	if err := validateCounts(numDestroy, numRepair); err != nil {
		return nil, err
	}

	return &RandomSelect{numDestroy: numDestroy, numRepair: numRepair}, nil
}

// Select draws the destroy index first, then the repair index (two rng
// draws per call).
//
// Complexity: O(1).
func (s *RandomSelect) Select(rng *rand.Rand, _, _ alns.State) (int, int) {
	return rng.Intn(s.numDestroy), rng.Intn(s.numRepair)
}

// Update is a no-op: the scheme does not learn.
func (s *RandomSelect) Update(_ alns.State, _, _ int, _ alns.Outcome) {}

// NumDestroy reports the destroy-operator count the scheme was built for.
func (s *RandomSelect) NumDestroy() int { return s.numDestroy }

// NumRepair reports the repair-operator count the scheme was built for.
func (s *RandomSelect) NumRepair() int { return s.numRepair }
