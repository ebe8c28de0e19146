// Package accept - trivial criteria.
package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// Always accepts every candidate unconditionally. Combined with an
// improvement-seeking selection scheme this yields a pure random-walk over
// the neighborhood structure.
type Always struct{}

// NewAlways constructs the criterion.
func NewAlways() *Always { return &Always{} }

// Accept returns true for every candidate.
func (*Always) Accept(_ *rand.Rand, _, _, _ alns.State) bool { return true }

// HillClimbing accepts a candidate iff it is no worse than current
// (f(cand) ≤ f(current); equality is accepted). Since the engine only
// consults the criterion for non-improving candidates, this effectively
// accepts sideways moves and rejects strict worsening.
type HillClimbing struct{}

// NewHillClimbing constructs the criterion.
func NewHillClimbing() *HillClimbing { return &HillClimbing{} }

// Accept returns true iff the candidate objective does not exceed current's.
func (*HillClimbing) Accept(_ *rand.Rand, _, current, candidate alns.State) bool {
	return candidate.Objective() <= current.Objective()
}
