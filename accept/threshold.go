// Package accept - threshold accepting.
package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// ThresholdAccepting accepts a candidate iff it is at most T_t worse than
// the current solution: f(cand) − f(current) ≤ T_t, with T decaying across
// calls. Deterministic annealing without the Metropolis draw.
type ThresholdAccepting struct {
	sched schedule
}

// NewThresholdAccepting constructs the criterion with threshold decaying
// from start to end per the method.
//
// Errors: ErrNegativeEnd, ErrEndExceedsStart, ErrStepRange, ErrUnknownMethod.
func NewThresholdAccepting(start, end, step float64, method Method) (*ThresholdAccepting, error) {
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}

	return &ThresholdAccepting{sched: sched}, nil
}

// Accept compares the worsening gap against the current threshold, then
// advances the decay. No rng draws are consumed.
func (c *ThresholdAccepting) Accept(_ *rand.Rand, _, current, candidate alns.State) bool {
	res := candidate.Objective()-current.Objective() <= c.sched.current()
	c.sched.tick()

	return res
}

// Threshold returns the threshold the next call will use.
func (c *ThresholdAccepting) Threshold() float64 { return c.sched.current() }
