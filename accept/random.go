// Package accept - probabilistic acceptance with decaying probability.
package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// RandomAccept accepts a worsening candidate with a probability that decays
// across calls: accept iff U < P_t with U ~ Uniform[0,1) drawn from rng.
type RandomAccept struct {
	sched schedule
}

// NewRandomAccept constructs the criterion with probability decaying from
// start to end per the method (see schedule semantics).
//
// Contracts: 0 ≤ end ≤ start ≤ 1, step valid for the method.
//
// Errors: ErrProbabilityRange, ErrNegativeEnd, ErrEndExceedsStart,
// ErrStepRange, ErrUnknownMethod.
func NewRandomAccept(start, end, step float64, method Method) (*RandomAccept, error) {
	if start < 0 || start > 1 || end > 1 {
		return nil, ErrProbabilityRange
	}
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}

	return &RandomAccept{sched: sched}, nil
}

// Accept draws exactly one uniform variate and compares it against the
// current probability, then advances the decay.
func (c *RandomAccept) Accept(rng *rand.Rand, _, _, _ alns.State) bool {
	res := rng.Float64() < c.sched.current()
	c.sched.tick()

	return res
}

// Probability returns the acceptance probability the next call will use.
func (c *RandomAccept) Probability() float64 { return c.sched.current() }
