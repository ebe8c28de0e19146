// Package accept - record-to-record travel.
package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// RecordToRecordTravel accepts a candidate iff it is within T_t of the best
// (record) solution: f(cand) − f(best) ≤ T_t, with T decaying across calls.
type RecordToRecordTravel struct {
	sched schedule
}

// NewRecordToRecordTravel constructs the criterion with threshold decaying
// from start to end per the method.
//
// Errors: ErrNegativeEnd, ErrEndExceedsStart, ErrStepRange, ErrUnknownMethod.
func NewRecordToRecordTravel(start, end, step float64, method Method) (*RecordToRecordTravel, error) {
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}

	return &RecordToRecordTravel{sched: sched}, nil
}

// NewRecordToRecordTravelAutofit derives the schedule from an initial
// objective: a candidate worse·100% worse than the initial solution is
// accepted on the first call, and the threshold decays to zero over numIters
// calls:
//
//	start = worse · |initObj|, end = 0
//	linear:      step = (start − end) / numIters
//	exponential: step = (end / start)^(1/numIters)
//
// The exponential method is rejected with ErrStepRange: a multiplicative
// decay cannot reach a zero floor (its derived step is 0, outside (0, 1]).
//
// Errors: ErrWorseRange, ErrNumIters, ErrStepRange, ErrUnknownMethod.
func NewRecordToRecordTravelAutofit(initObj, worse float64, numIters int, method Method) (*RecordToRecordTravel, error) {
	if worse < 0 || worse > 1 || math.IsNaN(worse) {
		return nil, ErrWorseRange
	}
	if numIters < 1 {
		return nil, ErrNumIters
	}

	var (
		start = worse * math.Abs(initObj)
		step  float64
	)
	switch method {
	case Linear:
		step = start / float64(numIters)
	case Exponential:
		// (0 / start)^(1/numIters) == 0, which is outside (0, 1].
		return nil, ErrStepRange
	default:
		return nil, ErrUnknownMethod
	}

	return NewRecordToRecordTravel(start, 0, step, method)
}

// Accept compares the gap to the record against the current threshold, then
// advances the decay. No rng draws are consumed.
func (c *RecordToRecordTravel) Accept(_ *rand.Rand, best, _, candidate alns.State) bool {
	res := candidate.Objective()-best.Objective() <= c.sched.current()
	c.sched.tick()

	return res
}

// Threshold returns the threshold the next call will use.
func (c *RecordToRecordTravel) Threshold() float64 { return c.sched.current() }
