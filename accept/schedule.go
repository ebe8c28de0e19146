// Package accept - shared threshold decay schedule.
//
// Every threshold-style criterion (ThresholdAccepting, RecordToRecordTravel,
// SimulatedAnnealing, RandomAccept) is parameterized by
// (start, end, step, method) and decays its scalar after each call:
//
//	linear:      T ← max(end, T − step)
//	exponential: T ← max(end, T · step), step ∈ (0, 1]
//
// Validation happens once at construction so Accept never fails mid-search.
package accept

import "math"

// schedule is the decaying scalar shared by threshold-style criteria.
type schedule struct {
	value  float64
	end    float64
	step   float64
	method Method
}

// newSchedule validates (start, end, step, method) and returns the schedule
// positioned at start.
//
// Contracts: end ≥ 0, end ≤ start; linear step ≥ 0; exponential 0 < step ≤ 1.
//
// Errors: ErrNegativeEnd, ErrEndExceedsStart, ErrStepRange, ErrUnknownMethod.
func newSchedule(start, end, step float64, method Method) (schedule, error) {
	if end < 0 {
		return schedule{}, ErrNegativeEnd
	}
	if end > start {
		return schedule{}, ErrEndExceedsStart
	}
	switch method {
	case Linear:
		if step < 0 || math.IsNaN(step) {
			return schedule{}, ErrStepRange
		}
	case Exponential:
		if step <= 0 || step > 1 || math.IsNaN(step) {
			return schedule{}, ErrStepRange
		}
	default:
		return schedule{}, ErrUnknownMethod
	}

	return schedule{value: start, end: end, step: step, method: method}, nil
}

// current returns the threshold to apply on this call.
func (s *schedule) current() float64 { return s.value }

// tick advances the decay by one call.
//
// Complexity: O(1).
func (s *schedule) tick() {
	switch s.method {
	case Linear:
		s.value = math.Max(s.end, s.value-s.step)
	case Exponential:
		s.value = math.Max(s.end, s.value*s.step)
	}
}
