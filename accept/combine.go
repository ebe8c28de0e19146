// Package accept - logical combinators.
//
// All and Any compose criteria. Every sub-criterion is evaluated on every
// call — no short-circuiting — so stateful thresholds and histories tick in
// lockstep regardless of the combined verdict.
package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// All accepts iff every sub-criterion accepts.
type All struct {
	criteria []alns.AcceptanceCriterion
}

// NewAll constructs the conjunction of the given criteria.
//
// Errors: ErrNoCriteria with an empty list, ErrNilCriterion for a nil entry.
func NewAll(criteria ...alns.AcceptanceCriterion) (*All, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	return &All{criteria: criteria}, nil
}

// Accept evaluates every sub-criterion and returns their conjunction.
func (c *All) Accept(rng *rand.Rand, best, current, candidate alns.State) bool {
	res := true
	for _, sub := range c.criteria {
		// No short-circuit: every sub-criterion must observe this call.
		if !sub.Accept(rng, best, current, candidate) {
			res = false
		}
	}

	return res
}

// Any accepts iff at least one sub-criterion accepts.
type Any struct {
	criteria []alns.AcceptanceCriterion
}

// NewAny constructs the disjunction of the given criteria.
//
// Errors: ErrNoCriteria with an empty list, ErrNilCriterion for a nil entry.
func NewAny(criteria ...alns.AcceptanceCriterion) (*Any, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	return &Any{criteria: criteria}, nil
}

// Accept evaluates every sub-criterion and returns their disjunction.
func (c *Any) Accept(rng *rand.Rand, best, current, candidate alns.State) bool {
	res := false
	for _, sub := range c.criteria {
		// No short-circuit: every sub-criterion must observe this call.
		if sub.Accept(rng, best, current, candidate) {
			res = true
		}
	}

	return res
}

// validateCriteria guards both combinators.
func validateCriteria(criteria []alns.AcceptanceCriterion) error {
	if len(criteria) == 0 {
		return ErrNoCriteria
	}
	for _, sub := range criteria {
		if sub == nil {
			return ErrNilCriterion
		}
	}

	return nil
}
