// Package stop - iteration budget.
package stop

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// MaxIterations stops the search after exactly n iterations have executed.
// With n == 0 the engine returns the initial solution without running any
// operator.
type MaxIterations struct {
	budget int
	seen   int
}

// NewMaxIterations constructs the criterion.
//
// Errors: ErrNegativeIterations when n < 0.
func NewMaxIterations(n int) (*MaxIterations, error) {
	if n < 0 {
		return nil, ErrNegativeIterations
	}

	return &MaxIterations{budget: n}, nil
}

// Stop returns true once the budget is exhausted. Each false return
// corresponds to exactly one executed iteration.
func (c *MaxIterations) Stop(_ *rand.Rand, _, _ alns.State) bool {
	if c.seen >= c.budget {
		return true
	}
	c.seen++

	return false
}
