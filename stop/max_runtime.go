// Package stop - wall-clock budget.
package stop

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/alns"
)

// MaxRuntime stops the search once wall-clock time since the first Stop
// call exceeds the budget. The first call establishes the start time, so
// engine setup cost is excluded from the budget.
type MaxRuntime struct {
	budget time.Duration
	start  time.Time
}

// NewMaxRuntime constructs the criterion.
//
// Errors: ErrNegativeDuration when budget < 0.
func NewMaxRuntime(budget time.Duration) (*MaxRuntime, error) {
	if budget < 0 {
		return nil, ErrNegativeDuration
	}

	return &MaxRuntime{budget: budget}, nil
}

// Stop returns true once the elapsed wall clock exceeds the budget.
func (c *MaxRuntime) Stop(_ *rand.Rand, _, _ alns.State) bool {
	if c.start.IsZero() {
		c.start = time.Now()

		return false
	}

	return time.Since(c.start) > c.budget
}
