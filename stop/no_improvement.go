// Package stop - stagnation window.
package stop

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// NoImprovement stops the search once the best objective has not strictly
// decreased for n consecutive iterations. Every strict improvement resets
// the window.
type NoImprovement struct {
	window int

	target   float64 // best objective the window is measured against
	stagnant int     // consecutive iterations without strict improvement
	primed   bool    // target holds a real observation
}

// NewNoImprovement constructs the criterion.
//
// Errors: ErrPositiveIterations when n < 1.
func NewNoImprovement(n int) (*NoImprovement, error) {
	if n < 1 {
		return nil, ErrPositiveIterations
	}

	return &NoImprovement{window: n}, nil
}

// Stop observes the best objective at the top of each iteration and fires
// exactly n iterations after the last strict improvement.
func (c *NoImprovement) Stop(_ *rand.Rand, best, _ alns.State) bool {
	bestObj := best.Objective()

	if !c.primed {
		c.primed = true
		c.target = bestObj

		return false
	}

	if bestObj < c.target {
		c.target = bestObj
		c.stagnant = 0

		return false
	}

	c.stagnant++

	return c.stagnant >= c.window
}
