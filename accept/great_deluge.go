// Package accept - great deluge.
package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// GreatDeluge accepts a candidate iff its objective is strictly below the
// water level B, which starts at α·f(best) on the first call and sinks
// toward the best objective after every call:
//
//	B ← B − β·(B − f(best))
//
// α > 1 sets how much slack the initial level grants; β ∈ (0, 1) is the
// sink rate. As best improves, the level chases the new record.
type GreatDeluge struct {
	alpha float64
	beta  float64

	level       float64
	initialized bool
}

// NewGreatDeluge constructs the criterion.
//
// Errors: ErrAlphaRange when alpha ≤ 1, ErrBetaRange when beta ∉ (0, 1).
func NewGreatDeluge(alpha, beta float64) (*GreatDeluge, error) {
	if alpha <= 1 {
		return nil, ErrAlphaRange
	}
	if beta <= 0 || beta >= 1 {
		return nil, ErrBetaRange
	}

	return &GreatDeluge{alpha: alpha, beta: beta}, nil
}

// Accept gates the candidate against the water level, then lets the level
// sink toward the best objective. No rng draws are consumed.
//
// Complexity: O(1).
func (c *GreatDeluge) Accept(_ *rand.Rand, best, _, candidate alns.State) bool {
	bestObj := best.Objective()
	if !c.initialized {
		c.level = c.alpha * bestObj
		c.initialized = true
	}

	res := candidate.Objective() < c.level
	c.level -= c.beta * (c.level - bestObj)

	return res
}

// Level returns the water level the next call will gate against; before the
// first call it is zero (the level initializes lazily from best).
func (c *GreatDeluge) Level() float64 { return c.level }
