// Package accept - non-linear great deluge.
package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// NonLinearGreatDeluge behaves like GreatDeluge but moves its water level
// asymmetrically: acceptances sink the level non-linearly (exponentially in
// the relative gap to the candidate), while rejections relax it upward so a
// stalled search regains room to move:
//
//	accepted: B ← B · exp(−δ·β·(B − f(cand)) / |B|)
//	rejected: B ← B + γ·|f(cand) − B|
//
// γ > 0 scales the upward relaxation, δ > 0 the downward pull. A zero water
// level (possible only when the best objective is exactly zero at the first
// call) leaves the level unchanged on acceptance; the relative gap is then
// undefined and the update degenerates to a no-op.
type NonLinearGreatDeluge struct {
	alpha float64
	beta  float64
	gamma float64
	delta float64

	level       float64
	initialized bool
}

// NewNonLinearGreatDeluge constructs the criterion.
//
// Errors: ErrAlphaRange when alpha ≤ 1, ErrBetaRange when beta ∉ (0, 1),
// ErrGammaRange when gamma ≤ 0, ErrDeltaRange when delta ≤ 0.
func NewNonLinearGreatDeluge(alpha, beta, gamma, delta float64) (*NonLinearGreatDeluge, error) {
	if alpha <= 1 {
		return nil, ErrAlphaRange
	}
	if beta <= 0 || beta >= 1 {
		return nil, ErrBetaRange
	}
	if gamma <= 0 {
		return nil, ErrGammaRange
	}
	if delta <= 0 {
		return nil, ErrDeltaRange
	}

	return &NonLinearGreatDeluge{alpha: alpha, beta: beta, gamma: gamma, delta: delta}, nil
}

// Accept gates the candidate against the water level, then applies the
// asymmetric level update. No rng draws are consumed.
//
// Complexity: O(1).
func (c *NonLinearGreatDeluge) Accept(_ *rand.Rand, best, _, candidate alns.State) bool {
	if !c.initialized {
		c.level = c.alpha * best.Objective()
		c.initialized = true
	}

	candObj := candidate.Objective()
	res := candObj < c.level

	if res {
		if c.level != 0 {
			gap := (c.level - candObj) / math.Abs(c.level)
			c.level *= math.Exp(-c.delta * c.beta * gap)
		}
	} else {
		c.level += c.gamma * math.Abs(candObj-c.level)
	}

	return res
}

// Level returns the water level the next call will gate against; before the
// first call it is zero (the level initializes lazily from best).
func (c *NonLinearGreatDeluge) Level() float64 { return c.level }
