// Package accept - late acceptance hill climbing.
//
// LateAcceptance compares the candidate against the current objective from
// `lookback` calls ago rather than against today's current. The history is a
// ring buffer seeded lazily from the first call's current objective (which
// is the initial solution unless an improving move arrived first).
//
// Flags:
//   - greedy: the history slot is only overwritten when the current
//     objective improves on the stored value, keeping the buffer a record of
//     the best "recent currents".
//   - betterHistory: additionally require the candidate to improve on the
//     present current objective.
package accept

import (
	"math/rand"

	"github.com/katalvlaran/alns"
)

// LateAcceptance implements the late acceptance hill climbing criterion.
type LateAcceptance struct {
	lookback      int
	greedy        bool
	betterHistory bool

	// Ring buffer of current objectives; head indexes the oldest entry.
	history []float64
	head    int
	size    int
}

// NewLateAcceptance constructs the criterion with the given lookback period.
//
// Errors: ErrLookbackPeriod when lookback < 1.
func NewLateAcceptance(lookback int, greedy, betterHistory bool) (*LateAcceptance, error) {
	if lookback < 1 {
		return nil, ErrLookbackPeriod
	}

	return &LateAcceptance{
		lookback:      lookback,
		greedy:        greedy,
		betterHistory: betterHistory,
		history:       make([]float64, lookback),
	}, nil
}

// Accept compares the candidate against the oldest buffered current
// objective, then records the present current objective per the flags.
// No rng draws are consumed.
//
// Complexity: O(1).
func (c *LateAcceptance) Accept(_ *rand.Rand, _, current, candidate alns.State) bool {
	var (
		currObj = current.Objective()
		candObj = candidate.Objective()
	)

	if c.size == 0 {
		c.push(currObj)

		return candObj < currObj
	}

	res := candObj < c.front()
	if c.betterHistory {
		res = res && candObj < currObj
	}

	if !c.greedy || currObj < c.front() {
		c.push(currObj)
	}

	return res
}

// front returns the oldest buffered objective.
func (c *LateAcceptance) front() float64 { return c.history[c.head] }

// push appends an objective, evicting the oldest entry once the buffer is full.
func (c *LateAcceptance) push(v float64) {
	if c.size < c.lookback {
		c.history[(c.head+c.size)%c.lookback] = v
		c.size++

		return
	}
	c.history[c.head] = v
	c.head = (c.head + 1) % c.lookback
}
