// Package alns - outcome classification.
//
// Each iteration's candidate lands in exactly one of four categories; the
// category determines the score credited to the operator pair that produced
// it and the state transition applied by the engine.
package alns

// Outcome is the category assigned to a candidate solution after evaluation.
// Classification is total and mutually exclusive: exactly one category
// applies per iteration.
type Outcome int

const (
	// Best: the candidate is a new global best (strictly below best).
	Best Outcome = iota

	// Better: the candidate strictly improves on current but not on best.
	Better

	// Accepted: the candidate does not improve on current but the acceptance
	// criterion let it replace current anyway.
	Accepted

	// Rejected: the candidate is discarded.
	Rejected

	// NumOutcomes is the number of outcome categories; score vectors and
	// per-operator counters are indexed by Outcome and have this length.
	NumOutcomes = iota
)

// outcomeNames is indexed by Outcome; kept in sync with the constants above.
var outcomeNames = [NumOutcomes]string{"best", "better", "accepted", "rejected"}

// String returns the lower-case category name, or "unknown" for values
// outside the enum range.
func (o Outcome) String() string {
	if o < 0 || int(o) >= NumOutcomes {
		return "unknown"
	}

	return outcomeNames[o]
}

// classifyImprovement maps a candidate objective against the current and
// best objectives using strict < comparison (equal objectives are not
// improvements). It returns Best or Better when the candidate improves, and
// (Rejected, false) otherwise — the Accepted/Rejected split is decided by
// the acceptance criterion, not here.
//
// Complexity: O(1).
func classifyImprovement(candObj, currObj, bestObj float64) (Outcome, bool) {
	if candObj < bestObj {
		return Best, true
	}
	if candObj < currObj {
		return Better, true
	}

	return Rejected, false
}
