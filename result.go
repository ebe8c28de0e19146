// Package alns - search result record.
package alns

// Result is the immutable record returned by Iterate at termination.
type Result struct {
	// Best is the best solution state observed during the search.
	Best State

	// Stats records the search trajectory. It is never nil; when statistics
	// collection is disabled (WithoutStatistics) it reports zero iterations.
	Stats *Statistics
}

// BestObjective returns the objective value of the best state.
// Invariant: Result.BestObjective() == Result.Best.Objective().
func (r Result) BestObjective() float64 { return r.Best.Objective() }
