// Package alns - per-iteration statistics recorder.
//
// The recorder tracks three objective trajectories (best / current /
// candidate), per-iteration runtimes, and a per-operator 4-vector of outcome
// counts. Memory grows O(iterations); recording can be disabled on the
// engine (WithoutStatistics) for maximum throughput.
package alns

import "time"

// Statistics records the progress of one Iterate call. Accessors return the
// recorder's internal slices as read-only views; callers must not mutate them.
type Statistics struct {
	bestObjs []float64
	currObjs []float64
	candObjs []float64
	runtimes []time.Duration

	destroyNames []string
	repairNames  []string

	// counts[opIdx][outcome]; monotonically non-decreasing.
	destroyCounts [][NumOutcomes]int
	repairCounts  [][NumOutcomes]int
}

// newStatistics prepares a recorder for the given operator registries.
//
// Complexity: O(numDestroy + numRepair).
func newStatistics(destroyNames, repairNames []string) *Statistics {
	return &Statistics{
		destroyNames:  destroyNames,
		repairNames:   repairNames,
		destroyCounts: make([][NumOutcomes]int, len(destroyNames)),
		repairCounts:  make([][NumOutcomes]int, len(repairNames)),
	}
}

// record appends one iteration's objective values and runtime.
func (s *Statistics) record(bestObj, currObj, candObj float64, rt time.Duration) {
	s.bestObjs = append(s.bestObjs, bestObj)
	s.currObjs = append(s.currObjs, currObj)
	s.candObjs = append(s.candObjs, candObj)
	s.runtimes = append(s.runtimes, rt)
}

// count credits one outcome to the given operator pair.
func (s *Statistics) count(dIdx, rIdx int, outcome Outcome) {
	s.destroyCounts[dIdx][outcome]++
	s.repairCounts[rIdx][outcome]++
}

// Iterations returns the number of recorded iterations.
func (s *Statistics) Iterations() int { return len(s.bestObjs) }

// BestObjectives returns the best objective value after each iteration.
// The trajectory is monotonically non-increasing.
func (s *Statistics) BestObjectives() []float64 { return s.bestObjs }

// CurrentObjectives returns the current objective value after each iteration.
func (s *Statistics) CurrentObjectives() []float64 { return s.currObjs }

// CandidateObjectives returns the candidate objective value of each iteration.
func (s *Statistics) CandidateObjectives() []float64 { return s.candObjs }

// Runtimes returns the wall-clock duration of each iteration.
func (s *Statistics) Runtimes() []time.Duration { return s.runtimes }

// TotalRuntime returns the sum of all per-iteration runtimes.
//
// Complexity: O(iterations).
func (s *Statistics) TotalRuntime() time.Duration {
	var total time.Duration
	for _, rt := range s.runtimes {
		total += rt
	}

	return total
}

// DestroyOperatorCounts returns, per destroy operator name, the 4-vector of
// outcome counts indexed by Outcome.
//
// Complexity: O(numDestroy).
func (s *Statistics) DestroyOperatorCounts() map[string][NumOutcomes]int {
	return countsByName(s.destroyNames, s.destroyCounts)
}

// RepairOperatorCounts returns, per repair operator name, the 4-vector of
// outcome counts indexed by Outcome.
//
// Complexity: O(numRepair).
func (s *Statistics) RepairOperatorCounts() map[string][NumOutcomes]int {
	return countsByName(s.repairNames, s.repairCounts)
}

// countsByName zips operator names with their count vectors into a fresh map.
func countsByName(names []string, counts [][NumOutcomes]int) map[string][NumOutcomes]int {
	out := make(map[string][NumOutcomes]int, len(names))
	for i, name := range names {
		out[name] = counts[i]
	}

	return out
}
