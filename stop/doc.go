// Package stop provides stopping criteria for the ALNS engine.
//
// A criterion is consulted at the top of each iteration, before any operator
// runs, and reports whether the search should terminate:
//
//   - MaxIterations — stop after exactly n iterations have executed.
//   - MaxRuntime — stop once wall-clock time since the first call exceeds
//     the budget (the first call establishes the start time).
//   - NoImprovement — stop once the best objective has not strictly
//     decreased for n consecutive iterations.
//
// Every criterion is stateful and single-use per Iterate call; the engine
// never resets them. Construct a fresh value for each run. None of the
// built-in criteria consume randomness; the rng parameter exists so custom
// criteria (e.g. probabilistic restarts) can.
package stop
