// Package selection provides operator selection schemes for the ALNS engine.
//
// A scheme chooses a (destroy, repair) operator pair each iteration and
// learns per-operator or per-pair value from the observed outcome categories,
// multi-armed-bandit style. Every scheme implements alns.OperatorSelector:
//
//   - RandomSelect — uniform over the pair grid; the learning-free baseline.
//
//   - RouletteWheel — per-operator weights updated every iteration by a
//     convex combination with decay θ: w ← θ·w + (1−θ)·score[outcome].
//
//   - SegmentedRouletteWheel — as RouletteWheel, but score sums accumulate
//     over fixed-length segments and fold into the weights only at segment
//     boundaries (the published segmented scheme).
//
//   - AlphaUCB — upper-confidence-bound policy over the destroy×repair grid.
//
//   - MABSelector — bridge to an injected (optionally contextual)
//     multi-armed-bandit policy.
//
// All schemes are constructed with the four-element score vector indexed by
// alns.Outcome (credit for Best, Better, Accepted, Rejected — typically
// non-increasing, never negative) and the operator counts the engine has
// registered.
//
// Determinism: schemes draw from the shared rng only inside Select, before
// the destroy operator runs, preserving the engine's fixed RNG consumption
// order. AlphaUCB is fully deterministic and consumes no randomness.
//
// Use this package when wiring an engine; custom schemes only need to
// implement alns.OperatorSelector.
package selection
