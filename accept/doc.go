// Package accept provides acceptance criteria for the ALNS engine.
//
// A criterion decides whether a candidate solution replaces the current one.
// The engine consults it only for candidates that do not improve on current
// (Best and Better outcomes bypass acceptance), and never with a non-finite
// candidate objective. Criteria read objective values only.
//
// Families:
//
//   - Always, HillClimbing, RandomAccept — stateless or probability-driven
//     baselines.
//
//   - ThresholdAccepting, RecordToRecordTravel, SimulatedAnnealing — a scalar
//     threshold/temperature gates worsening candidates and decays across
//     calls, linearly (T ← max(end, T−step)) or exponentially
//     (T ← max(end, T·step)). SimulatedAnnealing and RecordToRecordTravel
//     also offer autofit constructors that derive (start, step) from a
//     worsening fraction of the initial objective over an iteration budget;
//     the SimulatedAnnealing variant also takes a target acceptance
//     probability for that worsening.
//
//   - LateAcceptance — compares against the current objective from a fixed
//     number of calls ago (ring-buffer history).
//
//   - GreatDeluge, NonLinearGreatDeluge — a falling water level gates
//     candidates against the best objective.
//
//   - All, Any — logical combinators; every sub-criterion is evaluated on
//     every call so stateful thresholds stay in lockstep.
//
// Determinism: criteria that randomize (SimulatedAnnealing, RandomAccept)
// draw from the shared rng exactly once per call, after the repair operator
// in the engine's fixed RNG consumption order.
//
// All criteria are stateful and single-use: construct a fresh value for each
// Iterate call.
package accept
