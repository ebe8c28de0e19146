// Package alns - the iteration engine.
//
// The engine owns the registered destroy/repair operators, the statistics
// recorder, and the on-best callback list. One Iterate call runs the whole
// search loop:
//
//	evaluate → select operators → destroy → repair → classify → accept → stop
//
// Design:
//   - Single-threaded cooperative: user operator code runs synchronously to
//     completion between engine steps; there are no suspension points.
//   - Deterministic: the rng is consulted in a fixed per-iteration order
//     (selection scheme → destroy → repair → acceptance criterion), so a
//     fixed seed with identical inputs reproduces the trajectory exactly.
//   - Ownership: the engine takes ownership of the initial state at entry;
//     best and current are kept as fully independent values, and no
//     intermediate candidate is retained past its classification step.
//
// Contracts:
//   - At least one destroy and one repair operator must be registered.
//   - The selection scheme's operator counts must match the registry.
//   - Objective comparison is strict <; minimization is the convention.
//
// Complexity: O(iterations · (cost of user operators + scheme bookkeeping));
// statistics add O(iterations) memory unless disabled.
package alns

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// namedDestroy pairs a registered destroy operator with its unique name.
type namedDestroy struct {
	name string
	fn   DestroyFunc
}

// namedRepair pairs a registered repair operator with its unique name.
type namedRepair struct {
	name string
	fn   RepairFunc
}

// ALNS is the Adaptive Large Neighborhood Search engine. Construct with New,
// register operators, then call Iterate. Concurrent Iterate calls on the
// same engine are not supported.
type ALNS struct {
	rng *rand.Rand

	destroy []namedDestroy
	repair  []namedRepair

	callbacks []BestCallback

	logger       *slog.Logger
	collectStats bool
	strict       bool
}

// Option configures optional engine behavior. Use with New(rng, opts...).
type Option func(*ALNS)

// WithLogger installs a structured logger for non-fatal warnings (non-finite
// candidate objectives). A nil logger keeps warnings disabled (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(a *ALNS) {
		a.logger = logger
	}
}

// WithoutStatistics disables per-iteration statistics recording for maximum
// throughput. Result.Stats then reports zero iterations.
func WithoutStatistics() Option {
	return func(a *ALNS) {
		a.collectStats = false
	}
}

// WithStrictObjective makes a non-finite candidate objective fatal: Iterate
// aborts with an *ObjectiveError instead of rejecting the candidate and
// continuing.
func WithStrictObjective() Option {
	return func(a *ALNS) {
		a.strict = true
	}
}

// New constructs an engine around the given random source. A nil rng selects
// the deterministic default stream (see NewRNG; seed-0 policy). Statistics
// collection defaults to on.
func New(rng *rand.Rand, opts ...Option) *ALNS {
	a := &ALNS{
		rng:          rng,
		collectStats: true,
	}
	if a.rng == nil {
		a.rng = NewRNG(0)
	}

	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// RNG exposes the engine's random source. It is shared by reference with the
// selection scheme and the operators during Iterate; do not use it from
// other goroutines while a search runs.
func (a *ALNS) RNG() *rand.Rand { return a.rng }

// AddDestroyOperator registers fn as a destroy operator under name.
// Names must be non-empty and unique within the destroy kind.
func (a *ALNS) AddDestroyOperator(name string, fn DestroyFunc) error {
	if err := validateRegistration(name, fn == nil, destroyNames(a.destroy)); err != nil {
		return err
	}
	a.destroy = append(a.destroy, namedDestroy{name: name, fn: fn})

	return nil
}

// AddRepairOperator registers fn as a repair operator under name.
// Names must be non-empty and unique within the repair kind.
func (a *ALNS) AddRepairOperator(name string, fn RepairFunc) error {
	if err := validateRegistration(name, fn == nil, repairNames(a.repair)); err != nil {
		return err
	}
	a.repair = append(a.repair, namedRepair{name: name, fn: fn})

	return nil
}

// DestroyOperators returns the registered destroy operator names in
// registration order (the index order seen by selection schemes).
func (a *ALNS) DestroyOperators() []string { return destroyNames(a.destroy) }

// RepairOperators returns the registered repair operator names in
// registration order (the index order seen by selection schemes).
func (a *ALNS) RepairOperators() []string { return repairNames(a.repair) }

// OnBest registers a callback invoked whenever a new global best is found.
// See BestCallback for the replacement protocol.
func (a *ALNS) OnBest(cb BestCallback) {
	if cb != nil {
		a.callbacks = append(a.callbacks, cb)
	}
}

// Iterate runs the search from initial until the stopping criterion fires.
//
// Contracts:
//   - initial, sel, crit and stopper must be non-nil.
//   - At least one destroy and one repair operator must be registered, and
//     sel must have been constructed for exactly those counts.
//   - params is forwarded verbatim to every operator on every call; nil is valid.
//
// Errors: configuration sentinels (ErrNoDestroyOperators, ErrNoRepairOperators,
// ErrOperatorCountMismatch, ErrContextRequired, …) before the first iteration;
// *OperatorError when user code fails; *ObjectiveError in strict mode.
func (a *ALNS) Iterate(initial State, sel OperatorSelector, crit AcceptanceCriterion, stopper StoppingCriterion, params Params) (Result, error) {
	if err := a.validateIterate(initial, sel, crit, stopper); err != nil {
		return Result{}, err
	}

	// The engine takes ownership of initial: it becomes current, and best
	// starts as an independent copy so the two never share structure.
	var (
		best = initial.Clone()
		curr = initial
	)

	stats := newStatistics(destroyNames(a.destroy), repairNames(a.repair))

	var (
		it        int       // zero-based iteration index
		iterStart time.Time // wall-clock start of the running iteration
		dIdx      int       // selected destroy operator index
		rIdx      int       // selected repair operator index
		destroyed State     // output of the destroy operator
		cand      State     // output of the repair operator
		candObj   float64   // candidate objective, evaluated once
		outcome   Outcome   // category of the running iteration
		improved  bool      // candidate strictly improves on current
		err       error
	)

	for it = 0; !stopper.Stop(a.rng, best, curr); it++ {
		iterStart = time.Now()

		// Stage 1 - operator pair selection (first rng consumer).
		dIdx, rIdx = sel.Select(a.rng, best, curr)
		if dIdx < 0 || dIdx >= len(a.destroy) || rIdx < 0 || rIdx >= len(a.repair) {
			return Result{}, fmt.Errorf("%w: got (%d, %d) at iteration %d", ErrSelectionOutOfRange, dIdx, rIdx, it)
		}
		d, r := a.destroy[dIdx], a.repair[rIdx]

		// Stage 2 - destroy then repair. The destroy operator receives a
		// private clone, so current stays intact whatever user code does.
		destroyed, err = d.fn(curr.Clone(), a.rng, params)
		if err != nil {
			return Result{}, &OperatorError{Iteration: it, DestroyName: d.name, Err: err}
		}
		cand, err = r.fn(destroyed, a.rng, params)
		if err != nil {
			return Result{}, &OperatorError{Iteration: it, DestroyName: d.name, RepairName: r.name, Err: err}
		}

		// Stage 3 - classification and state transition.
		candObj = cand.Objective()
		if math.IsNaN(candObj) || math.IsInf(candObj, 0) {
			// The acceptance criterion must never see a non-finite candidate.
			if a.strict {
				return Result{}, &ObjectiveError{Iteration: it, DestroyName: d.name, RepairName: r.name, Objective: candObj}
			}
			a.warn("rejecting candidate with non-finite objective",
				slog.Int("iteration", it),
				slog.String("destroy", d.name),
				slog.String("repair", r.name),
				slog.Float64("objective", candObj))
			outcome = Rejected
		} else {
			outcome, improved = classifyImprovement(candObj, curr.Objective(), best.Objective())
			switch {
			case outcome == Best:
				best = cand.Clone()
				curr = cand
				best, curr = a.fireOnBest(best, curr)
			case improved: // Better
				curr = cand
			case crit.Accept(a.rng, best, curr, cand):
				outcome = Accepted
				curr = cand
			default:
				outcome = Rejected
			}
		}

		// Stage 4 - learning update, then bookkeeping.
		sel.Update(cand, dIdx, rIdx, outcome)
		if a.collectStats {
			stats.count(dIdx, rIdx, outcome)
			stats.record(best.Objective(), curr.Objective(), candObj, time.Since(iterStart))
		}
	}

	return Result{Best: best, Stats: stats}, nil
}

// fireOnBest invokes each registered callback at most once with the new best.
// A returned state that strictly improves the objective replaces both best
// and current; otherwise the return is ignored.
func (a *ALNS) fireOnBest(best, curr State) (State, State) {
	var (
		cb       BestCallback
		polished State
	)
	for _, cb = range a.callbacks {
		polished = cb(best, a.rng)
		if polished != nil && polished.Objective() < best.Objective() {
			best = polished.Clone()
			curr = polished
		}
	}

	return best, curr
}

// validateIterate performs all pre-loop configuration checks so that every
// configuration error surfaces before the first iteration.
func (a *ALNS) validateIterate(initial State, sel OperatorSelector, crit AcceptanceCriterion, stopper StoppingCriterion) error {
	if initial == nil {
		return ErrInitialStateNil
	}
	if sel == nil {
		return ErrNilSelector
	}
	if crit == nil {
		return ErrNilAcceptance
	}
	if stopper == nil {
		return ErrNilStopping
	}
	if len(a.destroy) == 0 {
		return ErrNoDestroyOperators
	}
	if len(a.repair) == 0 {
		return ErrNoRepairOperators
	}
	if sel.NumDestroy() != len(a.destroy) || sel.NumRepair() != len(a.repair) {
		return fmt.Errorf("%w: scheme built for (%d, %d), registered (%d, %d)",
			ErrOperatorCountMismatch, sel.NumDestroy(), sel.NumRepair(), len(a.destroy), len(a.repair))
	}
	if cr, ok := sel.(ContextRequirer); ok && cr.RequiresContext() {
		if _, ok = initial.(ContextualState); !ok {
			return ErrContextRequired
		}
	}

	return nil
}

// warn emits a structured warning when a logger is configured.
func (a *ALNS) warn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}

// destroyNames projects the registry onto its name column.
func destroyNames(ops []namedDestroy) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.name
	}

	return names
}

// repairNames projects the registry onto its name column.
func repairNames(ops []namedRepair) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.name
	}

	return names
}

// validateRegistration guards AddDestroyOperator / AddRepairOperator.
func validateRegistration(name string, fnNil bool, taken []string) error {
	if name == "" {
		return ErrEmptyOperatorName
	}
	if fnNil {
		return ErrNilOperator
	}
	for _, t := range taken {
		if t == name {
			return fmt.Errorf("%w: %q", ErrDuplicateOperator, name)
		}
	}

	return nil
}
