// Package alns - core contracts shared by the engine and its strategy families.
//
// This file defines the capability contracts the caller supplies (solution
// states, destroy/repair operators), the strategy interfaces the engine
// consumes (operator selection, acceptance, stopping), and the sentinel
// errors of the root package.
//
// Design:
//   - Accept interfaces, return structs: the engine consumes the small
//     interfaces below and produces a concrete Result.
//   - Strict sentinels: configuration problems surface as errors.Is-able
//     values declared here; dynamic details ride in typed wrappers
//     (OperatorError, ObjectiveError).
//   - Value independence: Clone must produce a state whose mutation can
//     never be observed through the original, so best and current remain
//     fully independent copies inside the engine.
package alns

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInitialStateNil is returned by Iterate when the initial state is nil.
	ErrInitialStateNil = errors.New("alns: initial state is nil")

	// ErrNoDestroyOperators is returned by Iterate when no destroy operator
	// has been registered on the engine.
	ErrNoDestroyOperators = errors.New("alns: no destroy operators registered")

	// ErrNoRepairOperators is returned by Iterate when no repair operator
	// has been registered on the engine.
	ErrNoRepairOperators = errors.New("alns: no repair operators registered")

	// ErrOperatorCountMismatch is returned by Iterate when the selection
	// scheme was constructed for operator counts that disagree with the
	// operators registered on the engine.
	ErrOperatorCountMismatch = errors.New("alns: selection scheme operator counts disagree with registered operators")

	// ErrContextRequired is returned by Iterate when the selection scheme
	// requires state contexts but the initial state does not implement
	// ContextualState.
	ErrContextRequired = errors.New("alns: selection scheme requires states to provide a context vector")

	// ErrNilSelector is returned by Iterate when the selection scheme is nil.
	ErrNilSelector = errors.New("alns: operator selector is nil")

	// ErrNilAcceptance is returned by Iterate when the acceptance criterion is nil.
	ErrNilAcceptance = errors.New("alns: acceptance criterion is nil")

	// ErrNilStopping is returned by Iterate when the stopping criterion is nil.
	ErrNilStopping = errors.New("alns: stopping criterion is nil")

	// ErrEmptyOperatorName is returned when registering an operator under an
	// empty name.
	ErrEmptyOperatorName = errors.New("alns: operator name must not be empty")

	// ErrDuplicateOperator is returned when registering an operator under a
	// name already taken within its kind.
	ErrDuplicateOperator = errors.New("alns: operator name already registered for this kind")

	// ErrNilOperator is returned when registering a nil operator function.
	ErrNilOperator = errors.New("alns: operator function is nil")

	// ErrSelectionOutOfRange is returned when a selection scheme yields an
	// operator index outside the registered range.
	ErrSelectionOutOfRange = errors.New("alns: selected operator index out of range")

	// ErrInvalidObjective indicates a candidate objective that is NaN or ±Inf.
	// In the default (lenient) mode the candidate is rejected and the search
	// continues; in strict mode Iterate aborts with an ObjectiveError
	// wrapping this sentinel.
	ErrInvalidObjective = errors.New("alns: candidate objective is not a finite number")

	// ErrOperatorFailed indicates that user operator code returned an error;
	// it is always wrapped inside an OperatorError.
	ErrOperatorFailed = errors.New("alns: operator failed")
)

// State is the capability contract every solution representation must
// satisfy. The engine treats states as opaque values.
//
// Contracts:
//   - Objective is deterministic for a given state and returns the value to
//     minimize (negate it for maximization).
//   - Clone returns a deep, independent copy: mutating the clone must never
//     be observable through the receiver, and vice versa.
type State interface {
	// Objective returns the objective value of this state. Lower is better.
	Objective() float64

	// Clone returns an independent deep copy of this state.
	Clone() State
}

// ContextualState extends State with a context vector for contextual bandit
// selection schemes. The vector dimensionality must be fixed across a run.
type ContextualState interface {
	State

	// Context returns a real-valued feature vector describing this state.
	Context() []float64
}

// Params is the configuration map forwarded verbatim to every operator on
// every call. The engine does not interpret it; operators must tolerate
// (ignore) unknown keys. A nil map is valid.
type Params map[string]any

// DestroyFunc partially un-makes a solution, producing an incomplete state.
// The engine passes a private clone of the current solution, so the function
// may mutate s in place and return it, or build a fresh state.
// A non-nil error aborts the search.
type DestroyFunc func(s State, rng *rand.Rand, params Params) (State, error)

// RepairFunc completes an incomplete state into a feasible solution.
// It receives the destroyed state produced by the paired DestroyFunc and the
// same rules apply: in-place mutation is allowed, errors abort the search.
type RepairFunc func(s State, rng *rand.Rand, params Params) (State, error)

// BestCallback is invoked whenever a new global best is found. A non-nil
// return value that strictly improves on the new best replaces both best and
// current (intended for caller-side polishing, e.g. a local search pass);
// any other return is ignored. Callbacks run synchronously and are invoked
// at most once per iteration each.
type BestCallback func(best State, rng *rand.Rand) State

// OperatorSelector chooses a (destroy, repair) operator pair each iteration
// and learns from observed outcomes. Implementations live in the selection
// subpackage; any value satisfying this interface may be injected.
//
// Contracts:
//   - Select must return indices within [0, NumDestroy) × [0, NumRepair).
//   - Select may consume rng; it is consulted before the destroy operator
//     in the engine's fixed RNG order.
//   - Update is called exactly once per iteration, after classification.
type OperatorSelector interface {
	// Select returns the (destroy, repair) operator indices to apply.
	Select(rng *rand.Rand, best, current State) (dIdx, rIdx int)

	// Update records the outcome observed for the given operator pair.
	Update(candidate State, dIdx, rIdx int, outcome Outcome)

	// NumDestroy reports the destroy-operator count the scheme was built for.
	NumDestroy() int

	// NumRepair reports the repair-operator count the scheme was built for.
	NumRepair() int
}

// ContextRequirer is an optional capability of an OperatorSelector. When a
// scheme reports that it requires contexts, Iterate fails early with
// ErrContextRequired unless the initial state implements ContextualState.
type ContextRequirer interface {
	// RequiresContext reports whether states must provide Context().
	RequiresContext() bool
}

// AcceptanceCriterion decides whether a candidate replaces the current
// solution. Implementations live in the accept subpackage.
//
// Contracts:
//   - Accept is called only for candidates that are no better than current;
//     Best and Better outcomes never reach the criterion.
//   - The candidate objective is always finite when Accept is called.
//   - Criteria read objective values only; they must not mutate states.
//   - rng is consulted after the repair operator in the engine's fixed
//     RNG order; criteria must not pre-draw.
type AcceptanceCriterion interface {
	Accept(rng *rand.Rand, best, current, candidate State) bool
}

// StoppingCriterion decides when the search terminates. It is called at the
// top of each iteration, before any operator runs. Criteria are stateful and
// single-use per Iterate call; the engine never resets them.
type StoppingCriterion interface {
	Stop(rng *rand.Rand, best, current State) bool
}

// OperatorError is the typed error surfaced when user operator code fails.
// It carries the iteration index and the operator pair in flight so callers
// can attribute the failure; errors.Is(err, ErrOperatorFailed) holds, and
// Unwrap exposes the user error for further inspection.
type OperatorError struct {
	// Iteration is the zero-based iteration index at which the failure occurred.
	Iteration int

	// DestroyName and RepairName identify the operator pair in flight.
	// RepairName is empty when the destroy operator itself failed.
	DestroyName string
	RepairName  string

	// Err is the error returned by the user operator.
	Err error
}

// Error implements the error interface.
func (e *OperatorError) Error() string {
	if e.RepairName == "" {
		return fmt.Sprintf("alns: destroy operator %q failed at iteration %d: %v", e.DestroyName, e.Iteration, e.Err)
	}

	return fmt.Sprintf("alns: repair operator %q failed at iteration %d (after destroy %q): %v", e.RepairName, e.Iteration, e.DestroyName, e.Err)
}

// Unwrap exposes the underlying user error to errors.Is / errors.As.
func (e *OperatorError) Unwrap() error { return e.Err }

// Is reports ErrOperatorFailed as the kind of every OperatorError.
func (e *OperatorError) Is(target error) bool { return target == ErrOperatorFailed }

// ObjectiveError is the typed error surfaced in strict mode when a candidate
// objective is not a finite real number. errors.Is(err, ErrInvalidObjective)
// holds.
type ObjectiveError struct {
	// Iteration is the zero-based iteration index of the offending candidate.
	Iteration int

	// DestroyName and RepairName identify the operator pair that produced it.
	DestroyName string
	RepairName  string

	// Objective is the offending value (NaN or ±Inf).
	Objective float64
}

// Error implements the error interface.
func (e *ObjectiveError) Error() string {
	return fmt.Sprintf("alns: non-finite candidate objective %v at iteration %d (destroy %q, repair %q)", e.Objective, e.Iteration, e.DestroyName, e.RepairName)
}

// Is reports ErrInvalidObjective as the kind of every ObjectiveError.
func (e *ObjectiveError) Is(target error) bool { return target == ErrInvalidObjective }
