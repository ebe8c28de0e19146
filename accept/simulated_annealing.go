// Package accept - simulated annealing (Metropolis criterion).
package accept

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/alns"
)

// SimulatedAnnealing accepts a candidate with the Metropolis probability
//
//	exp( (f(current) − f(candidate)) / T_t ) ≥ U,  U ~ Uniform[0,1),
//
// with temperature T decaying across calls. With start == end the criterion
// is a fixed-temperature Metropolis rule.
type SimulatedAnnealing struct {
	sched schedule
}

// NewSimulatedAnnealing constructs the criterion with temperature decaying
// from start to end per the method. Temperatures must be strictly positive
// so the Metropolis exponent is always well defined.
//
// Errors: ErrNonPositiveTemperature, ErrEndExceedsStart, ErrStepRange,
// ErrUnknownMethod.
func NewSimulatedAnnealing(start, end, step float64, method Method) (*SimulatedAnnealing, error) {
	if start <= 0 || end <= 0 || math.IsNaN(start) || math.IsNaN(end) {
		return nil, ErrNonPositiveTemperature
	}
	sched, err := newSchedule(start, end, step, method)
	if err != nil {
		return nil, err
	}

	return &SimulatedAnnealing{sched: sched}, nil
}

// NewSimulatedAnnealingAutofit derives the schedule from an initial
// objective: a candidate worse·100% worse than the initial solution is
// accepted with probability acceptProb on the first call, and the
// temperature decays to 1 over numIters calls:
//
//	start = −worse · |initObj| / ln(acceptProb), end = 1
//	linear:      step = (start − end) / numIters
//	exponential: step = (end / start)^(1/numIters), requires start > 0
//
// The derived parameters pass the same validation as NewSimulatedAnnealing:
// a start temperature below the end of 1 yields ErrEndExceedsStart, and a
// derived step outside its method's valid range yields ErrStepRange.
//
// Errors: ErrWorseRange, ErrAcceptProbRange, ErrNumIters,
// ErrNonPositiveTemperature, ErrEndExceedsStart, ErrStepRange,
// ErrUnknownMethod.
func NewSimulatedAnnealingAutofit(initObj, worse, acceptProb float64, numIters int, method Method) (*SimulatedAnnealing, error) {
	if worse < 0 || worse > 1 || math.IsNaN(worse) {
		return nil, ErrWorseRange
	}
	if acceptProb <= 0 || acceptProb >= 1 || math.IsNaN(acceptProb) {
		return nil, ErrAcceptProbRange
	}
	if numIters < 1 {
		return nil, ErrNumIters
	}

	var (
		start = -worse * math.Abs(initObj) / math.Log(acceptProb)
		end   = 1.0
		step  float64
	)
	switch method {
	case Linear:
		step = (start - end) / float64(numIters)
	case Exponential:
		if start <= 0 {
			return nil, ErrNonPositiveTemperature
		}
		step = math.Pow(end/start, 1/float64(numIters))
	default:
		return nil, ErrUnknownMethod
	}

	return NewSimulatedAnnealing(start, end, step, method)
}

// Accept draws exactly one uniform variate, applies the Metropolis rule at
// the current temperature, then advances the decay.
func (c *SimulatedAnnealing) Accept(rng *rand.Rand, _, current, candidate alns.State) bool {
	prob := math.Exp((current.Objective() - candidate.Objective()) / c.sched.current())
	res := prob >= rng.Float64()
	c.sched.tick()

	return res
}

// Temperature returns the temperature the next call will use.
func (c *SimulatedAnnealing) Temperature() float64 { return c.sched.current() }
