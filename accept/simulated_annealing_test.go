package accept_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/accept"
)

func TestNewSimulatedAnnealing_Validation(t *testing.T) {
	_, err := accept.NewSimulatedAnnealing(0, 1, 1, accept.Linear)
	assert.ErrorIs(t, err, accept.ErrNonPositiveTemperature)

	_, err = accept.NewSimulatedAnnealing(10, -1, 1, accept.Linear)
	assert.ErrorIs(t, err, accept.ErrNonPositiveTemperature)

	_, err = accept.NewSimulatedAnnealing(1, 10, 1, accept.Linear)
	assert.ErrorIs(t, err, accept.ErrEndExceedsStart)

	_, err = accept.NewSimulatedAnnealing(10, 1, 1.5, accept.Exponential)
	assert.ErrorIs(t, err, accept.ErrStepRange)
}

func TestSimulatedAnnealing_AcceptsNonWorsening(t *testing.T) {
	// exp(Δ/T) ≥ 1 > U whenever the candidate is no worse than current, so
	// acceptance is certain regardless of the draw.
	crit, err := accept.NewSimulatedAnnealing(5, 5, 0, accept.Linear)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	for i := 0; i < 100; i++ {
		assert.True(t, crit.Accept(rng, st(0), st(10), st(10)))
		assert.True(t, crit.Accept(rng, st(0), st(10), st(9)))
	}
}

func TestSimulatedAnnealing_RejectsHopelessCandidates(t *testing.T) {
	// The Metropolis probability exp(−1e12) underflows to 0, which can only
	// be accepted on the measure-zero draw U == 0.
	crit, err := accept.NewSimulatedAnnealing(1e-6, 1e-6, 0, accept.Linear)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	for i := 0; i < 100; i++ {
		assert.False(t, crit.Accept(rng, st(0), st(10), st(10+1e6)))
	}
}

func TestSimulatedAnnealing_FixedTemperatureIsMetropolis(t *testing.T) {
	// start == end: the temperature never moves, so the acceptance
	// probability of a fixed gap stays exp(−Δ/T) on every call.
	const temperature = 2.0
	crit, err := accept.NewSimulatedAnnealing(temperature, temperature, 0.5, accept.Exponential)
	require.NoError(t, err)

	assert.Equal(t, temperature, crit.Temperature())
	rng := alns.NewRNG(1)
	for i := 0; i < 50; i++ {
		crit.Accept(rng, st(0), st(10), st(11))
		assert.Equal(t, temperature, crit.Temperature())
	}
}

func TestNewSimulatedAnnealingAutofit_Exponential(t *testing.T) {
	// worse = 0.05, f₀ = 1000, p = 0.5, 8000 iterations:
	// T_start = 0.05·1000/ln 2 ≈ 72.1348, step = (1/T_start)^(1/8000).
	crit, err := accept.NewSimulatedAnnealingAutofit(1000, 0.05, 0.5, 8000, accept.Exponential)
	require.NoError(t, err)

	wantStart := 0.05 * 1000 / math.Ln2
	assert.InDelta(t, 72.1348, crit.Temperature(), 1e-4)
	assert.InDelta(t, wantStart, crit.Temperature(), 1e-9)

	// One call decays the temperature by exactly the derived step.
	rng := alns.NewRNG(1)
	crit.Accept(rng, st(0), st(1), st(2))
	wantStep := math.Pow(1/wantStart, 1.0/8000)
	assert.InDelta(t, wantStart*wantStep, crit.Temperature(), 1e-9)
}

func TestNewSimulatedAnnealingAutofit_FirstCallProbability(t *testing.T) {
	// By construction a candidate worse·100% worse than the initial solution
	// is accepted with probability acceptProb on the first call; check the
	// Metropolis probability analytically and empirically.
	const (
		initObj    = 1000.0
		worse      = 0.05
		acceptProb = 0.5
	)

	wantTemp := -worse * initObj / math.Log(acceptProb)
	gap := worse * initObj
	assert.InDelta(t, acceptProb, math.Exp(-gap/wantTemp), 1e-12)

	rng := alns.NewRNG(42)
	accepted := 0
	const draws = 100_000
	for i := 0; i < draws; i++ {
		crit, err := accept.NewSimulatedAnnealingAutofit(initObj, worse, acceptProb, 8000, accept.Exponential)
		require.NoError(t, err)
		if crit.Accept(rng, st(initObj), st(initObj), st(initObj+gap)) {
			accepted++
		}
	}

	assert.InDelta(t, acceptProb, float64(accepted)/draws, 0.01)
}

func TestNewSimulatedAnnealingAutofit_Validation(t *testing.T) {
	_, err := accept.NewSimulatedAnnealingAutofit(1000, -0.1, 0.5, 100, accept.Linear)
	assert.ErrorIs(t, err, accept.ErrWorseRange)

	_, err = accept.NewSimulatedAnnealingAutofit(1000, 0.05, 1, 100, accept.Linear)
	assert.ErrorIs(t, err, accept.ErrAcceptProbRange)

	_, err = accept.NewSimulatedAnnealingAutofit(1000, 0.05, 0, 100, accept.Linear)
	assert.ErrorIs(t, err, accept.ErrAcceptProbRange)

	_, err = accept.NewSimulatedAnnealingAutofit(1000, 0.05, 0.5, 0, accept.Linear)
	assert.ErrorIs(t, err, accept.ErrNumIters)

	// worse = 0 derives a zero start temperature, which SA cannot run at.
	_, err = accept.NewSimulatedAnnealingAutofit(1000, 0, 0.5, 100, accept.Exponential)
	assert.ErrorIs(t, err, accept.ErrNonPositiveTemperature)
}
