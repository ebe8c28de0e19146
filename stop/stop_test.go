package stop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/stop"
)

// obj wraps a bare objective value as an alns.State for criterion tests.
type obj float64

func (o obj) Objective() float64 { return float64(o) }

func (o obj) Clone() alns.State { return o }

func TestNewMaxIterations_Validation(t *testing.T) {
	_, err := stop.NewMaxIterations(-1)
	assert.ErrorIs(t, err, stop.ErrNegativeIterations)
}

func TestMaxIterations_ExactBudget(t *testing.T) {
	crit, err := stop.NewMaxIterations(3)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	assert.False(t, crit.Stop(rng, obj(0), obj(0)))
	assert.False(t, crit.Stop(rng, obj(0), obj(0)))
	assert.False(t, crit.Stop(rng, obj(0), obj(0)))
	assert.True(t, crit.Stop(rng, obj(0), obj(0)), "the fourth check fires: exactly 3 iterations ran")
	assert.True(t, crit.Stop(rng, obj(0), obj(0)), "and it stays fired")
}

func TestMaxIterations_ZeroBudgetStopsImmediately(t *testing.T) {
	crit, err := stop.NewMaxIterations(0)
	require.NoError(t, err)

	assert.True(t, crit.Stop(alns.NewRNG(1), obj(0), obj(0)))
}

func TestNewMaxRuntime_Validation(t *testing.T) {
	_, err := stop.NewMaxRuntime(-time.Second)
	assert.ErrorIs(t, err, stop.ErrNegativeDuration)
}

func TestMaxRuntime_FirstCallEstablishesStart(t *testing.T) {
	crit, err := stop.NewMaxRuntime(20 * time.Millisecond)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	assert.False(t, crit.Stop(rng, obj(0), obj(0)), "the clock starts on the first call")
	assert.False(t, crit.Stop(rng, obj(0), obj(0)), "well inside the budget")

	time.Sleep(30 * time.Millisecond)
	assert.True(t, crit.Stop(rng, obj(0), obj(0)), "budget exceeded")
}

func TestMaxRuntime_ZeroBudget(t *testing.T) {
	crit, err := stop.NewMaxRuntime(0)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	assert.False(t, crit.Stop(rng, obj(0), obj(0)), "the establishing call never stops")
	time.Sleep(time.Millisecond)
	assert.True(t, crit.Stop(rng, obj(0), obj(0)))
}

func TestNewNoImprovement_Validation(t *testing.T) {
	_, err := stop.NewNoImprovement(0)
	assert.ErrorIs(t, err, stop.ErrPositiveIterations)
}

func TestNoImprovement_FiresExactlyAfterWindow(t *testing.T) {
	crit, err := stop.NewNoImprovement(3)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	// Priming call observes the initial best.
	assert.False(t, crit.Stop(rng, obj(10), obj(10)))

	// An improvement resets the stagnation window.
	assert.False(t, crit.Stop(rng, obj(9), obj(9)))

	// Three stagnant checks pass; the third fires.
	assert.False(t, crit.Stop(rng, obj(9), obj(9)))
	assert.False(t, crit.Stop(rng, obj(9), obj(9)))
	assert.True(t, crit.Stop(rng, obj(9), obj(9)), "exactly 3 stagnant iterations after the last improvement")
}

func TestNoImprovement_EqualObjectiveIsNotImprovement(t *testing.T) {
	crit, err := stop.NewNoImprovement(1)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	assert.False(t, crit.Stop(rng, obj(5), obj(5)))
	assert.True(t, crit.Stop(rng, obj(5), obj(5)), "an equal best must not reset the window")
}

func TestNoImprovement_ImprovementKeepsSearchAlive(t *testing.T) {
	crit, err := stop.NewNoImprovement(2)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	best := 100.0
	for i := 0; i < 50; i++ {
		best-- // strict improvement every iteration
		assert.False(t, crit.Stop(rng, obj(best), obj(best)))
	}
}
