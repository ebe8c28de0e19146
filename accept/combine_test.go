package accept_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/accept"
)

// countingCriterion records how often it was consulted and answers verdict.
type countingCriterion struct {
	verdict bool
	calls   int
}

func (c *countingCriterion) Accept(_ *rand.Rand, _, _, _ alns.State) bool {
	c.calls++

	return c.verdict
}

func TestCombinators_Validation(t *testing.T) {
	_, err := accept.NewAll()
	assert.ErrorIs(t, err, accept.ErrNoCriteria)

	_, err = accept.NewAny(accept.NewAlways(), nil)
	assert.ErrorIs(t, err, accept.ErrNilCriterion)
}

func TestAll_SingleCriterionIsTransparent(t *testing.T) {
	inner := accept.NewHillClimbing()
	combined, err := accept.NewAll(inner)
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	// All([c]) must behave exactly like c.
	assert.Equal(t, inner.Accept(rng, st(0), st(5), st(4)), combined.Accept(rng, st(0), st(5), st(4)))
	assert.Equal(t, inner.Accept(rng, st(0), st(5), st(6)), combined.Accept(rng, st(0), st(5), st(6)))
}

func TestAny_HillClimbingOrAlwaysIsAlways(t *testing.T) {
	combined, err := accept.NewAny(accept.NewHillClimbing(), accept.NewAlways())
	require.NoError(t, err)
	rng := alns.NewRNG(1)

	for _, cand := range []float64{-100, 5, 100} {
		assert.True(t, combined.Accept(rng, st(0), st(5), st(cand)))
	}
}

func TestAll_ConjunctionSemantics(t *testing.T) {
	yes := &countingCriterion{verdict: true}
	no := &countingCriterion{verdict: false}

	combined, err := accept.NewAll(yes, no)
	require.NoError(t, err)

	assert.False(t, combined.Accept(alns.NewRNG(1), st(0), st(1), st(2)))

	onlyYes, err := accept.NewAll(yes, &countingCriterion{verdict: true})
	require.NoError(t, err)
	assert.True(t, onlyYes.Accept(alns.NewRNG(1), st(0), st(1), st(2)))
}

func TestCombinators_NeverShortCircuit(t *testing.T) {
	first := &countingCriterion{verdict: false}
	second := &countingCriterion{verdict: true}

	all, err := accept.NewAll(first, second)
	require.NoError(t, err)
	any, err := accept.NewAny(second, first)
	require.NoError(t, err)

	rng := alns.NewRNG(1)
	for i := 0; i < 10; i++ {
		all.Accept(rng, st(0), st(1), st(2))
		any.Accept(rng, st(0), st(1), st(2))
	}

	// Stateful criteria must tick on every call regardless of the verdict of
	// their siblings: both saw all 20 calls.
	assert.Equal(t, 20, first.calls)
	assert.Equal(t, 20, second.calls)
}
