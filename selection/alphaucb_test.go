package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/selection"
)

func TestNewAlphaUCB_Validation(t *testing.T) {
	_, err := selection.NewAlphaUCB(validScores(), 0, 1, 1)
	assert.ErrorIs(t, err, selection.ErrAlphaRange)

	_, err = selection.NewAlphaUCB(validScores(), 1.5, 1, 1)
	assert.ErrorIs(t, err, selection.ErrAlphaRange)

	_, err = selection.NewAlphaUCB([]float64{5, 2, 1}, 0.05, 1, 1)
	assert.ErrorIs(t, err, selection.ErrScoreLength)

	_, err = selection.NewAlphaUCB(validScores(), 0.05, 0, 1)
	assert.ErrorIs(t, err, selection.ErrNoOperators)
}

func TestAlphaUCB_EveryArmPlayedOnceBeforeAnyRepeat(t *testing.T) {
	const (
		numDestroy = 3
		numRepair  = 2
	)
	sel, err := selection.NewAlphaUCB(validScores(), 0.05, numDestroy, numRepair)
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for i := 0; i < numDestroy*numRepair; i++ {
		dIdx, rIdx := sel.Select(nil, nil, nil)
		pair := [2]int{dIdx, rIdx}
		assert.False(t, seen[pair], "pair %v repeated before the grid was exhausted", pair)
		seen[pair] = true
		sel.Update(&stubState{}, dIdx, rIdx, alns.Rejected)
	}

	assert.Len(t, seen, numDestroy*numRepair)
}

func TestAlphaUCB_ExploitsHighestMeanReward(t *testing.T) {
	sel, err := selection.NewAlphaUCB(validScores(), 0.05, 2, 1)
	require.NoError(t, err)

	// Prime both arms: arm (0,0) earns the Best score, arm (1,0) the
	// Rejected score.
	dIdx, rIdx := sel.Select(nil, nil, nil)
	sel.Update(&stubState{}, dIdx, rIdx, alns.Best)
	dIdx, rIdx = sel.Select(nil, nil, nil)
	sel.Update(&stubState{}, dIdx, rIdx, alns.Rejected)

	// μ = [5, 0.5] with equal play counts: the confidence bonus cancels and
	// the high-reward arm must win.
	dIdx, rIdx = sel.Select(nil, nil, nil)
	assert.Equal(t, 0, dIdx)
	assert.Equal(t, 0, rIdx)
}

func TestAlphaUCB_IsDeterministic(t *testing.T) {
	run := func() [][2]int {
		sel, err := selection.NewAlphaUCB(validScores(), 0.05, 2, 2)
		require.NoError(t, err)

		var trace [][2]int
		outcomes := []alns.Outcome{alns.Best, alns.Rejected, alns.Better, alns.Accepted}
		for i := 0; i < 32; i++ {
			dIdx, rIdx := sel.Select(nil, nil, nil)
			trace = append(trace, [2]int{dIdx, rIdx})
			sel.Update(&stubState{}, dIdx, rIdx, outcomes[i%len(outcomes)])
		}

		return trace
	}

	assert.Equal(t, run(), run(), "AlphaUCB consumes no randomness")
}
