package selection_test

import (
	"github.com/katalvlaran/alns"
)

// stubState is the minimal alns.State used by the selection tests.
type stubState struct {
	obj float64
}

func (s *stubState) Objective() float64 { return s.obj }

func (s *stubState) Clone() alns.State {
	c := *s

	return &c
}

// ctxState additionally carries a context vector for the bandit tests.
type ctxState struct {
	stubState
	ctx []float64
}

func (s *ctxState) Context() []float64 { return s.ctx }

// validScores is the canonical non-increasing score vector used throughout.
func validScores() []float64 { return []float64{5, 2, 1, 0.5} }
