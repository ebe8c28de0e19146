package accept_test

import (
	"github.com/katalvlaran/alns"
)

// obj wraps a bare objective value as an alns.State for criterion tests.
type obj float64

func (o obj) Objective() float64 { return float64(o) }

func (o obj) Clone() alns.State { return o }

// st is shorthand for building the (best, current, candidate) triple.
func st(v float64) alns.State { return obj(v) }
