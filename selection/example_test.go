package selection_test

import (
	"fmt"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/selection"
)

// ExampleNewRouletteWheel shows how outcome credit reshapes the operator
// weights: the destroy operator that keeps finding new bests pulls ahead.
func ExampleNewRouletteWheel() {
	sel, err := selection.NewRouletteWheel([]float64{5, 2, 1, 0.5}, 0.8, 2, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Operator 0 produced a new best; operator 1 got rejected.
	sel.Update(nil, 0, 0, alns.Best)
	sel.Update(nil, 1, 0, alns.Rejected)

	fmt.Printf("destroy weights: %.2f\n", sel.DestroyWeights())
	// Output:
	// destroy weights: [1.80 0.90]
}

// ExampleNewAlphaUCB shows the exploration phase: every pair in the grid is
// played once before any pair repeats, in deterministic order.
func ExampleNewAlphaUCB() {
	sel, err := selection.NewAlphaUCB([]float64{5, 2, 1, 0.5}, 0.05, 2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i := 0; i < 4; i++ {
		dIdx, rIdx := sel.Select(nil, nil, nil)
		sel.Update(nil, dIdx, rIdx, alns.Rejected)
		fmt.Printf("(%d, %d)\n", dIdx, rIdx)
	}
	// Output:
	// (0, 0)
	// (0, 1)
	// (1, 0)
	// (1, 1)
}
