package stop_test

import (
	"fmt"

	"github.com/katalvlaran/alns"
	"github.com/katalvlaran/alns/stop"
)

// ExampleNewMaxIterations drives the criterion the way the engine does: one
// check at the top of each iteration, one iteration per false verdict.
func ExampleNewMaxIterations() {
	crit, err := stop.NewMaxIterations(5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rng := alns.NewRNG(1)
	iterations := 0
	for !crit.Stop(rng, obj(0), obj(0)) {
		iterations++
	}

	fmt.Printf("iterations=%d\n", iterations)
	// Output:
	// iterations=5
}
