package accept_test

import (
	"fmt"

	"github.com/katalvlaran/alns/accept"
)

// ExampleNewSimulatedAnnealingAutofit derives an annealing schedule from the
// initial objective: a candidate 5% worse than the initial solution is
// accepted with probability 0.5 on the first call, decaying over 8000 calls.
func ExampleNewSimulatedAnnealingAutofit() {
	crit, err := accept.NewSimulatedAnnealingAutofit(1000, 0.05, 0.5, 8000, accept.Exponential)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("start temperature: %.4f\n", crit.Temperature())
	// Output:
	// start temperature: 72.1348
}

// ExampleNewThresholdAccepting walks the threshold down a linear schedule:
// a gap of 3 passes at first and drowns once the threshold sinks below it.
func ExampleNewThresholdAccepting() {
	crit, err := accept.NewThresholdAccepting(5, 0, 2, accept.Linear)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i := 0; i < 3; i++ {
		fmt.Printf("threshold %.0f: accept gap 3 = %v\n", crit.Threshold(), crit.Accept(nil, st(0), st(10), st(13)))
	}
	// Output:
	// threshold 5: accept gap 3 = true
	// threshold 3: accept gap 3 = true
	// threshold 1: accept gap 3 = false
}
