// Package stop - sentinel errors.
package stop

import "errors"

var (
	// ErrNegativeIterations is returned when an iteration budget is negative.
	ErrNegativeIterations = errors.New("stop: iteration budget must be non-negative")

	// ErrPositiveIterations is returned when a stagnation window is below one.
	ErrPositiveIterations = errors.New("stop: stagnation window must be at least one")

	// ErrNegativeDuration is returned when a runtime budget is negative.
	ErrNegativeDuration = errors.New("stop: runtime budget must be non-negative")
)
