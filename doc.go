// Package alns is an Adaptive Large Neighborhood Search engine — a reusable
// metaheuristic framework that iteratively improves a caller-supplied
// solution to a combinatorial optimization problem by alternately destroying
// and repairing it, learning along the way which operator pairs perform well.
//
// 🚀 What is alns?
//
//	A deterministic, dependency-light search engine that brings together:
//		• The main loop: select → destroy → repair → classify → accept → stop
//		• Operator selection: RandomSelect, RouletteWheel, SegmentedRouletteWheel,
//		  AlphaUCB, and a contextual multi-armed-bandit bridge
//		• Acceptance criteria: from HillClimbing to SimulatedAnnealing and
//		  GreatDeluge, plus All/Any combinators
//		• Stopping criteria: MaxIterations, MaxRuntime, NoImprovement
//		• Per-iteration statistics and per-operator outcome counters
//
// ✨ Why choose alns?
//
//   - Domain-agnostic – the same engine solves routing, scheduling,
//     cutting-stock, knapsack, TSP… you inject the problem-specific pieces
//   - Reproducible – all randomness flows through one caller-seeded
//     *rand.Rand in a fixed consumption order
//   - Minimization by convention – callers wanting maximization negate
//     their objective
//   - Extensible – strategy families are small interfaces; bring your own
//     scheme, criterion, or bandit policy
//
// Under the hood, everything is organized under three subpackages:
//
//	selection/ — operator selection schemes (adaptive weighting, bandits)
//	accept/    — acceptance criteria (threshold, annealing, deluge, …)
//	stop/      — stopping criteria (budget, wall clock, stagnation)
//
// Quick sketch of one iteration:
//
//	current ──destroy──▶ partial ──repair──▶ candidate
//	   ▲                                        │
//	   └──────── accept / reject ◀──────────────┘
//
// Dive into the package examples for a complete knapsack walkthrough.
//
//	go get github.com/katalvlaran/alns
package alns
