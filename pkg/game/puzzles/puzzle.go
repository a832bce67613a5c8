// Package puzzles implements the four quantum demonstration puzzles:
// superposition collapse, entanglement correlation, the uncertainty
// trade-off and tunneling probability. Each puzzle owns references to the
// widgets it reacts to; its solved state is always derived from current
// widget state, never stored.
package puzzles

import "quantumlab/pkg/engine/geom"

// Puzzle is the contract every variant satisfies. Solved must be a pure
// predicate with no side effects; SolidRects must recompute door solidity on
// every call because doors open and close at runtime.
type Puzzle interface {
	Name() string
	Solved() bool
	SolidRects() []geom.Rect

	// Readouts returns HUD content lines for the puzzle, possibly none.
	Readouts() []string
}

// Rand supplies the random draws puzzles need. *math/rand.Rand satisfies it;
// tests inject fixed sources to make collapse choices and tunneling attempts
// deterministic.
type Rand interface {
	// Float64 returns a sample in [0.0, 1.0).
	Float64() float64
	// Intn returns a uniform sample in [0, n).
	Intn(n int) int
}
