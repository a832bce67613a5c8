// Package input defines the per-frame input snapshot consumed by the game
// core. Frontends translate device state into a Frame once per tick, so the
// core never polls hardware directly.
package input

// Frame is one tick's worth of digital input.
//
// MoveX/MoveY are digital axes in {-1, 0, +1}; diagonal movement is
// normalized by the consumer. The remaining fields are edge-triggered: true
// only on the tick the key was pressed.
type Frame struct {
	MoveX float64
	MoveY float64

	Interact     bool // activate a nearby interaction
	Advance      bool // request room progression at the exit
	SwitchPlayer bool // rotate control to the next scientist
	Quit         bool // end the session cleanly
}

// Moving reports whether the frame carries any movement input.
func (f Frame) Moving() bool {
	return f.MoveX != 0 || f.MoveY != 0
}
