// Package widgets contains the interactive lab fixtures puzzles are built
// from: clamped sliders, toggle terminals and doors. Widgets carry their
// world-space geometry but know nothing about rendering.
package widgets

import "quantumlab/pkg/engine/geom"

// Slider is a clamped scalar control in [Min, Max].
type Slider struct {
	Pos   geom.Vec2
	Value float64
	Min   float64
	Max   float64
	Width float64 // bar width in world units, for layout and the dump view
}

// NewSlider creates a slider over [0, 1] starting at the midpoint.
func NewSlider(pos geom.Vec2) *Slider {
	return &Slider{Pos: pos, Value: 0.5, Min: 0, Max: 1, Width: 200}
}

// Adjust moves the value by delta, clamping into [Min, Max]. Out-of-range
// deltas are absorbed silently rather than rejected.
func (s *Slider) Adjust(delta float64) {
	s.Value = geom.Clamp(s.Value+delta, s.Min, s.Max)
}

// Terminal is a boolean switch with an optional synchronous toggle callback.
type Terminal struct {
	Pos      geom.Vec2
	Active   bool
	OnToggle func(active bool)
}

// NewTerminal creates an inactive terminal at pos.
func NewTerminal(pos geom.Vec2) *Terminal {
	return &Terminal{Pos: pos}
}

// Toggle flips the terminal and invokes the callback, if any, with the new
// state before returning.
func (t *Terminal) Toggle() {
	t.Active = !t.Active
	if t.OnToggle != nil {
		t.OnToggle(t.Active)
	}
}

// Door is a rectangular obstacle. Open gates collision: closed doors are
// solid, open doors are not. Ghost marks an unrealized possibility and is a
// rendering-only flag with no effect on solidity.
type Door struct {
	Rect  geom.Rect
	Open  bool
	Ghost bool
}

// NewDoor creates a closed door occupying rect.
func NewDoor(rect geom.Rect) *Door {
	return &Door{Rect: rect}
}

// NewGhostDoor creates a closed door rendered translucent.
func NewGhostDoor(rect geom.Rect) *Door {
	return &Door{Rect: rect, Ghost: true}
}

// Solid reports whether the door currently blocks movement.
func (d *Door) Solid() bool {
	return !d.Open
}
