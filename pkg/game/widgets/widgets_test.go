package widgets

import (
	"testing"

	"quantumlab/pkg/engine/geom"
)

func TestSliderAdjustClamps(t *testing.T) {
	s := NewSlider(geom.Vec2{})
	s.Adjust(10)
	if s.Value != s.Max {
		t.Errorf("Value after big positive adjust = %v, want %v", s.Value, s.Max)
	}
	s.Adjust(-100)
	if s.Value != s.Min {
		t.Errorf("Value after big negative adjust = %v, want %v", s.Value, s.Min)
	}
}

func TestSliderStaysInRangeUnderAnySequence(t *testing.T) {
	s := NewSlider(geom.Vec2{})
	deltas := []float64{0.3, -0.9, 0.05, 2.5, -0.1, -3, 0.4999, 0.0001}
	for _, d := range deltas {
		s.Adjust(d)
		if s.Value < s.Min || s.Value > s.Max {
			t.Fatalf("Value %v escaped [%v, %v] after adjust %v", s.Value, s.Min, s.Max, d)
		}
	}
}

func TestTerminalToggleInvokesCallback(t *testing.T) {
	var seen []bool
	term := NewTerminal(geom.Vec2{})
	term.OnToggle = func(active bool) { seen = append(seen, active) }

	term.Toggle()
	term.Toggle()

	if len(seen) != 2 || seen[0] != true || seen[1] != false {
		t.Errorf("callback sequence = %v, want [true false]", seen)
	}
	if term.Active {
		t.Error("terminal should be inactive after two toggles")
	}
}

func TestTerminalToggleWithoutCallback(t *testing.T) {
	term := NewTerminal(geom.Vec2{})
	term.Toggle() // must not panic
	if !term.Active {
		t.Error("terminal should be active after one toggle")
	}
}

func TestDoorSolidity(t *testing.T) {
	d := NewDoor(geom.NewRect(0, 0, 32, 128))
	if !d.Solid() {
		t.Error("closed door should be solid")
	}
	d.Open = true
	if d.Solid() {
		t.Error("open door should not be solid")
	}
}

func TestGhostDoorIsSolidWhileClosed(t *testing.T) {
	// Ghost is a rendering flag only; a closed ghost door still blocks.
	d := NewGhostDoor(geom.NewRect(0, 0, 32, 128))
	if !d.Solid() {
		t.Error("closed ghost door should still be solid")
	}
}
