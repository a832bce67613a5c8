package puzzles

import (
	"fmt"

	"quantumlab/pkg/engine/geom"
	"quantumlab/pkg/game/widgets"
)

// Entanglement models a correlated pair of switches. A single shared bit is
// flipped by toggling either switch, and every door's open state always
// equals that bit: measurement here correlates there.
type Entanglement struct {
	Switches []*widgets.Terminal
	Doors    []*widgets.Door

	state bool
}

// NewEntanglement wires both switches to the shared state. Construction
// fails unless exactly two switches are supplied; an entangled pair of any
// other size is a configuration error and the game must not start.
func NewEntanglement(switches []*widgets.Terminal, doors []*widgets.Door) (*Entanglement, error) {
	if len(switches) != 2 {
		return nil, fmt.Errorf("entanglement puzzle requires exactly two switches, got %d", len(switches))
	}
	p := &Entanglement{
		Switches: switches,
		Doors:    doors,
	}
	for _, sw := range switches {
		sw.OnToggle = p.onSwitch
	}
	return p, nil
}

// Name returns the display name of the puzzle.
func (p *Entanglement) Name() string {
	return "Entanglement Hall"
}

// Solved reports whether the pair is aligned with every door open.
func (p *Entanglement) Solved() bool {
	if !p.state {
		return false
	}
	for _, door := range p.Doors {
		if !door.Open {
			return false
		}
	}
	return true
}

// State returns the shared measurement bit.
func (p *Entanglement) State() bool {
	return p.state
}

func (p *Entanglement) onSwitch(bool) {
	p.state = !p.state
	for _, door := range p.Doors {
		door.Open = p.state
	}
}

// SolidRects returns the rectangles of doors that currently block movement.
func (p *Entanglement) SolidRects() []geom.Rect {
	var rects []geom.Rect
	for _, door := range p.Doors {
		if door.Solid() {
			rects = append(rects, door.Rect)
		}
	}
	return rects
}

// Readouts returns no HUD lines.
func (p *Entanglement) Readouts() []string {
	return nil
}
