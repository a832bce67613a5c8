package puzzles

import (
	"quantumlab/pkg/engine/geom"
	"quantumlab/pkg/game/widgets"
)

// Superposition models a two-door measurement demonstration. Until the
// detector fires, both doors are ghosted and closed, a weighted "maybe"
// across states. Activation collapses the state: one door is chosen
// uniformly and becomes the only real, open exit.
//
// Deactivating the detector reverts to the uncollapsed state. Resetting a
// measured state is not physically motivated, but the lab keeps it as a
// demonstration mode: re-activating the detector draws fresh.
type Superposition struct {
	Detector *widgets.Terminal
	Doors    []*widgets.Door

	rng       Rand
	collapsed bool
	chosen    int
}

// NewSuperposition wires the detector's toggle callback to the collapse
// transition. The doors are expected to start closed and ghosted.
func NewSuperposition(detector *widgets.Terminal, doors []*widgets.Door, rng Rand) *Superposition {
	p := &Superposition{
		Detector: detector,
		Doors:    doors,
		rng:      rng,
		chosen:   -1,
	}
	detector.OnToggle = p.onDetector
	return p
}

// Name returns the display name of the puzzle.
func (p *Superposition) Name() string {
	return "Superposition Bay"
}

// Solved reports whether the state has collapsed onto an open door.
func (p *Superposition) Solved() bool {
	return p.collapsed && p.chosen >= 0 && p.Doors[p.chosen].Open
}

// Collapsed reports whether a measurement is currently in effect.
func (p *Superposition) Collapsed() bool {
	return p.collapsed
}

func (p *Superposition) onDetector(active bool) {
	switch {
	case active && !p.collapsed:
		p.collapsed = true
		p.chosen = p.rng.Intn(len(p.Doors))
		for i, door := range p.Doors {
			door.Open = i == p.chosen
			door.Ghost = false
		}
	case !active && p.collapsed:
		p.collapsed = false
		p.chosen = -1
		for _, door := range p.Doors {
			door.Open = false
			door.Ghost = true
		}
	}
}

// SolidRects returns the rectangles of doors that currently block movement.
func (p *Superposition) SolidRects() []geom.Rect {
	var rects []geom.Rect
	for _, door := range p.Doors {
		if door.Solid() {
			rects = append(rects, door.Rect)
		}
	}
	return rects
}

// Readouts returns no HUD lines; the doors tell the story.
func (p *Superposition) Readouts() []string {
	return nil
}
