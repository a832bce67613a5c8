package puzzles

import (
	"fmt"

	"quantumlab/pkg/engine/geom"
	"quantumlab/pkg/game/widgets"
)

// Solve thresholds for the beam calibration: position must be pinned down
// while momentum spread stays generous.
const (
	uncertaintyPositionMax = 0.35
	uncertaintyMomentumMin = 0.65
)

// Uncertainty models the position/momentum trade-off with two coupled
// sliders. There is no discrete transition; the solved predicate is
// re-evaluated from the slider values on every check.
type Uncertainty struct {
	Position *widgets.Slider
	Momentum *widgets.Slider
}

// NewUncertainty creates the puzzle over the two sliders.
func NewUncertainty(position, momentum *widgets.Slider) *Uncertainty {
	return &Uncertainty{Position: position, Momentum: momentum}
}

// Name returns the display name of the puzzle.
func (p *Uncertainty) Name() string {
	return "Uncertainty Workshop"
}

// Solved reports whether the beam is calibrated: position at or below 0.35
// and momentum at or above 0.65.
func (p *Uncertainty) Solved() bool {
	return p.Position.Value <= uncertaintyPositionMax && p.Momentum.Value >= uncertaintyMomentumMin
}

// Adjust shifts both sliders; each clamps independently.
func (p *Uncertainty) Adjust(positionDelta, momentumDelta float64) {
	p.Position.Adjust(positionDelta)
	p.Momentum.Adjust(momentumDelta)
}

// SolidRects returns nothing; the workshop has no doors.
func (p *Uncertainty) SolidRects() []geom.Rect {
	return nil
}

// Readouts returns the current slider values for the HUD.
func (p *Uncertainty) Readouts() []string {
	return []string{
		fmt.Sprintf("Beam waist: %.2f  Momentum spread: %.2f", p.Position.Value, p.Momentum.Value),
	}
}
