package puzzles

import (
	"fmt"
	"math"

	"quantumlab/pkg/engine/geom"
	"quantumlab/pkg/game/widgets"
)

// Default barrier profile for the shipped corridor.
const (
	defaultBarrierWidth = 1.5
	defaultTargetEnergy = 0.68
)

// Tunneling models barrier penetration. Tuning the energy slider is
// deterministic and recomputes the pass probability
// exp(-barrierWidth * (energy - target)^2); an attempt draws one uniform
// sample and opens the gate iff the sample is at or below that probability.
// An open gate is a terminal state with no reset path.
type Tunneling struct {
	Energy *widgets.Slider
	Gate   *widgets.Door

	rng             Rand
	barrierWidth    float64
	targetEnergy    float64
	lastProbability float64
}

// NewTunneling creates the puzzle with the default barrier profile and an
// up-to-date probability readout.
func NewTunneling(energy *widgets.Slider, gate *widgets.Door, rng Rand) *Tunneling {
	p := &Tunneling{
		Energy:       energy,
		Gate:         gate,
		rng:          rng,
		barrierWidth: defaultBarrierWidth,
		targetEnergy: defaultTargetEnergy,
	}
	p.updateProbability()
	return p
}

// Name returns the display name of the puzzle.
func (p *Tunneling) Name() string {
	return "Tunneling Corridor"
}

// Solved reports whether the gate has been tunneled through.
func (p *Tunneling) Solved() bool {
	return p.Gate.Open
}

// TuneEnergy adjusts the energy slider and recomputes the probability.
func (p *Tunneling) TuneEnergy(delta float64) {
	p.Energy.Adjust(delta)
	p.updateProbability()
}

// AttemptTunnel draws one random sample against the current probability and
// opens the gate on success. The one non-idempotent random event in the
// game.
func (p *Tunneling) AttemptTunnel() bool {
	if p.Gate.Open {
		return true
	}
	p.updateProbability()
	if p.rng.Float64() <= p.lastProbability {
		p.Gate.Open = true
		return true
	}
	return false
}

// LastProbability returns the most recently computed pass probability.
// It equals 1.0 exactly when the energy matches the target.
func (p *Tunneling) LastProbability() float64 {
	return p.lastProbability
}

func (p *Tunneling) updateProbability() {
	mismatch := p.Energy.Value - p.targetEnergy
	p.lastProbability = math.Exp(-p.barrierWidth * mismatch * mismatch)
}

// SolidRects returns the gate rectangle while it remains closed.
func (p *Tunneling) SolidRects() []geom.Rect {
	if p.Gate.Solid() {
		return []geom.Rect{p.Gate.Rect}
	}
	return nil
}

// Readouts returns the probability readout for the HUD.
func (p *Tunneling) Readouts() []string {
	return []string{fmt.Sprintf("Tunneling probability: %.2f", p.lastProbability)}
}
