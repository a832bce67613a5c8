// Package player implements the controllable scientists: movement with
// per-axis swept collision and the companion follow behavior.
package player

import "quantumlab/pkg/engine/geom"

// Body dimensions in world units.
const (
	Width  = 36.0
	Height = 48.0
)

// followSlack is the squared distance under which the companion stops
// drifting toward the active scientist.
const followSlack = 1.0

// Player represents one controllable scientist.
type Player struct {
	Name   string
	Pos    geom.Vec2
	Facing geom.Vec2

	speed float64
}

// New creates a player at pos facing downward.
func New(name string, pos geom.Vec2, speed float64) *Player {
	return &Player{
		Name:   name,
		Pos:    pos,
		Facing: geom.Vec2{Y: 1},
		speed:  speed,
	}
}

// Rect returns the player's collision box centered on Pos.
func (p *Player) Rect() geom.Rect {
	return geom.RectAround(p.Pos, Width, Height)
}

// Move applies one frame of movement from the digital input axes, resolving
// collisions against solids one axis at a time so corners cannot be cut
// diagonally. Facing tracks the raw input direction, not the post-collision
// velocity.
func (p *Player) Move(dt float64, axisX, axisY float64, solids []geom.Rect) {
	dir := geom.Vec2{X: axisX, Y: axisY}
	if dir.LenSq() == 0 {
		return
	}
	dir = dir.Normalize()
	p.Facing = dir

	step := dir.Scale(p.speed * dt)
	p.moveAxis(step.X, 0, solids)
	p.moveAxis(0, step.Y, solids)
}

// moveAxis shifts the collision box along one axis and clamps the moved edge
// against every intersecting solid.
func (p *Player) moveAxis(dx, dy float64, solids []geom.Rect) {
	if dx == 0 && dy == 0 {
		return
	}
	rect := p.Rect()
	rect.X += dx
	rect.Y += dy
	for _, wall := range solids {
		if !rect.Intersects(wall) {
			continue
		}
		if dx > 0 {
			rect.X = wall.X - rect.W
		}
		if dx < 0 {
			rect.X = wall.Right()
		}
		if dy > 0 {
			rect.Y = wall.Y - rect.H
		}
		if dy < 0 {
			rect.Y = wall.Bottom()
		}
	}
	p.Pos = rect.Center()
}

// Follow drifts the companion toward target at followSpeed. The companion
// ignores collision, matching its advisory role.
func (p *Player) Follow(target geom.Vec2, followSpeed, dt float64) {
	direction := target.Sub(p.Pos)
	if direction.LenSq() <= followSlack {
		return
	}
	p.Pos = p.Pos.Add(direction.Normalize().Scale(followSpeed * dt))
}
