// Package rooms defines the lab rooms: static tile geometry, one puzzle per
// room, positioned interactions and the dialogue triggers that sequence the
// level.
package rooms

import (
	"quantumlab/pkg/engine/geom"
	"quantumlab/pkg/game/dialogue"
	"quantumlab/pkg/game/puzzles"
)

// Interaction is a positioned trigger zone bound to a callback, activated by
// player proximity plus the interact key.
type Interaction struct {
	Name   string
	Pos    geom.Vec2
	Prompt string
	Action func(*Room)
}

// Room owns a fixed tilemap, one puzzle, the interactions placed in it and
// the once-only dialogue triggers. Rooms are built at startup and discarded
// with the level.
type Room struct {
	Name         string
	Tiles        *Tilemap
	Puzzle       puzzles.Puzzle
	Interactions []Interaction
	IntroLines   []dialogue.Line
	SolvedLines  []dialogue.Line

	// ExitPos is where the player must stand to advance; HasExit guards it.
	ExitPos geom.Vec2
	HasExit bool

	tileSize            float64
	introTriggered      bool
	completionAnnounced bool
}

// SolidRects returns every rectangle that currently blocks movement: wall
// tiles plus the puzzle's closed doors. Door solidity is recomputed on every
// call since doors open and close at runtime.
func (r *Room) SolidRects() []geom.Rect {
	var rects []geom.Rect
	for y := 0; y < r.Tiles.Height(); y++ {
		for x := 0; x < r.Tiles.Width(); x++ {
			if r.Tiles.At(x, y) == TileWall {
				rects = append(rects, geom.NewRect(
					float64(x)*r.tileSize,
					float64(y)*r.tileSize,
					r.tileSize,
					r.tileSize,
				))
			}
		}
	}
	return append(rects, r.Puzzle.SolidRects()...)
}

// TileSize returns the edge length of one tile in world units.
func (r *Room) TileSize() float64 {
	return r.tileSize
}

// TryTriggerIntro queues the intro dialogue the first time it is called;
// repeated calls are no-ops.
func (r *Room) TryTriggerIntro(box *dialogue.Box) {
	if r.introTriggered || len(r.IntroLines) == 0 {
		return
	}
	box.AddLines(r.IntroLines...)
	r.introTriggered = true
}

// TryTriggerCompletion queues the solved dialogue once the puzzle reports
// solved; it fires at most once per room lifetime.
func (r *Room) TryTriggerCompletion(box *dialogue.Box) {
	if r.completionAnnounced || !r.Puzzle.Solved() || len(r.SolvedLines) == 0 {
		return
	}
	box.AddLines(r.SolvedLines...)
	r.completionAnnounced = true
}

// NearestInteraction returns the first interaction within maxDist of pos.
func (r *Room) NearestInteraction(pos geom.Vec2, maxDist float64) (*Interaction, bool) {
	for i := range r.Interactions {
		if pos.Dist(r.Interactions[i].Pos) <= maxDist {
			return &r.Interactions[i], true
		}
	}
	return nil, false
}

// AtExit reports whether pos is within maxDist of the room's exit point.
func (r *Room) AtExit(pos geom.Vec2, maxDist float64) bool {
	return r.HasExit && pos.Dist(r.ExitPos) <= maxDist
}
