// Package gameplay provides the per-frame update logic: player movement,
// interaction dispatch, dialogue sequencing and room progression.
package gameplay

import (
	"quantumlab/pkg/engine/input"
	"quantumlab/pkg/game/dialogue"
	"quantumlab/pkg/game/state"
)

// Step advances the game by one frame. All mutation happens synchronously
// here, before the frontend draws the same frame.
func Step(g *state.Game, dt float64, frame input.Frame) {
	if frame.Quit {
		g.Running = false
		return
	}
	if frame.SwitchPlayer {
		g.SwitchPlayer()
	}

	room := g.CurrentRoom()
	active := g.ActivePlayer()

	// Solid geometry is recomputed every frame: doors open and close.
	active.Move(dt, frame.MoveX, frame.MoveY, room.SolidRects())
	g.Companion().Follow(active.Pos, g.Settings.CompanionSpeed, dt)

	g.Dialogue.Update(dt)
	room.TryTriggerIntro(g.Dialogue)
	room.TryTriggerCompletion(g.Dialogue)

	if frame.Interact {
		TryInteract(g)
	}
	if frame.Advance {
		TryAdvanceRoom(g)
	}

	g.HUD = HUDLines(g)
}

// TryInteract fires the first interaction within interact distance of the
// active player. At most one interaction triggers per press.
func TryInteract(g *state.Game) {
	room := g.CurrentRoom()
	if it, ok := room.NearestInteraction(g.ActivePlayer().Pos, g.Settings.InteractDistance); ok {
		it.Action(room)
	}
}

// TryAdvanceRoom moves the party to the next room. The request is a no-op
// unless the puzzle is solved and the active player stands at the exit.
// Finishing the last room queues the codex debrief instead.
func TryAdvanceRoom(g *state.Game) {
	room := g.CurrentRoom()
	if !room.Puzzle.Solved() {
		return
	}
	if !room.AtExit(g.ActivePlayer().Pos, g.Settings.InteractDistance) {
		return
	}

	if g.OnLastRoom() {
		g.Dialogue.AddLines(dialogue.FinalDebrief()...)
		return
	}

	g.EnterNextRoom()
	g.Dialogue.AddLines(dialogue.HallwayTransition(g.CurrentRoom().Name)...)
}
