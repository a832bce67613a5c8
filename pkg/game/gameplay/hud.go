package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"quantumlab/pkg/game/state"
)

// HUDLines composes the textual overlay for the current frame: room and
// active scientist, the control legend, puzzle readouts, and any prompt the
// active player is standing near.
func HUDLines(g *state.Game) []string {
	room := g.CurrentRoom()
	active := g.ActivePlayer()

	lines := []string{
		room.Name,
		gotext.Get("Active: %s (TAB to switch)", active.Name),
		gotext.Get("Move: WASD/Arrows   Interact: E   Advance: Enter"),
	}
	lines = append(lines, room.Puzzle.Readouts()...)

	if it, ok := room.NearestInteraction(active.Pos, g.Settings.InteractDistance); ok {
		lines = append(lines, fmt.Sprintf("[E] %s", it.Prompt))
	}
	if room.Puzzle.Solved() && room.AtExit(active.Pos, g.Settings.InteractDistance) {
		lines = append(lines, gotext.Get("[ENTER] Continue"))
	}
	return lines
}
