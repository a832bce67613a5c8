package gameplay

import (
	"math/rand"
	"strings"
	"testing"

	"quantumlab/pkg/engine/geom"
	"quantumlab/pkg/engine/input"
	"quantumlab/pkg/game/config"
	"quantumlab/pkg/game/state"
)

func geomOffset(x, y float64) geom.Vec2 {
	return geom.Vec2{X: x, Y: y}
}

func makeGame(t *testing.T, seed int64) *state.Game {
	t.Helper()
	g, err := state.New(config.Default(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("state.New: %v", err)
	}
	return g
}

// drainDialogue empties the dialogue box so trigger tests observe only newly
// queued lines.
func drainDialogue(g *state.Game) {
	for !g.Dialogue.Idle() {
		g.Dialogue.Update(g.Settings.DialogueLineDuration)
	}
}

func TestStepQuitStopsTheGame(t *testing.T) {
	g := makeGame(t, 1)
	Step(g, 1.0/60, input.Frame{Quit: true})
	if g.Running {
		t.Error("Running should be false after a quit frame")
	}
}

func TestStepSwitchPlayerRotates(t *testing.T) {
	g := makeGame(t, 1)
	first := g.ActivePlayer().Name

	Step(g, 1.0/60, input.Frame{SwitchPlayer: true})
	if g.ActivePlayer().Name == first {
		t.Error("active player should change on switch")
	}
	Step(g, 1.0/60, input.Frame{SwitchPlayer: true})
	if g.ActivePlayer().Name != first {
		t.Error("second switch should rotate back")
	}
}

func TestStepMovesActiveAndCompanionFollows(t *testing.T) {
	g := makeGame(t, 1)
	activeBefore := g.ActivePlayer().Pos
	companionBefore := g.Companion().Pos

	Step(g, 1.0/60, input.Frame{MoveX: 1})

	if g.ActivePlayer().Pos == activeBefore {
		t.Error("active player should move")
	}
	// The scientists start 60 units apart, so the companion must drift.
	if g.Companion().Pos == companionBefore {
		t.Error("companion should follow the active player")
	}
	if g.Companion().Pos.X >= companionBefore.X {
		t.Error("companion should drift toward the active player, not away")
	}
}

func TestStepTriggersRoomIntroOnce(t *testing.T) {
	g := makeGame(t, 1)
	drainDialogue(g)

	Step(g, 1.0/60, input.Frame{})
	count := 0
	for !g.Dialogue.Idle() {
		count++
		g.Dialogue.Update(g.Settings.DialogueLineDuration)
	}
	if want := len(g.CurrentRoom().IntroLines); count != want {
		t.Fatalf("intro lines queued = %d, want %d", count, want)
	}

	// Further frames must not re-queue the intro.
	Step(g, 1.0/60, input.Frame{})
	if !g.Dialogue.Idle() {
		t.Error("intro should fire exactly once")
	}
}

func TestInteractRequiresProximity(t *testing.T) {
	g := makeGame(t, 1)
	room := g.CurrentRoom()
	detector := room.Interactions[0]

	// Far away: the press does nothing.
	g.ActivePlayer().Pos = detector.Pos.Add(geomOffset(300, 0))
	TryInteract(g)
	if room.Puzzle.Solved() {
		t.Fatal("interaction fired from outside the trigger radius")
	}

	// In range: the detector collapses the superposition.
	g.ActivePlayer().Pos = detector.Pos.Add(geomOffset(40, 0))
	TryInteract(g)
	if !room.Puzzle.Solved() {
		t.Error("detector toggle should collapse and solve the room")
	}
}

func TestAdvanceRequiresSolvedAndExitProximity(t *testing.T) {
	g := makeGame(t, 1)
	room := g.CurrentRoom()

	// Unsolved, even at the exit: no-op.
	g.ActivePlayer().Pos = room.ExitPos
	TryAdvanceRoom(g)
	if g.RoomIndex != 0 {
		t.Fatal("advance should be a no-op while unsolved")
	}

	// Solve the superposition room via its detector.
	room.Interactions[0].Action(room)
	if !room.Puzzle.Solved() {
		t.Fatal("detector should solve the room")
	}

	// Solved but far from the exit: still a no-op.
	g.ActivePlayer().Pos = room.ExitPos.Add(geomOffset(0, 300))
	TryAdvanceRoom(g)
	if g.RoomIndex != 0 {
		t.Fatal("advance should be a no-op away from the exit")
	}

	// Solved and at the exit: the party moves on and regroups.
	g.ActivePlayer().Pos = room.ExitPos
	TryAdvanceRoom(g)
	if g.RoomIndex != 1 {
		t.Fatal("advance should enter the next room")
	}
	if g.Players[0].Pos != g.Players[1].Pos {
		t.Error("both scientists should regroup at the room entry point")
	}
}

func TestAdvanceQueuesHallwayTransition(t *testing.T) {
	g := makeGame(t, 1)
	room := g.CurrentRoom()
	room.Interactions[0].Action(room)
	drainDialogue(g)

	g.ActivePlayer().Pos = room.ExitPos
	TryAdvanceRoom(g)

	line, ok := g.Dialogue.Active()
	if !ok {
		t.Fatal("a hallway transition line should be queued")
	}
	if !strings.Contains(line.Text, g.CurrentRoom().Name) {
		t.Errorf("transition line %q should name the next room %q", line.Text, g.CurrentRoom().Name)
	}
}

func TestFinalRoomQueuesCodexRecap(t *testing.T) {
	g := makeGame(t, 1)
	g.RoomIndex = len(g.Rooms) - 1
	room := g.CurrentRoom()

	// Force the tunneling gate open through its console until it yields.
	// With an unseeded stub unavailable here, tune to the resonance target
	// first so the attempt succeeds deterministically (probability 1 needs
	// exact match; close enough that a success arrives within a few tries).
	for i := 0; i < 4; i++ {
		room.Interactions[0].Action(room) // energy +0.05 toward 0.68
	}
	for i := 0; i < 1000 && !room.Puzzle.Solved(); i++ {
		room.Interactions[2].Action(room) // gate console attempt
	}
	if !room.Puzzle.Solved() {
		t.Fatal("tunneling room did not solve under repeated attempts")
	}

	drainDialogue(g)
	g.ActivePlayer().Pos = room.ExitPos
	TryAdvanceRoom(g)

	if g.RoomIndex != len(g.Rooms)-1 {
		t.Error("there is no room past the final one")
	}
	line, ok := g.Dialogue.Active()
	if !ok || line.Speaker != "Dr. Elena Vega" {
		t.Errorf("final advance should queue the debrief, got %+v", line)
	}
}

func TestHUDShowsRoomPlayerAndReadouts(t *testing.T) {
	g := makeGame(t, 1)
	g.RoomIndex = 3 // Tunneling Corridor has a probability readout

	lines := HUDLines(g)
	if lines[0] != "Tunneling Corridor" {
		t.Errorf("first HUD line = %q, want the room name", lines[0])
	}
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "Tunneling probability:") {
			found = true
		}
	}
	if !found {
		t.Error("HUD should include the tunneling probability readout")
	}
}

func TestHUDShowsExitPromptOnlyWhenEligible(t *testing.T) {
	g := makeGame(t, 1)
	room := g.CurrentRoom()
	g.ActivePlayer().Pos = room.ExitPos

	for _, l := range HUDLines(g) {
		if strings.Contains(l, "Continue") {
			t.Fatal("exit prompt shown while unsolved")
		}
	}

	room.Interactions[0].Action(room)
	found := false
	for _, l := range HUDLines(g) {
		if strings.Contains(l, "Continue") {
			found = true
		}
	}
	if !found {
		t.Error("exit prompt missing when solved and at the exit")
	}
}
