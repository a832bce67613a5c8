// Package state holds the single game-state tree. Everything in it is
// exclusively owned and mutated only by the one update pass per frame.
package state

import (
	"math/rand"

	"quantumlab/pkg/engine/geom"
	"quantumlab/pkg/game/config"
	"quantumlab/pkg/game/dialogue"
	"quantumlab/pkg/game/player"
	"quantumlab/pkg/game/rooms"
)

// Starting positions for the two scientists, and where they regroup after a
// room transition.
var (
	startPositions = []geom.Vec2{{X: 200, Y: 200}, {X: 260, Y: 200}}
	roomEntryPoint = geom.Vec2{X: 200, Y: 600}
)

// Game is the root of the game-state tree.
type Game struct {
	Settings config.Settings

	Rooms     []*rooms.Room
	RoomIndex int

	Players     []*player.Player
	ActiveIndex int

	Dialogue *dialogue.Box
	HUD      []string

	Running bool
}

// New builds a ready-to-run game: the four-room sequence, both scientists
// and the opening briefing already queued. rng drives the two random puzzle
// events; seed it for reproducible sessions.
func New(cfg config.Settings, rng *rand.Rand) (*Game, error) {
	roomSeq, err := rooms.Sequence(cfg, rng)
	if err != nil {
		return nil, err
	}

	box := dialogue.NewBox(cfg.DialogueLineDuration)
	box.AddLines(dialogue.OpeningBriefing()...)

	return &Game{
		Settings: cfg,
		Rooms:    roomSeq,
		Players: []*player.Player{
			player.New(dialogue.SpeakerVega, startPositions[0], cfg.PlayerSpeed),
			player.New(dialogue.SpeakerPatel, startPositions[1], cfg.PlayerSpeed),
		},
		Dialogue: box,
		Running:  true,
	}, nil
}

// CurrentRoom returns the room the players are in.
func (g *Game) CurrentRoom() *rooms.Room {
	return g.Rooms[g.RoomIndex]
}

// ActivePlayer returns the scientist under player control.
func (g *Game) ActivePlayer() *player.Player {
	return g.Players[g.ActiveIndex]
}

// Companion returns the scientist currently tagging along.
func (g *Game) Companion() *player.Player {
	return g.Players[(g.ActiveIndex+1)%len(g.Players)]
}

// SwitchPlayer rotates control to the next scientist.
func (g *Game) SwitchPlayer() {
	g.ActiveIndex = (g.ActiveIndex + 1) % len(g.Players)
}

// OnLastRoom reports whether the current room is the final one.
func (g *Game) OnLastRoom() bool {
	return g.RoomIndex == len(g.Rooms)-1
}

// EnterNextRoom advances the room index and regroups both scientists at the
// entry point. The caller is responsible for the eligibility checks.
func (g *Game) EnterNextRoom() {
	g.RoomIndex++
	for _, p := range g.Players {
		p.Pos = roomEntryPoint
	}
}
