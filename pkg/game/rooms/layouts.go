package rooms

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"quantumlab/pkg/engine/geom"
	"quantumlab/pkg/game/config"
	"quantumlab/pkg/game/dialogue"
	"quantumlab/pkg/game/puzzles"
	"quantumlab/pkg/game/widgets"
)

// Sequence builds the four tutorial rooms in play order. Construction errors
// (entanglement switch arity, malformed layouts) abort startup.
func Sequence(cfg config.Settings, rng puzzles.Rand) ([]*Room, error) {
	builders := []func(config.Settings, puzzles.Rand) (*Room, error){
		NewSuperpositionRoom,
		NewEntanglementRoom,
		NewUncertaintyRoom,
		NewTunnelingRoom,
	}
	out := make([]*Room, 0, len(builders))
	for _, build := range builders {
		room, err := build(cfg, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, nil
}

// NewSuperpositionRoom builds the first room: a detector terminal and two
// ghosted twin doors that collapse onto a single real exit.
func NewSuperpositionRoom(cfg config.Settings, rng puzzles.Rand) (*Room, error) {
	tiles, err := labLayout(cfg)
	if err != nil {
		return nil, err
	}

	detector := widgets.NewTerminal(geom.Vec2{X: 640, Y: 320})
	doors := []*widgets.Door{
		widgets.NewGhostDoor(geom.NewRect(320-32, 128, 32, 128)),
		widgets.NewGhostDoor(geom.NewRect(960, 128, 32, 128)),
	}
	puzzle := puzzles.NewSuperposition(detector, doors, rng)

	return &Room{
		Name:   puzzle.Name(),
		Tiles:  tiles,
		Puzzle: puzzle,
		Interactions: []Interaction{
			{
				Name:   "Detector",
				Pos:    detector.Pos,
				Prompt: gotext.Get("Toggle detector"),
				Action: func(*Room) { detector.Toggle() },
			},
		},
		IntroLines: []dialogue.Line{
			{Speaker: dialogue.SpeakerVega, Text: gotext.Get("Before we look, the system is a weighted \"maybe\" across states. These twin doors model that ambiguity.")},
			{Speaker: dialogue.SpeakerPatel, Text: gotext.Get("Once the detector fires, one pathway becomes real and the other is only a ghost in our readout.")},
		},
		SolvedLines: []dialogue.Line{
			{Speaker: dialogue.SpeakerVega, Text: gotext.Get("See how the detector collapsed us into one definite exit? Measurement is a kind of choice.")},
		},
		ExitPos:  geom.Vec2{X: 640, Y: 80},
		HasExit:  true,
		tileSize: cfg.TileSize,
	}, nil
}

// NewEntanglementRoom builds the second room: two paired switches driving a
// shared pair of doors in lockstep.
func NewEntanglementRoom(cfg config.Settings, rng puzzles.Rand) (*Room, error) {
	tiles, err := labLayout(cfg)
	if err != nil {
		return nil, err
	}

	switchA := widgets.NewTerminal(geom.Vec2{X: 320, Y: 320})
	switchB := widgets.NewTerminal(geom.Vec2{X: 960, Y: 320})
	doors := []*widgets.Door{
		widgets.NewDoor(geom.NewRect(576, 192, 32, 160)),
		widgets.NewDoor(geom.NewRect(672, 192, 32, 160)),
	}
	puzzle, err := puzzles.NewEntanglement([]*widgets.Terminal{switchA, switchB}, doors)
	if err != nil {
		return nil, fmt.Errorf("entanglement room: %w", err)
	}

	return &Room{
		Name:   puzzle.Name(),
		Tiles:  tiles,
		Puzzle: puzzle,
		Interactions: []Interaction{
			{
				Name:   "Switch A",
				Pos:    switchA.Pos,
				Prompt: gotext.Get("Toggle paired switch"),
				Action: func(*Room) { switchA.Toggle() },
			},
			{
				Name:   "Switch B",
				Pos:    switchB.Pos,
				Prompt: gotext.Get("Toggle paired switch"),
				Action: func(*Room) { switchB.Toggle() },
			},
		},
		IntroLines: []dialogue.Line{
			{Speaker: dialogue.SpeakerPatel, Text: gotext.Get("Measure here and it shows up there. No signals, just correlation born together.")},
			{Speaker: dialogue.SpeakerVega, Text: gotext.Get("Flip one and the far door follows, even across the hall.")},
		},
		SolvedLines: []dialogue.Line{
			{Speaker: dialogue.SpeakerPatel, Text: gotext.Get("With the pair aligned, both gates cooperate. Entanglement rewards good timing.")},
		},
		ExitPos:  geom.Vec2{X: 640, Y: 80},
		HasExit:  true,
		tileSize: cfg.TileSize,
	}, nil
}

// NewUncertaintyRoom builds the third room: the coupled position/momentum
// slider calibration.
func NewUncertaintyRoom(cfg config.Settings, _ puzzles.Rand) (*Room, error) {
	tiles, err := labLayout(cfg)
	if err != nil {
		return nil, err
	}

	position := widgets.NewSlider(geom.Vec2{X: 512, Y: 320})
	momentum := widgets.NewSlider(geom.Vec2{X: 768, Y: 320})
	puzzle := puzzles.NewUncertainty(position, momentum)

	return &Room{
		Name:   puzzle.Name(),
		Tiles:  tiles,
		Puzzle: puzzle,
		Interactions: []Interaction{
			{
				Name:   "Lens Stage",
				Pos:    position.Pos.Add(geom.Vec2{X: -64, Y: -48}),
				Prompt: gotext.Get("Narrow position"),
				Action: func(*Room) { puzzle.Adjust(-0.05, +0.05) },
			},
			{
				Name:   "Momentum Coil",
				Pos:    momentum.Pos.Add(geom.Vec2{X: 64, Y: -48}),
				Prompt: gotext.Get("Widen momentum"),
				Action: func(*Room) { puzzle.Adjust(+0.05, -0.05) },
			},
		},
		IntroLines: []dialogue.Line{
			{Speaker: dialogue.SpeakerVega, Text: gotext.Get("Locking position blurs momentum, like squeezing one side of a balloon.")},
			{Speaker: dialogue.SpeakerPatel, Text: gotext.Get("To clear the slit, balance sharp focus with a generous spread.")},
		},
		SolvedLines: []dialogue.Line{
			{Speaker: dialogue.SpeakerVega, Text: gotext.Get("Perfect calibration. The beam threads the aperture and still lands on the sensor.")},
		},
		ExitPos:  geom.Vec2{X: 640, Y: 80},
		HasExit:  true,
		tileSize: cfg.TileSize,
	}, nil
}

// NewTunnelingRoom builds the final room: an energy dial, a gate console and
// a barrier that only probability can breach.
func NewTunnelingRoom(cfg config.Settings, rng puzzles.Rand) (*Room, error) {
	tiles, err := labLayout(cfg)
	if err != nil {
		return nil, err
	}

	energy := widgets.NewSlider(geom.Vec2{X: 640, Y: 360})
	gate := widgets.NewDoor(geom.NewRect(624, 160, 32, 160))
	puzzle := puzzles.NewTunneling(energy, gate, rng)

	return &Room{
		Name:   puzzle.Name(),
		Tiles:  tiles,
		Puzzle: puzzle,
		Interactions: []Interaction{
			{
				Name:   "Energy Dial +",
				Pos:    energy.Pos.Add(geom.Vec2{X: 120}),
				Prompt: gotext.Get("Increase energy"),
				Action: func(*Room) { puzzle.TuneEnergy(+0.05) },
			},
			{
				Name:   "Energy Dial -",
				Pos:    energy.Pos.Add(geom.Vec2{X: -120}),
				Prompt: gotext.Get("Decrease energy"),
				Action: func(*Room) { puzzle.TuneEnergy(-0.05) },
			},
			{
				Name:   "Gate Console",
				Pos:    geom.Vec2{X: 640, Y: 220},
				Prompt: gotext.Get("Attempt tunneling"),
				Action: func(*Room) { puzzle.AttemptTunnel() },
			},
		},
		IntroLines: []dialogue.Line{
			{Speaker: dialogue.SpeakerPatel, Text: gotext.Get("Non-zero chance to appear through the barrier; high when the wave matches the barrier's profile.")},
			{Speaker: dialogue.SpeakerVega, Text: gotext.Get("Dial us into resonance and the gate will welcome us through.")},
		},
		SolvedLines: []dialogue.Line{
			{Speaker: dialogue.SpeakerPatel, Text: gotext.Get("We matched the waveform. Tunneling granted!")},
		},
		ExitPos:  geom.Vec2{X: 640, Y: 80},
		HasExit:  true,
		tileSize: cfg.TileSize,
	}, nil
}

func labLayout(cfg config.Settings) (*Tilemap, error) {
	return BorderedLayout(cfg.GridWidth(), cfg.GridHeight())
}
