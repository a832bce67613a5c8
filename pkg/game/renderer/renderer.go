// Package renderer is the ebiten frontend: it polls the keyboard into input
// frames, steps the game core once per tick and draws the frame with flat
// vector shapes and debug text. All game semantics live in the core; nothing
// here mutates state directly.
package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"quantumlab/pkg/game/gameplay"
	"quantumlab/pkg/game/puzzles"
	"quantumlab/pkg/game/rooms"
	"quantumlab/pkg/game/state"
	"quantumlab/pkg/game/widgets"
)

const windowTitle = "UNIVERSE CONNECTED FOR EVERYONE — The Quantum Lab"

// App drives the game loop under ebiten.
type App struct {
	game *state.Game
	dt   float64
}

// New wraps a game for the ebiten loop.
func New(g *state.Game) *App {
	return &App{
		game: g,
		dt:   1.0 / float64(g.Settings.TPS),
	}
}

// Run configures the window and blocks until the session ends.
func Run(g *state.Game) error {
	ebiten.SetWindowSize(g.Settings.ScreenWidth, g.Settings.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(g.Settings.TPS)
	if err := ebiten.RunGame(New(g)); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update steps the core by one fixed tick.
func (a *App) Update() error {
	gameplay.Step(a.game, a.dt, readFrame())
	if !a.game.Running {
		return ebiten.Termination
	}
	return nil
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.game.Settings.ScreenWidth, a.game.Settings.ScreenHeight
}

// Draw renders the whole frame: room, widgets, players, HUD and dialogue.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	room := a.game.CurrentRoom()
	a.drawTiles(screen, room)
	a.drawPuzzle(screen, room.Puzzle)
	a.drawInteractions(screen, room)
	a.drawPlayers(screen)
	a.drawHUD(screen)
	a.drawDialogue(screen)
}

func (a *App) drawTiles(screen *ebiten.Image, room *rooms.Room) {
	tile := float32(room.TileSize())
	for y := 0; y < room.Tiles.Height(); y++ {
		for x := 0; x < room.Tiles.Width(); x++ {
			px, py := float32(x)*tile, float32(y)*tile
			if room.Tiles.At(x, y) == rooms.TileWall {
				vector.DrawFilledRect(screen, px, py, tile, tile, colorWall, false)
				continue
			}
			base := colorFloor
			if (x+y)%2 != 0 {
				base = colorFloorAccent
			}
			vector.DrawFilledRect(screen, px, py, tile, tile, base, false)
		}
	}
}

// drawPuzzle renders each variant's widgets in its accent colors.
func (a *App) drawPuzzle(screen *ebiten.Image, p puzzles.Puzzle) {
	switch pz := p.(type) {
	case *puzzles.Superposition:
		for _, door := range pz.Doors {
			drawDoor(screen, door, colorAccentAmber)
		}
		drawTerminal(screen, pz.Detector, colorAccentGreen, colorAccentViol)
	case *puzzles.Entanglement:
		for _, door := range pz.Doors {
			drawDoor(screen, door, colorAccentViol)
		}
		for _, sw := range pz.Switches {
			drawTerminal(screen, sw, colorAccentGreen, colorAccentRed)
		}
	case *puzzles.Uncertainty:
		drawSlider(screen, pz.Position, colorAccentAmber)
		drawSlider(screen, pz.Momentum, colorAccentViol)
	case *puzzles.Tunneling:
		drawSlider(screen, pz.Energy, colorAccentGreen)
		if pz.Gate.Open {
			r := pz.Gate.Rect
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, colorAccentGreen, false)
		} else {
			drawDoor(screen, pz.Gate, colorAccentRed)
		}
	}
}

func drawDoor(screen *ebiten.Image, door *widgets.Door, c color.RGBA) {
	if door.Open {
		return
	}
	draw := c
	if door.Ghost {
		draw = ghosted(c)
	}
	r := door.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), draw, false)
}

func drawTerminal(screen *ebiten.Image, t *widgets.Terminal, on, off color.RGBA) {
	c := off
	if t.Active {
		c = on
	}
	vector.DrawFilledCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), 20, c, false)
	vector.StrokeCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), 26, 2, colorHologram, false)
}

func drawSlider(screen *ebiten.Image, s *widgets.Slider, knob color.RGBA) {
	const barHeight = 12
	barX := float32(s.Pos.X - s.Width/2)
	barY := float32(s.Pos.Y - barHeight/2)
	vector.DrawFilledRect(screen, barX, barY, float32(s.Width), barHeight, colorFloorAccent, false)

	frac := (s.Value - s.Min) / (s.Max - s.Min)
	knobX := barX + float32(frac*s.Width)
	vector.DrawFilledRect(screen, knobX-8, float32(s.Pos.Y)-16, 16, 32, knob, false)
	vector.StrokeRect(screen, barX, barY, float32(s.Width), barHeight, 2, colorHologram, false)
}

func (a *App) drawInteractions(screen *ebiten.Image, room *rooms.Room) {
	for _, it := range room.Interactions {
		vector.StrokeCircle(screen, float32(it.Pos.X), float32(it.Pos.Y), 16, 2, colorHologram, false)
	}
}

func (a *App) drawPlayers(screen *ebiten.Image) {
	for i, p := range a.game.Players {
		r := p.Rect()
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), playerColors[i%len(playerColors)], false)
		// Facing marker.
		tip := p.Pos.Add(p.Facing.Scale(18))
		vector.DrawFilledCircle(screen, float32(tip.X), float32(tip.Y), 4, colorHologram, false)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	for i, line := range a.game.HUD {
		ebitenutil.DebugPrintAt(screen, line, 24, 24+i*18)
	}
}

func (a *App) drawDialogue(screen *ebiten.Image) {
	line, ok := a.game.Dialogue.Active()
	if !ok {
		return
	}
	const margin = 24
	w := a.game.Settings.ScreenWidth
	h := a.game.Settings.ScreenHeight
	boxW := w - margin*2
	vector.DrawFilledRect(screen, margin, float32(h-180), float32(boxW), 160, colorDialogueBG, false)

	ebitenutil.DebugPrintAt(screen, line.Speaker, margin+20, h-168)
	for i, row := range wrapText(line.Text, boxW/7) {
		ebitenutil.DebugPrintAt(screen, row, margin+20, h-140+i*18)
	}
}

// wrapText breaks text into rows of at most maxChars characters on word
// boundaries. The debug font is monospaced, so a character budget is enough.
func wrapText(text string, maxChars int) []string {
	var rows []string
	current := ""
	for _, word := range splitWords(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if len(test) <= maxChars {
			current = test
			continue
		}
		if current != "" {
			rows = append(rows, current)
		}
		current = word
	}
	if current != "" {
		rows = append(rows, current)
	}
	return rows
}

func splitWords(text string) []string {
	var words []string
	start := -1
	for i, r := range text {
		if r == ' ' {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}
