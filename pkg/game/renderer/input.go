package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"quantumlab/pkg/engine/input"
)

// readFrame translates the keyboard state into one input.Frame. Movement is
// level-triggered; the action keys are edge-triggered.
func readFrame() input.Frame {
	var f input.Frame

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		f.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		f.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		f.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		f.MoveY++
	}

	f.Interact = inpututil.IsKeyJustPressed(ebiten.KeyE)
	f.Advance = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	f.SwitchPlayer = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	f.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	return f
}
