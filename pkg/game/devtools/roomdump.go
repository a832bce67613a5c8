// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"golang.org/x/term"

	"quantumlab/pkg/game/puzzles"
	"quantumlab/pkg/game/rooms"
	"quantumlab/pkg/game/state"
	"quantumlab/pkg/game/widgets"
)

const roomDumpFilename = "lab.txt"

const (
	defaultTermWidth  = 80
	defaultTermHeight = 24
)

// termSize returns the current terminal size, falling back to 80x24 when
// stdout is not a terminal.
func termSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return defaultTermWidth, defaultTermHeight
	}
	return width, height
}

// symbolGrid renders a room as a rune grid: tiles first, then widget
// overlays at their tile coordinates.
func symbolGrid(room *rooms.Room) [][]rune {
	w, h := room.Tiles.Width(), room.Tiles.Height()
	grid := make([][]rune, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]rune, w)
		for x := 0; x < w; x++ {
			if room.Tiles.At(x, y) == rooms.TileWall {
				grid[y][x] = '#'
			} else {
				grid[y][x] = '.'
			}
		}
	}

	put := func(px, py float64, r rune) {
		x, y := int(px/room.TileSize()), int(py/room.TileSize())
		if y >= 0 && y < h && x >= 0 && x < w {
			grid[y][x] = r
		}
	}
	putDoor := func(d *widgets.Door) {
		sym := 'D'
		switch {
		case d.Open:
			sym = '='
		case d.Ghost:
			sym = 'd'
		}
		for py := d.Rect.Y; py < d.Rect.Bottom(); py += room.TileSize() {
			for px := d.Rect.X; px < d.Rect.Right(); px += room.TileSize() {
				put(px, py, sym)
			}
		}
	}

	switch pz := room.Puzzle.(type) {
	case *puzzles.Superposition:
		for _, d := range pz.Doors {
			putDoor(d)
		}
		put(pz.Detector.Pos.X, pz.Detector.Pos.Y, 'T')
	case *puzzles.Entanglement:
		for _, d := range pz.Doors {
			putDoor(d)
		}
		for _, sw := range pz.Switches {
			put(sw.Pos.X, sw.Pos.Y, 'T')
		}
	case *puzzles.Uncertainty:
		put(pz.Position.Pos.X, pz.Position.Pos.Y, 'S')
		put(pz.Momentum.Pos.X, pz.Momentum.Pos.Y, 'S')
	case *puzzles.Tunneling:
		put(pz.Energy.Pos.X, pz.Energy.Pos.Y, 'S')
		putDoor(pz.Gate)
	}

	if room.HasExit {
		put(room.ExitPos.X, room.ExitPos.Y, 'E')
	}
	return grid
}

// writePuzzleState lists every widget of a puzzle with its live state.
func writePuzzleState(f *os.File, p puzzles.Puzzle) {
	fmt.Fprintf(f, "puzzle: %q solved: %v\n", p.Name(), p.Solved())
	for _, line := range p.Readouts() {
		fmt.Fprintf(f, "  readout: %s\n", line)
	}
	switch pz := p.(type) {
	case *puzzles.Superposition:
		fmt.Fprintf(f, "  detector active: %v\n", pz.Detector.Active)
		for i, d := range pz.Doors {
			fmt.Fprintf(f, "  door %d: x: %.0f y: %.0f open: %v ghost: %v\n", i, d.Rect.X, d.Rect.Y, d.Open, d.Ghost)
		}
	case *puzzles.Entanglement:
		for i, sw := range pz.Switches {
			fmt.Fprintf(f, "  switch %d: x: %.0f y: %.0f active: %v\n", i, sw.Pos.X, sw.Pos.Y, sw.Active)
		}
		for i, d := range pz.Doors {
			fmt.Fprintf(f, "  door %d: x: %.0f y: %.0f open: %v\n", i, d.Rect.X, d.Rect.Y, d.Open)
		}
	case *puzzles.Uncertainty:
		fmt.Fprintf(f, "  position slider: %.2f momentum slider: %.2f\n", pz.Position.Value, pz.Momentum.Value)
	case *puzzles.Tunneling:
		fmt.Fprintf(f, "  energy slider: %.2f probability: %.2f gate open: %v\n", pz.Energy.Value, pz.LastProbability(), pz.Gate.Open)
	}
}

// DumpRoomsToFile writes a full debug dump of every room to lab.txt:
// metadata, legend, one symbol grid per room, and widget state lists.
func DumpRoomsToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(roomDumpFilename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== LAB DUMP DEBUG (room layouts, widgets, puzzle state) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "rooms: %d\n", len(g.Rooms))
	fmt.Fprintf(f, "current_room: %d\n", g.RoomIndex)
	fmt.Fprintf(f, "tile_size: %.0f\n", g.Settings.TileSize)
	fmt.Fprintf(f, "coordinate_system: x,y pixels (0-based, y down); grids are tile cells\n")
	for _, p := range g.Players {
		fmt.Fprintf(f, "player: %q x: %.0f y: %.0f\n", p.Name, p.Pos.X, p.Pos.Y)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintln(f, ". = floor  # = wall  D = closed door  d = ghost door  = = open door  T = terminal  S = slider  E = exit")
	fmt.Fprintln(f, "")

	for i, room := range g.Rooms {
		fmt.Fprintf(f, "--- Room %d: %s ---\n", i+1, room.Name)
		for _, row := range symbolGrid(room) {
			fmt.Fprintln(f, string(row))
		}
		writePuzzleState(f, room.Puzzle)
		fmt.Fprintln(f, "")
	}

	fmt.Fprintln(f, "=== END LAB DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

var symbolStyles = map[rune]color.Style{
	'#': {color.FgGray},
	'.': {color.FgBlue},
	'D': {color.FgYellow, color.OpBold},
	'd': {color.FgGray, color.OpBold},
	'=': {color.FgGreen},
	'T': {color.FgMagenta, color.OpBold},
	'S': {color.FgCyan, color.OpBold},
	'E': {color.FgGreen, color.OpBold},
}

// PrintRooms renders each room's symbol grid to stdout in color, clamping
// rows to the terminal width.
func PrintRooms(g *state.Game) {
	maxCols, _ := termSize()
	for i, room := range g.Rooms {
		fmt.Printf("Room %d: %s\n", i+1, room.Name)
		for _, row := range symbolGrid(room) {
			if len(row) > maxCols {
				row = row[:maxCols]
			}
			for _, r := range row {
				style, ok := symbolStyles[r]
				if !ok {
					fmt.Print(string(r))
					continue
				}
				style.Print(string(r))
			}
			fmt.Println()
		}
		fmt.Println()
	}
}
