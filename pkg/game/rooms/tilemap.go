package rooms

import "fmt"

// Tile is one cell kind in a room's grid.
type Tile int

// Tile kinds.
const (
	TileFloor Tile = iota
	TileWall
)

// Tilemap is a rectangular grid of tiles. Maps are fixed at construction;
// a malformed map is a programming error surfaced at startup.
type Tilemap struct {
	tiles [][]Tile
}

// NewTilemap validates and wraps a grid of tiles. The grid must be
// non-empty and rectangular.
func NewTilemap(tiles [][]Tile) (*Tilemap, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, fmt.Errorf("tilemap must be non-empty")
	}
	width := len(tiles[0])
	for y, row := range tiles {
		if len(row) != width {
			return nil, fmt.Errorf("tilemap row %d has %d tiles, want %d", y, len(row), width)
		}
	}
	return &Tilemap{tiles: tiles}, nil
}

// BorderedLayout builds the standard lab layout: a floor area enclosed by a
// single ring of walls.
func BorderedLayout(width, height int) (*Tilemap, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("bordered layout needs at least 3x3 tiles, got %dx%d", width, height)
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		row := make([]Tile, width)
		for x := range row {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				row[x] = TileWall
			}
		}
		tiles[y] = row
	}
	return NewTilemap(tiles)
}

// Width returns the number of tile columns.
func (m *Tilemap) Width() int {
	return len(m.tiles[0])
}

// Height returns the number of tile rows.
func (m *Tilemap) Height() int {
	return len(m.tiles)
}

// At returns the tile at (x, y). Coordinates outside the map are walls,
// keeping collision queries total.
func (m *Tilemap) At(x, y int) Tile {
	if y < 0 || y >= len(m.tiles) || x < 0 || x >= len(m.tiles[y]) {
		return TileWall
	}
	return m.tiles[y][x]
}
