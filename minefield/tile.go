package minefield

import "strconv"

// Tile is the ground truth of a cell.
type Tile int8

const (
	Empty Tile = iota
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Mine
)

// NumberTile returns the tile for a cell with n surrounding mines. Zero is Empty.
func NumberTile(n int) Tile {
	if n <= 0 {
		return Empty
	}
	if n > 8 {
		n = 8
	}
	return Tile(n)
}

func (tile Tile) IsNumber() bool {
	return tile >= Number1 && tile <= Number8
}

// Count returns the number of surrounding mines for a Number tile, and 0 otherwise.
func (tile Tile) Count() int {
	if tile.IsNumber() {
		return int(tile)
	}
	return 0
}

func (tile Tile) String() string {
	switch {
	case tile == Empty:
		return "E"
	case tile == Mine:
		return "X"
	case tile.IsNumber():
		return strconv.Itoa(int(tile))
	default:
		return "?"
	}
}

// TileState is what the player knows about a cell.
type TileState int8

const (
	Unknown TileState = iota
	Flagged
	Known
)

// IsUnknown reports whether the cell has not been revealed, flagged or not.
func (state TileState) IsUnknown() bool {
	return state == Unknown || state == Flagged
}

func (state TileState) String() string {
	switch state {
	case Unknown:
		return "U"
	case Flagged:
		return "F"
	case Known:
		return "K"
	default:
		return "?"
	}
}

type Pos struct {
	X, Y int
}

func (pos Pos) Add(other Pos) Pos {
	return Pos{pos.X + other.X, pos.Y + other.Y}
}

func (pos Pos) String() string {
	return "(" + strconv.Itoa(pos.X) + ", " + strconv.Itoa(pos.Y) + ")"
}

var orthogonal = []Pos{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

var surrounding = []Pos{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}
