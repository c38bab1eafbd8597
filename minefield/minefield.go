package minefield

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Minefield is a two-layer grid: the hidden tiles and what has been shown
// of them. Both layers are stored row-major, indexed y*width+x.
type Minefield struct {
	width, height int
	numMines      int
	placed        bool

	hidden []Tile
	shown  []TileState
}

func New(width, height int) (*Minefield, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidParamsError{Width: width, Height: height}
	}

	return &Minefield{
		width:  width,
		height: height,
		hidden: make([]Tile, width*height),
		shown:  make([]TileState, width*height),
	}, nil
}

func (field *Minefield) Width() int {
	return field.width
}

func (field *Minefield) Height() int {
	return field.height
}

func (field *Minefield) NumCells() int {
	return field.width * field.height
}

func (field *Minefield) NumMines() int {
	return field.numMines
}

func (field *Minefield) NumFlags() int {
	numFlags := 0
	for _, state := range field.shown {
		if state == Flagged {
			numFlags++
		}
	}
	return numFlags
}

func (field *Minefield) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < field.width && y < field.height
}

func (field *Minefield) index(x, y int) int {
	return y*field.width + x
}

func (field *Minefield) position(idx int) Pos {
	return Pos{idx % field.width, idx / field.width}
}

func (field *Minefield) TileAt(x, y int) (Tile, bool) {
	if !field.InBounds(x, y) {
		return Empty, false
	}
	return field.hidden[field.index(x, y)], true
}

func (field *Minefield) StateAt(x, y int) (TileState, bool) {
	if !field.InBounds(x, y) {
		return Unknown, false
	}
	return field.shown[field.index(x, y)], true
}

// Neighbors returns the in-bounds cells among the 8 surrounding pos.
func (field *Minefield) Neighbors(pos Pos) []Pos {
	return field.adjacent(pos, surrounding)
}

func (field *Minefield) adjacent(pos Pos, offsets []Pos) []Pos {
	neighbors := make([]Pos, 0, len(offsets))
	for _, offset := range offsets {
		neighbor := pos.Add(offset)
		if field.InBounds(neighbor.X, neighbor.Y) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// ToggleFlag flips the flag of an unrevealed cell. Revealed cells are left as is.
func (field *Minefield) ToggleFlag(x, y int) error {
	if !field.InBounds(x, y) {
		return ErrOutOfBounds
	}

	idx := field.index(x, y)
	switch field.shown[idx] {
	case Unknown:
		field.shown[idx] = Flagged
	case Flagged:
		field.shown[idx] = Unknown
	}
	return nil
}

// CheckWin reports whether every cell that has not been revealed is a mine.
func (field *Minefield) CheckWin() bool {
	for idx, state := range field.shown {
		if state.IsUnknown() && field.hidden[idx] != Mine {
			return false
		}
	}
	return true
}

// Chord reveals the unflagged neighbors of a revealed number, once as many
// neighbors have been flagged as the number says. It reports whether one of
// the revealed neighbors was a mine.
func (field *Minefield) Chord(x, y int) (bool, error) {
	if !field.InBounds(x, y) {
		return false, ErrOutOfBounds
	}

	idx := field.index(x, y)
	tile := field.hidden[idx]
	if field.shown[idx] != Known || !tile.IsNumber() {
		return false, nil
	}

	pos := Pos{x, y}
	neighbors := field.Neighbors(pos)

	numFlagged := 0
	for _, neighbor := range neighbors {
		if field.shown[field.index(neighbor.X, neighbor.Y)] == Flagged {
			numFlagged++
		}
	}
	if numFlagged != tile.Count() {
		return false, nil
	}

	hitMine := false
	for _, neighbor := range neighbors {
		if field.shown[field.index(neighbor.X, neighbor.Y)] != Unknown {
			continue
		}
		revealed, err := field.Reveal(neighbor.X, neighbor.Y)
		if err != nil {
			return hitMine, err
		}
		if revealed == Mine {
			hitMine = true
		}
	}

	Log.WithFields(logrus.Fields{
		"pos":     pos,
		"hitMine": hitMine,
	}).Debug("chorded")

	return hitMine, nil
}
