package minefield

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/util/collections"
)

// Shuffler is the random source used to place mines. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Generate places count mines on distinct cells, chosen uniformly at random.
func (field *Minefield) Generate(r Shuffler, count int) error {
	if count < 0 || count > field.NumCells() {
		return &InvalidParamsError{Width: field.width, Height: field.height, NumMines: count}
	}
	if field.placed {
		return ErrAlreadyGenerated
	}

	// Store cell indexes, to shuffle and take the first count of them
	cellIndexes := make([]int, field.NumCells())
	for i := range cellIndexes {
		cellIndexes[i] = i
	}
	r.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	positions := make([]Pos, count)
	for i, idx := range cellIndexes[:count] {
		positions[i] = field.position(idx)
	}

	Log.WithFields(logrus.Fields{
		"width":  field.width,
		"height": field.height,
		"mines":  count,
	}).Debug("generating mines")

	return field.PlaceMines(positions...)
}

// PlaceMines turns the given cells into mines and raises the count of
// every surrounding cell that is not a mine itself.
func (field *Minefield) PlaceMines(positions ...Pos) error {
	if field.placed {
		return ErrAlreadyGenerated
	}

	seen := make(collections.Set[Pos], len(positions))
	for _, pos := range positions {
		if !field.InBounds(pos.X, pos.Y) {
			return fmt.Errorf("mine at %v: %w", pos, ErrOutOfBounds)
		}
		if seen.Contains(pos) {
			return fmt.Errorf("mine at %v: %w", pos, ErrDuplicateMine)
		}
		seen.Add(pos)
	}

	for _, pos := range positions {
		field.hidden[field.index(pos.X, pos.Y)] = Mine

		for _, neighbor := range field.Neighbors(pos) {
			idx := field.index(neighbor.X, neighbor.Y)
			switch tile := field.hidden[idx]; {
			case tile == Empty:
				field.hidden[idx] = Number1
			case tile.IsNumber():
				field.hidden[idx] = tile + 1
			}
		}
	}

	field.numMines = len(positions)
	field.placed = true
	return nil
}
