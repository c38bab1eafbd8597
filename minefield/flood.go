package minefield

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/util/collections"
)

// Reveal shows the cell at (x, y) and returns its tile. Revealing an empty
// cell also reveals the empty region 4-connected to it, along with the
// numbers bordering that region.
//
// A mine is revealed and returned like any other tile; what happens to the
// game afterwards is up to the caller.
func (field *Minefield) Reveal(x, y int) (Tile, error) {
	if !field.InBounds(x, y) {
		return Empty, ErrOutOfBounds
	}

	idx := field.index(x, y)
	if field.shown[idx] == Flagged {
		return Empty, ErrFlagged
	}

	tile := field.hidden[idx]
	field.shown[idx] = Known

	if tile == Empty {
		revealed := field.flood(Pos{x, y})
		Log.WithFields(logrus.Fields{
			"pos":      Pos{x, y},
			"revealed": revealed,
		}).Debug("flooded empty region")
	}

	return tile, nil
}

// flood reveals the region of empty cells reachable from start through
// orthogonal steps, and the numbers bordering it. Mines are never visited.
// It returns the number of cells visited.
func (field *Minefield) flood(start Pos) int {
	visited := make(collections.Set[Pos])
	visitQueue := deque.New[Pos]()

	visited.Add(start)
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront()

		idx := field.index(cell.X, cell.Y)
		if field.hidden[idx] == Empty {
			field.shown[idx] = Known
		}

		for _, neighbor := range field.adjacent(cell, orthogonal) {
			if visited.Contains(neighbor) {
				continue
			}

			neighborIdx := field.index(neighbor.X, neighbor.Y)
			switch tile := field.hidden[neighborIdx]; {
			case tile == Empty:
				visited.Add(neighbor)
				visitQueue.PushBack(neighbor)
			case tile.IsNumber():
				visited.Add(neighbor)
				field.shown[neighborIdx] = Known
			}
		}
	}

	return visited.Len()
}
