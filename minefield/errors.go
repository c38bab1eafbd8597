package minefield

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds      = errors.New("coordinates out of bounds")
	ErrFlagged          = errors.New("cell is flagged")
	ErrAlreadyGenerated = errors.New("mines have already been placed")
	ErrDuplicateMine    = errors.New("duplicate mine position")
)

// InvalidParamsError is returned when a minefield cannot be built or filled
// with the requested dimensions or mine count.
type InvalidParamsError struct {
	Width, Height int
	NumMines      int
}

func (e *InvalidParamsError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a minefield with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a minefield with height %d", e.Height)
	case e.NumMines < 0:
		return fmt.Sprintf("cannot place a negative number of mines: %d", e.NumMines)
	case e.NumMines > e.Width*e.Height:
		return fmt.Sprintf("not enough space for %d mines (%d > %d * %d)",
			e.NumMines, e.NumMines, e.Width, e.Height)
	default:
		return "invalid minefield parameters"
	}
}
