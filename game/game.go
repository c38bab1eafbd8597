package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/minefield"
)

var Log = logrus.New()

type Game struct {
	config GameConfig
	field  *minefield.Minefield
	state  BoardState

	renderer *Renderer
	prompter *Prompter
}

// NewGame builds the field described by config and places its mines.
func NewGame(config GameConfig, in io.Reader, out io.Writer) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	field, err := minefield.New(config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(config.Seed))

	if err := field.Generate(r, config.MineCount()); err != nil {
		return nil, fmt.Errorf("generating mines: %w", err)
	}

	Log.WithFields(logrus.Fields{
		"width":  config.Width,
		"height": config.Height,
		"mines":  field.NumMines(),
		"seed":   config.Seed,
	}).Debug("new game")

	return newGame(config, field, in, out), nil
}

func newGame(config GameConfig, field *minefield.Minefield, in io.Reader, out io.Writer) *Game {
	return &Game{
		config:   config,
		field:    field,
		state:    Ongoing,
		renderer: NewRenderer(out, config.Color),
		prompter: NewPrompter(in, out),
	}
}

func (g *Game) Field() *minefield.Minefield {
	return g.field
}

func (g *Game) State() BoardState {
	return g.state
}

// Seed returns the seed the mines were placed with, to replay the same board.
func (g *Game) Seed() int64 {
	return g.config.Seed
}

// Play runs turns until a mine is revealed, the field is cleared or the
// input runs out.
func (g *Game) Play() (BoardState, error) {
	if g.field.CheckWin() {
		g.state = Won
	}

	g.render()

	for g.state == Ongoing {
		move, err := g.prompter.ReadMove()
		if errors.Is(err, io.EOF) {
			g.renderer.Message("")
			break
		}
		if err != nil {
			return g.state, err
		}

		g.renderer.Clear()

		if err := g.Apply(move); err != nil {
			switch {
			case errors.Is(err, minefield.ErrOutOfBounds):
				g.renderer.Message("Row %d, col %d is outside the field (%d rows, %d cols), try again.",
					move.Y, move.X, g.field.Height(), g.field.Width())
			case errors.Is(err, minefield.ErrFlagged):
				g.renderer.Message("Row %d, col %d is flagged; unflag it first.", move.Y, move.X)
			default:
				return g.state, err
			}
		}

		if g.state != Lost {
			g.render()
		}
	}

	switch g.state {
	case Lost:
		g.renderer.Lose("Hit mine!")
		g.renderer.LostField(g.field)
		g.renderer.Separator(g.field)
	case Won:
		g.renderer.Win("You win!")
	}
	g.renderer.Message("GAME OVER!")

	Log.WithFields(logrus.Fields{
		"state": g.state,
		"seed":  g.config.Seed,
	}).Debug("game over")

	return g.state, nil
}

// Apply plays a single move and updates the state of the game.
func (g *Game) Apply(move Move) error {
	if g.state != Ongoing {
		return nil
	}

	Log.WithFields(logrus.Fields{
		"x":      move.X,
		"y":      move.Y,
		"action": move.Action,
	}).Debug("move")

	var (
		hitMine bool
		err     error
	)
	switch move.Action {
	case Flag:
		err = g.field.ToggleFlag(move.X, move.Y)
	case Chord:
		hitMine, err = g.field.Chord(move.X, move.Y)
	default:
		var tile minefield.Tile
		tile, err = g.field.Reveal(move.X, move.Y)
		hitMine = tile == minefield.Mine
	}
	if err != nil {
		return err
	}

	switch {
	case hitMine:
		g.state = Lost
	case g.field.CheckWin():
		g.state = Won
	}
	return nil
}

func (g *Game) render() {
	g.renderer.Status(g.field)
	g.renderer.Field(g.field)
	g.renderer.Separator(g.field)

	if g.config.ShowHidden {
		g.renderer.HiddenField(g.field)
		g.renderer.Separator(g.field)
	}
}

// Run plays a whole game described by config, reading moves from in.
func Run(config GameConfig, in io.Reader, out io.Writer) (BoardState, error) {
	g, err := NewGame(config, in, out)
	if err != nil {
		return Ongoing, err
	}
	return g.Play()
}
