package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/they4kman/termsweep/minefield"
	"golang.org/x/term"
)

const clearScreen = "\x1B[2J\x1B[1;1H"

// Symbols only used once the game is lost
const (
	explodedSymbol  = "*"
	wrongFlagSymbol = "W"
)

type palette struct {
	unknown   *color.Color
	flag      *color.Color
	empty     *color.Color
	number    *color.Color
	mine      *color.Color
	exploded  *color.Color
	wrongFlag *color.Color
	win       *color.Color
	lose      *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		unknown:   color.New(color.FgHiBlack),
		flag:      color.New(color.FgGreen),
		empty:     color.New(color.FgHiBlue),
		number:    color.New(color.FgBlue),
		mine:      color.New(color.FgRed),
		exploded:  color.New(color.FgWhite, color.BgRed, color.Bold),
		wrongFlag: color.New(color.FgRed, color.CrossedOut),
		win:       color.New(color.FgGreen, color.Bold),
		lose:      color.New(color.FgRed, color.Bold),
	}

	for _, c := range []*color.Color{
		p.unknown, p.flag, p.empty, p.number, p.mine, p.exploded, p.wrongFlag, p.win, p.lose,
	} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Renderer prints minefields to a terminal, or any other writer.
type Renderer struct {
	out        io.Writer
	isTerminal bool
	palette    palette
}

func NewRenderer(out io.Writer, mode ColorMode) *Renderer {
	isTerminal := false
	if f, ok := out.(interface{ Fd() uintptr }); ok {
		isTerminal = term.IsTerminal(int(f.Fd()))
	}

	var useColor bool
	switch mode {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	default:
		useColor = isTerminal
	}

	return &Renderer{
		out:        out,
		isTerminal: isTerminal,
		palette:    newPalette(useColor),
	}
}

// Clear wipes the screen. Nothing is written when not printing to a terminal.
func (r *Renderer) Clear() {
	if r.isTerminal {
		fmt.Fprint(r.out, clearScreen)
	}
}

func (r *Renderer) Message(format string, a ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", a...)
}

func (r *Renderer) Win(message string) {
	fmt.Fprintln(r.out, r.palette.win.Sprint(message))
}

func (r *Renderer) Lose(message string) {
	fmt.Fprintln(r.out, r.palette.lose.Sprint(message))
}

// Status prints the number of mines not yet accounted for by a flag.
func (r *Renderer) Status(field *minefield.Minefield) {
	fmt.Fprintf(r.out, "Mines left: %03d\n", field.NumMines()-field.NumFlags())
}

// Field prints what the player knows of the field.
func (r *Renderer) Field(field *minefield.Minefield) {
	r.grid(field, func(tile minefield.Tile, state minefield.TileState) string {
		switch state {
		case minefield.Unknown:
			return r.palette.unknown.Sprint(state)
		case minefield.Flagged:
			return r.palette.flag.Sprint(state)
		default:
			return r.tile(tile)
		}
	})
}

// LostField prints the field once a mine has been revealed: every mine is
// shown, and flags placed on safe cells are marked as wrong.
func (r *Renderer) LostField(field *minefield.Minefield) {
	r.grid(field, func(tile minefield.Tile, state minefield.TileState) string {
		switch {
		case tile == minefield.Mine && state == minefield.Known:
			return r.palette.exploded.Sprint(explodedSymbol)
		case state == minefield.Flagged && tile != minefield.Mine:
			return r.palette.wrongFlag.Sprint(wrongFlagSymbol)
		case state == minefield.Flagged:
			return r.palette.flag.Sprint(state)
		case tile == minefield.Mine:
			return r.tile(tile)
		case state == minefield.Unknown:
			return r.palette.unknown.Sprint(state)
		default:
			return r.tile(tile)
		}
	})
}

// HiddenField prints the ground truth of every cell.
func (r *Renderer) HiddenField(field *minefield.Minefield) {
	r.grid(field, func(tile minefield.Tile, _ minefield.TileState) string {
		return r.tile(tile)
	})
}

func (r *Renderer) Separator(field *minefield.Minefield) {
	cellWidth := len(strconv.Itoa(field.Width()-1)) + 1
	fmt.Fprintln(r.out, strings.Repeat("=", field.Width()*cellWidth-1))
}

func (r *Renderer) tile(tile minefield.Tile) string {
	switch {
	case tile == minefield.Empty:
		return r.palette.empty.Sprint(tile)
	case tile == minefield.Mine:
		return r.palette.mine.Sprint(tile)
	default:
		return r.palette.number.Sprint(tile)
	}
}

// grid prints the column numbers, then one line per row prefixed with its
// number. Every symbol is a single character wide.
func (r *Renderer) grid(field *minefield.Minefield, symbol func(minefield.Tile, minefield.TileState) string) {
	colWidth := len(strconv.Itoa(field.Width() - 1))
	rowWidth := len(strconv.Itoa(field.Height() - 1))
	if rowWidth < 2 {
		rowWidth = 2
	}

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", rowWidth+1))
	for x := 0; x < field.Width(); x++ {
		fmt.Fprintf(&b, "%-*d ", colWidth, x)
	}
	b.WriteString("\n")

	padding := strings.Repeat(" ", colWidth)
	for y := 0; y < field.Height(); y++ {
		fmt.Fprintf(&b, "%*d ", rowWidth, y)
		for x := 0; x < field.Width(); x++ {
			tile, _ := field.TileAt(x, y)
			state, _ := field.StateAt(x, y)
			b.WriteString(symbol(tile, state))
			b.WriteString(padding)
		}
		b.WriteString("\n")
	}

	fmt.Fprint(r.out, b.String())
}
