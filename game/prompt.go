package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks the player for moves, one answer per line.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine prints prompt and returns the next line of input, trimmed.
// io.EOF is returned once the input is exhausted.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// ReadInt prompts until the player enters a whole number.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "%q is not a number, try again.\n", line)
	}
}

func (p *Prompter) ReadMove() (Move, error) {
	row, err := p.ReadInt("Enter row: ")
	if err != nil {
		return Move{}, err
	}
	col, err := p.ReadInt("Enter col: ")
	if err != nil {
		return Move{}, err
	}
	answer, err := p.ReadLine("Flag?: ")
	if err != nil {
		return Move{}, err
	}

	return Move{X: col, Y: row, Action: ParseAction(answer)}, nil
}
