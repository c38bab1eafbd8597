package game

import (
	"fmt"
	"strings"
)

type BoardState int

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return fmt.Sprintf("BoardState(%d)", int(state))
	}
}

// ColorMode controls whether the field is printed with colors.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var ColorModes = map[string]ColorMode{
	"auto":   ColorAuto,
	"always": ColorAlways,
	"never":  ColorNever,
}

func ParseColorMode(value string) (ColorMode, error) {
	if mode, isValid := ColorModes[strings.ToLower(value)]; isValid {
		return mode, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (expected auto, always or never)", value)
}

func (mode ColorMode) String() string {
	for name, m := range ColorModes {
		if m == mode {
			return name
		}
	}
	return fmt.Sprint(int(mode))
}

func (mode *ColorMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return err
	}

	parsed, err := ParseColorMode(value)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

// Action is what a move does to the chosen cell.
type Action int

const (
	Reveal Action = iota
	Flag
	Chord
)

// ParseAction reads the answer to the "Flag?" prompt. Anything that is not
// a flag or chord request reveals the cell.
func ParseAction(answer string) Action {
	switch strings.ToUpper(strings.TrimSpace(answer)) {
	case "F":
		return Flag
	case "C":
		return Chord
	default:
		return Reveal
	}
}

func (action Action) String() string {
	switch action {
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	default:
		return "reveal"
	}
}

// Move is a single turn of the player: a cell and what to do with it.
type Move struct {
	X, Y   int
	Action Action
}
