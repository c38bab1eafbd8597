package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultWidth   = 10
	DefaultHeight  = 10
	DefaultMinePct = 0.1
)

type GameConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Fraction of cells holding a mine, used when NumMines is negative
	MinePct float64 `yaml:"mine_pct"`
	// Exact number of mines to place; negative to derive it from MinePct
	NumMines int `yaml:"mines"`

	// Seed of the mine placement; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	Color ColorMode `yaml:"color"`
	// Print the hidden field after every turn
	ShowHidden bool `yaml:"show_hidden"`

	LogLevel string `yaml:"log_level"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		MinePct:    DefaultMinePct,
		NumMines:   -1,
		Seed:       0,
		Color:      ColorAuto,
		ShowHidden: false,
		LogLevel:   "warning",
	}
}

// LoadConfig reads a YAML config file over the values already in config.
func LoadConfig(path string, config *GameConfig) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(b, config); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// MineCount is the number of mines the board will hold.
func (config GameConfig) MineCount() int {
	if config.NumMines >= 0 {
		return config.NumMines
	}
	return int(config.MinePct * float64(config.Width*config.Height))
}

func (config GameConfig) Validate() error {
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", config.Width, config.Height)
	}
	if config.NumMines < 0 && (config.MinePct < 0 || config.MinePct > 1) {
		return fmt.Errorf("mine percentage must be between 0 and 1, got %v", config.MinePct)
	}
	if numCells := config.Width * config.Height; config.MineCount() > numCells {
		return fmt.Errorf("cannot place %d mines on %d cells", config.MineCount(), numCells)
	}
	return nil
}
