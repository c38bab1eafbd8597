package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/minefield"
)

var (
	log = logrus.New()

	flagConfig = game.NewGameConfig()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `termsweep is a Minesweeper game played from the terminal.

Each turn, enter the row and column of a cell, then answer the "Flag?"
prompt: F toggles a flag, C reveals the neighbors of a number whose mines
are all flagged, and anything else reveals the cell.

Play on the default 10x10 board
	termsweep

Replay a board
	termsweep --seed 1234
`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd.Flags(), flagConfig, configPath)
		if err != nil {
			return err
		}

		if err := setupLogging(config.LogLevel); err != nil {
			return err
		}

		state, err := game.Run(config, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		log.WithField("state", state).Info("finished")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type colorModeValue game.ColorMode

func newColorModeValue(val game.ColorMode, p *game.ColorMode) *colorModeValue {
	*p = val
	return (*colorModeValue)(p)
}

func (modeVal *colorModeValue) String() string {
	return game.ColorMode(*modeVal).String()
}

func (modeVal *colorModeValue) Set(value string) error {
	mode, err := game.ParseColorMode(value)
	if err != nil {
		return err
	}
	*modeVal = colorModeValue(mode)
	return nil
}

func (modeVal *colorModeValue) Type() string {
	return "colorMode"
}

func bindFlags(flags *pflag.FlagSet, config *game.GameConfig) {
	// Define our own help without a shorthand, as -h is --height
	// Ref: https://github.com/spf13/cobra/issues/291
	flags.Bool("help", false, "Help for this command")

	flags.IntVarP(&config.Width, "width", "w", config.Width, "Width of the board, in cells")
	flags.IntVarP(&config.Height, "height", "h", config.Height, "Height of the board, in cells")
	flags.IntVarP(&config.NumMines, "mines", "m", config.NumMines, "Number of mines to place (negative to use --mine-pct)")
	flags.Float64Var(&config.MinePct, "mine-pct", config.MinePct, "Fraction of cells holding a mine, when --mines is not given")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "Seed for mine placement (0 picks one from the clock)")
	flags.Var(newColorModeValue(config.Color, &config.Color), "color", "When to color the board: auto, always or never")
	flags.BoolVar(&config.ShowHidden, "show-hidden", config.ShowHidden, "Print the hidden board after every turn")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level (debug, info, warning, error)")
}

// resolveConfig starts from the defaults, applies the config file at path
// if any, then every flag explicitly set on the command line.
func resolveConfig(flags *pflag.FlagSet, fromFlags game.GameConfig, path string) (game.GameConfig, error) {
	config := game.NewGameConfig()
	if path != "" {
		if err := game.LoadConfig(path, &config); err != nil {
			return config, err
		}
	}

	overrides := map[string]func(){
		"width":       func() { config.Width = fromFlags.Width },
		"height":      func() { config.Height = fromFlags.Height },
		"mines":       func() { config.NumMines = fromFlags.NumMines },
		"mine-pct":    func() { config.MinePct = fromFlags.MinePct },
		"seed":        func() { config.Seed = fromFlags.Seed },
		"color":       func() { config.Color = fromFlags.Color },
		"show-hidden": func() { config.ShowHidden = fromFlags.ShowHidden },
		"log-level":   func() { config.LogLevel = fromFlags.LogLevel },
	}
	for name, override := range overrides {
		if flags.Changed(name) {
			override()
		}
	}

	// An explicit percentage wins over a count coming from the config file
	if flags.Changed("mine-pct") && !flags.Changed("mines") {
		config.NumMines = -1
	}

	return config, nil
}

func setupLogging(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	for _, logger := range []*logrus.Logger{log, game.Log, minefield.Log} {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logLevel)
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return nil
}

func init() {
	bindFlags(rootCmd.Flags(), &flagConfig)
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
}
