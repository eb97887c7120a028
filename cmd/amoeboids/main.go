// amoeboids is a terminal shooter: steer a ship around a wrapping plane and
// shoot amoebas that split into smaller, faster amoebas.
//
// Usage:
//
//	amoeboids play           - Play immediately
//	amoeboids menu           - Pick a difficulty, view scores, play again
//	amoeboids serve          - Start SSH server for remote play
//	amoeboids scores         - Show high scores
//	amoeboids config init    - Write the default config file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.amoeboids/scores.db)
//	--config <path>     - Use a custom config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/amoeboids/internal/config"
	"github.com/vovakirdan/amoeboids/internal/core"
	"github.com/vovakirdan/amoeboids/internal/games/amoeboids"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "amoeboids",
	Short: "Amoeboids - shoot splitting amoebas in your terminal",
	Long: `Amoeboids is a terminal arcade shooter. Big amoebas split into
medium ones, medium into small ones; clear them all to reach the next level.
Touching an amoeba ends the game.

Available commands:
  play     - Play right away
  menu     - Difficulty picker with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Manage the config file

Examples:
  amoeboids play
  amoeboids play --difficulty hard
  amoeboids menu
  amoeboids serve --ssh :2222
  amoeboids scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		amoeboids.SetConfigPath(flagConfig)
		amoeboids.SetDifficultyPreset(flagDifficulty)
		if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.amoeboids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger. Without --log-file it writes to fallback,
// which is io.Discard for commands that own the terminal.
// The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "amoeboids",
		Level:           level,
	})
	amoeboids.SetLogger(logger)
	return logger, closeFn, nil
}

// runtimeConfig sizes the first frame from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg.Normalized()
}

// latchHoldTicks reads the key hold time from the effective config.
func latchHoldTicks(logger *log.Logger) int {
	cfg, err := config.LoadAmoeboids(flagConfig)
	if err != nil {
		logger.Warn("could not load config", "err", err)
		return config.DefaultAmoeboidsConfig().Input.LatchHoldTicks
	}
	return cfg.Input.LatchHoldTicks
}
