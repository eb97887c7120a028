package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amoeboids/internal/games/amoeboids"
	"github.com/vovakirdan/amoeboids/internal/platform/tui"
	"github.com/vovakirdan/amoeboids/internal/registry"
	"github.com/vovakirdan/amoeboids/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Amoeboids",
	Long: `Start playing right away.

Controls:
  W/Up       - Thrust
  S/Down     - Brake
  A/D, Left/Right - Turn
  Space      - Fire (also starts the game)
  P/Esc      - Pause
  Enter/R    - Start / resume / continue
  B          - Leave (while paused or after game over)
  Ctrl+S     - Screenshot and state dump
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  amoeboids play
  amoeboids play --difficulty hard
  amoeboids play --seed 42 --log-file ./amoeboids.log
  amoeboids play --config ./my-amoeboids.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(amoeboids.GameID, "")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:          store,
		Logger:         logger,
		LatchHoldTicks: latchHoldTicks(logger),
	}
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
