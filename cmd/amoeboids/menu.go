package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amoeboids/internal/games/amoeboids"
	"github.com/vovakirdan/amoeboids/internal/platform/tui"
	"github.com/vovakirdan/amoeboids/internal/registry"
	"github.com/vovakirdan/amoeboids/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play, Tab for the
scoreboard. Leaving a game (B while paused or after game over) returns
to the menu.

Examples:
  amoeboids menu
  amoeboids menu --fps 30
  amoeboids menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	hold := latchHoldTicks(logger)
	title, _ := registry.Title(amoeboids.GameID)

	for {
		menuResult, err := tui.RunMenu(store, cfg, amoeboids.GameID)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, amoeboids.GameID, title, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(amoeboids.GameID, menuResult.Preset)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		logger.Debug("starting game", "difficulty", menuResult.Preset)

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		model := tui.NewGameModel(game, cfg, tui.Options{
			Store:          store,
			Logger:         logger,
			LatchHoldTicks: hold,
		})
		back, err := tui.RunGame(model)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
