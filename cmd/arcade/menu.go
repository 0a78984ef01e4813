package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, then pick
a difficulty. Leaving a game's title screen with B returns here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, logCloser, err := openLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		picked, err := tui.RunDifficultySelector(game.Title(), cfg)
		if err != nil {
			return err
		}
		cfg = picked.Config
		if picked.Preset == "" {
			if picked.Back {
				continue
			}
			return nil
		}

		game, err = registry.CreateConfigured(gameID, registry.Options{
			Difficulty: picked.Preset,
			Logger:     logger,
		})
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "err", err)
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless --seed pinned it.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, logger, cfg); err != nil {
			logger.Error("game failed", "game", gameID, "err", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
