package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the built-in YAML config for a game. Save it as
~/.arcade/configs/<game>.yaml (or pass it with 'play --config') to tune
the game.

Examples:
  arcade config towerdefense > ~/.arcade/configs/towerdefense.yaml
  arcade config runner`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	data, ok := config.DefaultYAML(gameID)
	if !ok {
		return fmt.Errorf("no default config for %s", gameID)
	}
	_, err := os.Stdout.Write(data)
	return err
}
