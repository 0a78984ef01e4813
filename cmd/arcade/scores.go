package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, with the
wave, combo and kills recorded for each session.

Examples:
  arcade scores shooter
  arcade scores towerdefense
  arcade scores maze --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	if len(scores) == 0 {
		fmt.Println()
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	t := newTable("Rank", "Score", "Wave", "Combo", "Kills", "Date")
	for i, e := range scores {
		t.Row(
			fmt.Sprintf("%d", i+1),
			core.FormatNumber(e.Score),
			fmt.Sprintf("%d", e.Stats.Wave),
			fmt.Sprintf("%d", e.Stats.BestCombo),
			fmt.Sprintf("%d", e.Stats.Kills),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.String())

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Best: %s  Games: %d  Average: %s\n",
		core.FormatNumber(stats.HighScore), stats.GamesCount, core.FormatNumber(int(stats.AvgScore)))
	return nil
}
