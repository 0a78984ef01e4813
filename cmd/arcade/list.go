package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/logging"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with its best stored score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Scores are optional here; a missing database just leaves the column empty.
	var stats map[string]*storage.GameStats
	if store := openStore(logging.Discard()); store != nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	t := newTable("ID", "Title", "Best", "Played")
	for _, g := range games {
		best, played := "-", "0"
		if s, ok := stats[g.ID]; ok {
			best = core.FormatNumber(s.HighScore)
			played = fmt.Sprintf("%d", s.GamesCount)
		}
		t.Row(g.ID, g.Title, best, played)
	}

	fmt.Println("Available games:")
	fmt.Println(t.String())
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// newTable builds the bordered table style shared by the listing commands.
func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
