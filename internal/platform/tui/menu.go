package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one game row in the picker.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
	Played    int
}

type menuChoice int

const (
	choiceNone menuChoice = iota
	choiceGame
	choiceScores
	choiceQuit
)

// MenuModel is the game picker shown before a session starts.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	choice menuChoice
}

// NewMenuModel lists every registered game with its stored best score.
// A nil store or a failed stats query only hides the score column.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if s := stats[g.ID]; s != nil {
			items[i].HighScore, items[i].Played = s.HighScore, s.GamesCount
		}
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.choice = m.pick(m.keys.MapKeyToMenuAction(msg)); m.choice != choiceNone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// pick moves the cursor (wrapping at both ends) or returns a final choice.
func (m *MenuModel) pick(action MenuAction) menuChoice {
	n := len(m.items)
	switch action {
	case MenuActionQuit, MenuActionBack:
		return choiceQuit
	case MenuActionScoreboard:
		return choiceScores
	case MenuActionSelect:
		if n > 0 {
			return choiceGame
		}
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	}
	return choiceNone
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render("N E O N   A R C A D E"),
		"",
		menuHintStyle.Render("Select a game"),
		"",
	}
	for i, item := range m.items {
		hi, played := "", ""
		if item.Played > 0 {
			hi = "HI " + core.FormatNumber(item.HighScore)
			played = fmt.Sprintf("%dx", item.Played)
		}
		style := menuItemStyle
		if i == m.cursor {
			style = menuCurStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf(" %-16s %10s %5s ", item.Title, hi, played)))
	}
	lines = append(lines, "",
		menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, w))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the highlighted item once it has been chosen, else nil.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choiceGame {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// IsQuitting reports whether the player left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.choice == choiceQuit
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.choice == choiceScores
}

// Config returns the runtime config, resized to the last window size seen.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by
// its printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
