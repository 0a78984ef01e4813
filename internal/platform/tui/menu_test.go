package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func testMenu() MenuModel {
	return MenuModel{
		items: []MenuItem{
			{GameID: "hacker", Title: "Grid Breach"},
			{GameID: "maze", Title: "Neon Maze", HighScore: 1500, Played: 3},
			{GameID: "runner", Title: "Neon Runner"},
		},
		config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
		keys:   NewKeyMapper(),
	}
}

func press(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuCursorWraps(t *testing.T) {
	m := testMenu()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 2 {
		t.Errorf("up from the first row should wrap to the last, got %d", m.cursor)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("down from the last row should wrap to the first, got %d", m.cursor)
	}
}

func TestMenuSelect(t *testing.T) {
	m := testMenu()
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Selected() != nil {
		t.Fatal("nothing is selected before enter")
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("selecting a game should end the menu program")
	}
	if sel := m.Selected(); sel == nil || sel.GameID != "maze" {
		t.Errorf("Selected() = %+v, want maze", sel)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m, _ := press(testMenu(), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() || m.IsQuitting() {
		t.Error("tab should request the scoreboard")
	}

	m, _ = press(testMenu(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestMenuViewShowsHighScores(t *testing.T) {
	view := testMenu().View()
	if !strings.Contains(view, "N E O N") {
		t.Error("view is missing the title")
	}
	if !strings.Contains(view, "HI 1,500") {
		t.Errorf("view should show maze's high score:\n%s", view)
	}
}
