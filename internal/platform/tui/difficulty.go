package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// difficultyOption is one preset offered before a game starts.
type difficultyOption struct {
	Preset string
	Label  string
	Desc   string
}

var difficultyOptions = []difficultyOption{
	{"normal", "Normal", "Starts at 30% difficulty and ramps up"},
	{"easy", "Easy", "Starts gentle, ramps up to the max"},
	{"hard", "Hard", "Starts at 70% difficulty"},
	{"fixed", "Fixed", "No progression, config values as written"},
}

// DifficultyModel lets users choose a difficulty preset for a game.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    string
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a preset picker titled with the game's name.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	return DifficultyModel{
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(difficultyOptions)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.chosen = difficultyOptions[m.cursor].Preset
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the picker.
func (m DifficultyModel) View() string {
	if m.quitting || m.back || m.chosen != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render("Choose difficulty"), m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		style := menuItemStyle
		if i == m.cursor {
			style = menuCurStyle
		}
		b.WriteString(centerText(style.Render(fmt.Sprintf(" %-8s ", opt.Label)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	desc := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	b.WriteString(centerText(desc.Render(difficultyOptions[m.cursor].Desc), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Start  |  B: Back  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// DifficultyResult holds the outcome of the picker.
type DifficultyResult struct {
	Preset string // empty when the user backed out or quit
	Back   bool
	Config core.RuntimeConfig
}

// RunDifficultySelector asks for a preset before starting the named game.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (DifficultyResult, error) {
	p := tea.NewProgram(NewDifficultyModel(title, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return DifficultyResult{Config: cfg}, err
	}
	m, ok := final.(DifficultyModel)
	if !ok {
		return DifficultyResult{Config: cfg}, nil
	}

	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	return DifficultyResult{Preset: m.chosen, Back: m.back, Config: cfg}, nil
}
