package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/logging"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// saveTimeout bounds the score write at game over so a slow disk never
// stalls the frame loop for long.
const saveTimeout = 2 * time.Second

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	log      *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     heldKeys
	input    core.InputFrame
	state    core.GameState
	epoch    time.Time      // first tick; later ticks are offsets from it
	clock    sim.FrameClock // tick offsets to frame deltas
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// The stored high score is handed to the game through the runtime config.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err != nil {
			logger.Warn("cannot read high score", "game", game.ID(), "err", err)
		} else {
			cfg.HighScore = best
		}
	}

	game.Reset(cfg)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		log:    logger,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   make(heldKeys),
		input:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.input.Click(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	now := time.Now()
	for _, a := range actions {
		m.input.Set(a)
		if m.keys.Holdable(a) {
			m.held.press(a, now)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can refit their viewport keep the running session.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if m.state.InMenu {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.epoch.IsZero() {
		m.epoch = now
	}
	dt := m.clock.Delta(now.Sub(m.epoch))

	// Back on the game's own title screen leaves for the arcade menu.
	if m.state.InMenu && m.input.Has(core.ActionBack) {
		m.quitting = true
		return m, tea.Quit
	}

	m.held.apply(&m.input, now)
	result := m.game.Step(m.input, dt)
	prev := m.state
	m.state = result.State

	if m.state.GameOver && !prev.GameOver {
		m.recordSession()
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordSession saves the finished session once, on the game-over edge.
func (m *Model) recordSession() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	var (
		stats storage.SessionStats
		best  bool
		err   error
	)
	if s, ok := m.game.(registry.Summarizer); ok {
		sum := s.Summary()
		stats = storage.SessionStats{
			Wave:      sum.Wave,
			BestCombo: sum.BestCombo,
			Kills:     sum.Kills,
			Duration:  sum.Duration,
		}
		best, err = m.store.RecordSession(ctx, m.game.ID(), m.state.Score, stats)
	} else {
		// Without session figures only the score row is stored.
		_, err = m.store.SaveScore(m.game.ID(), m.state.Score)
		best = m.state.Score > m.config.HighScore
	}
	if err != nil {
		m.log.Error("cannot record session", "game", m.game.ID(), "err", err)
		return
	}
	if best {
		m.config.HighScore = m.state.Score
	}
	m.log.Info("session recorded", "game", m.game.ID(), "score", m.state.Score, "high", best, "wave", stats.Wave, "kills", stats.Kills)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
// Games holding resources are closed when the program exits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)
	model.log.Info("game started", "game", game.ID(), "seed", model.config.Seed, "fps", model.config.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()

	if c, ok := game.(registry.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			model.log.Warn("cannot close game", "game", game.ID(), "err", cerr)
		}
	}
	model.log.Info("game closed", "game", game.ID())
	return err
}
