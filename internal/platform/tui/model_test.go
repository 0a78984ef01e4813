package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

type fakeGame struct {
	state   core.GameState
	inputs  []core.InputFrame
	dts     []time.Duration
	resets  int
	resized [2]int
	summary core.SessionSummary
	high    int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.high = cfg.HighScore
}

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.dts = append(g.dts, dt)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen)      { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState        { return g.state }
func (g *fakeGame) Summary() core.SessionSummary { return g.summary }
func (g *fakeGame) Resize(w, h int)              { g.resized = [2]int{w, h} }

func newTestModel(g *fakeGame, store *storage.Store) Model {
	return NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestTickDeltaFromTimestamps(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	t0 := time.Now()
	m, _ = send(m, TickMsg(t0))
	m, _ = send(m, TickMsg(t0.Add(16*time.Millisecond)))
	m, _ = send(m, TickMsg(t0.Add(66*time.Millisecond)))
	m, _ = send(m, TickMsg(t0.Add(40*time.Millisecond))) // clock stepped back
	m, _ = send(m, TickMsg(t0.Add(76*time.Millisecond)))

	want := []time.Duration{0, 16 * time.Millisecond, 50 * time.Millisecond, 0, 10 * time.Millisecond}
	if len(g.dts) != len(want) {
		t.Fatalf("steps = %d, want %d", len(g.dts), len(want))
	}
	for i := range want {
		if g.dts[i] != want[i] {
			t.Errorf("dt[%d] = %v, want %v", i, g.dts[i], want[i])
		}
	}
	if g.resets != 1 {
		t.Errorf("game reset %d times, want 1", g.resets)
	}
}

func TestPressIsDiscreteButHoldsWithinWindow(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	now := time.Now()
	m, _ = send(m, TickMsg(now))
	m, _ = send(m, TickMsg(now.Add(50*time.Millisecond)))
	m, _ = send(m, TickMsg(now.Add(time.Second)))

	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].IsHeld(core.ActionLeft) {
		t.Error("first frame should see the press")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("press must only fire once")
	}
	if !g.inputs[1].IsHeld(core.ActionLeft) {
		t.Error("key should stay held inside the window")
	}
	if g.inputs[2].IsHeld(core.ActionLeft) {
		t.Error("key should be released after the window")
	}
}

func TestMouseClickReachesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(m, tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(m, TickMsg(time.Now()))
	m, _ = send(m, TickMsg(time.Now()))

	in := g.inputs[0]
	if !in.Pointer.Valid || in.Pointer.X != 7 || in.Pointer.Y != 3 || !in.Has(core.ActionPlace) {
		t.Errorf("click not delivered: %+v", in.Pointer)
	}
	if g.inputs[1].Pointer.Valid {
		t.Error("click must not repeat on the next frame")
	}
}

func TestBackOnTitleScreenQuits(t *testing.T) {
	g := &fakeGame{state: core.GameState{InMenu: true}}
	m := newTestModel(g, nil)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	_, cmd := send(m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Back on the title screen should quit to the arcade menu")
	}
	if len(g.inputs) != 0 {
		t.Error("game should not step after quitting")
	}
}

func TestGameOverRecordsSessionOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("fake", 50)

	g := &fakeGame{summary: core.SessionSummary{Wave: 4, BestCombo: 3, Kills: 9, Duration: 2 * time.Minute}}
	m := newTestModel(g, store)
	if g.high != 50 {
		t.Errorf("stored high score not passed to Reset: %d", g.high)
	}

	now := time.Now()
	m, _ = send(m, TickMsg(now))
	g.state = core.GameState{Score: 120, GameOver: true}
	m, _ = send(m, TickMsg(now.Add(time.Millisecond)))
	m, _ = send(m, TickMsg(now.Add(2*time.Millisecond)))

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("scores = %d, want 2", len(scores))
	}
	if scores[0].Score != 120 || scores[0].Stats.Wave != 4 || scores[0].Stats.Kills != 9 {
		t.Errorf("recorded %+v", scores[0])
	}
	if m.config.HighScore != 120 {
		t.Errorf("high score = %d, want 120", m.config.HighScore)
	}
}

// plainGame hides fakeGame's optional interfaces.
type plainGame struct{ registry.Game }

func TestGameOverWithoutSummaryStoresScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("fake", 200)

	g := &fakeGame{}
	m := NewModel(plainGame{g}, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	now := time.Now()
	m, _ = send(m, TickMsg(now))
	g.state = core.GameState{Score: 150, GameOver: true}
	m, _ = send(m, TickMsg(now.Add(time.Millisecond)))

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 2 || scores[1].Score != 150 || scores[1].Stats != (storage.SessionStats{}) {
		t.Fatalf("unexpected scores: %+v", scores)
	}
	if m.config.HighScore != 200 {
		t.Errorf("high score = %d, want 200 to stand", m.config.HighScore)
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 1 {
		t.Error("a resizable game must not be reset")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Error("screen buffer not resized")
	}
}

func TestViewRendersGame(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	if out := m.View(); len(out) == 0 {
		t.Error("empty view")
	}
}
