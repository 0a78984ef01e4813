package maze

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// started begins a session on an empty vault so each test lays out its own cells.
func started(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 11})
	if !g.machine.Start() {
		t.Fatal("session did not start")
	}
	g.grid = NewGrid(g.cfg.Width, g.cfg.Height)
	return g
}

func wait(g *Game, d time.Duration) {
	for ; d > 0; d -= 100 * time.Millisecond {
		g.Step(core.NewInputFrame(), 100*time.Millisecond)
	}
}

func TestInvalidMoveHasNoEffect(t *testing.T) {
	g := started(t)

	if err := g.Move(0, -1); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if g.Player() != (Pos{0, 0}) || g.moves != 0 {
		t.Error("player should not move")
	}
	if g.Message() != "Invalid move!" {
		t.Errorf("message = %q", g.Message())
	}
	if err := g.Move(1, 1); !errors.Is(err, ErrInvalidMove) {
		t.Error("diagonal moves must be rejected")
	}
}

func TestTrapCostsIntegrity(t *testing.T) {
	g := started(t)
	g.grid.Set(Pos{1, 0}, CellTrap)

	if err := g.Move(1, 0); err != nil {
		t.Fatal(err)
	}
	if g.integrity != 75 {
		t.Errorf("integrity = %d, want 75", g.integrity)
	}
	if g.grid.At(Pos{1, 0}) != CellEmpty {
		t.Error("sprung trap should be cleared")
	}
	if !g.Playing() {
		t.Error("one trap must not end the session")
	}
}

func TestIntegrityLossEndsSession(t *testing.T) {
	g := started(t)
	g.integrity = 25
	g.grid.Set(Pos{0, 1}, CellTrap)

	res := g.Step(func() core.InputFrame {
		in := core.NewInputFrame()
		in.Set(core.ActionDown)
		return in
	}(), time.Millisecond)

	if !res.State.GameOver {
		t.Fatal("integrity 0 should end the session")
	}
	if g.Won() {
		t.Error("losing is not winning")
	}
}

func TestLockedDoorSpendsAttempts(t *testing.T) {
	g := started(t)
	g.grid.Set(Pos{1, 0}, CellDoor)

	for i := 3; i > 0; i-- {
		if !g.Playing() {
			t.Fatalf("session ended with %d attempts left", i)
		}
		if err := g.Move(1, 0); !errors.Is(err, ErrDoorLocked) {
			t.Fatalf("expected ErrDoorLocked, got %v", err)
		}
		if g.Player() != (Pos{0, 0}) {
			t.Fatal("a locked door must not be entered")
		}
	}
	if g.attempts != 0 || !g.State().GameOver {
		t.Errorf("attempts=%d gameover=%v", g.attempts, g.State().GameOver)
	}
	if g.grid.At(Pos{1, 0}) != CellDoor {
		t.Error("door should remain in place")
	}
}

func TestKeyOpensDoor(t *testing.T) {
	g := started(t)
	g.grid.Set(Pos{1, 0}, CellKey)
	g.grid.Set(Pos{2, 0}, CellDoor)

	if err := g.Move(1, 0); err != nil {
		t.Fatal(err)
	}
	if g.keys != 1 || g.score != 25 {
		t.Errorf("keys=%d score=%d", g.keys, g.score)
	}
	if err := g.Move(1, 0); err != nil {
		t.Fatal(err)
	}
	if !g.Won() || !g.State().GameOver {
		t.Fatal("opening the door should win")
	}
	if g.State().Score != 525 {
		t.Errorf("score = %d, want 525", g.State().Score)
	}
	if g.attempts != 3 {
		t.Error("a keyed door must not spend attempts")
	}
}

func TestTreasureScores(t *testing.T) {
	g := started(t)
	g.grid.Set(Pos{1, 0}, CellTreasure)
	g.grid.Set(Pos{2, 0}, CellTreasure)

	g.Move(1, 0)
	g.Move(1, 0)
	g.Move(-1, 0)

	if g.score != 100 || g.treasures != 2 {
		t.Errorf("score=%d treasures=%d", g.score, g.treasures)
	}
}

func TestMessageClearsOnSchedule(t *testing.T) {
	g := started(t)
	g.Move(1, 0)
	g.Move(0, -1)
	if g.Message() != "Invalid move!" {
		t.Fatalf("message = %q", g.Message())
	}

	wait(g, 1500*time.Millisecond)
	g.Move(-1, 0)
	g.Move(-1, 0)
	wait(g, 1000*time.Millisecond)
	if g.Message() != "Invalid move!" {
		t.Fatal("a new message should restart the timer")
	}
	wait(g, 1000*time.Millisecond)
	if g.Message() != "" {
		t.Errorf("message should clear after 2s, got %q", g.Message())
	}
}

func TestNPCHint(t *testing.T) {
	g := started(t)
	g.grid.Set(Pos{1, 0}, CellNPC)
	g.grid.Set(Pos{5, 5}, CellKey)

	g.Move(1, 0)
	if !strings.Contains(g.Message(), "a key lies southeast") {
		t.Errorf("hint = %q", g.Message())
	}
}

func TestPointerMovesTowardClick(t *testing.T) {
	g := started(t)
	ox, oy := g.origin()

	in := core.NewInputFrame()
	in.Click(ox+3*cellW+1, oy)
	g.Step(in, time.Millisecond)

	if g.Player() != (Pos{1, 0}) {
		t.Errorf("player at %v, want one step right", g.Player())
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 11})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "DATA VAULT") {
		t.Error("title screen missing")
	}

	g.machine.Start()
	screen.Clear()
	g.Render(screen)
	ox, oy := g.origin()
	if got := screen.Get(ox+1, oy); got != 'P' {
		t.Errorf("start cell shows %c, want P", got)
	}
	if !strings.ContainsRune(screen.String(), 'D') {
		t.Error("grid should show the door")
	}
	if !strings.Contains(screen.Row(0), "ATTEMPTS 3") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}
