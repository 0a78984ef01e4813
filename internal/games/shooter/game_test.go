package shooter

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	return g
}

// started returns a game in the playing state without running a frame.
func started(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	if !g.machine.Start() {
		t.Fatal("session did not start")
	}
	return g
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a, true)
	}
	return in
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func playerBullets(g *Game) []*sim.Entity {
	var out []*sim.Entity
	for _, b := range g.world.Projectiles.All() {
		if b.Active && b.Owner == sim.SidePlayer {
			out = append(out, b)
		}
	}
	return out
}

func TestStartsInMenu(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.NewInputFrame(), frame)
	if !res.State.InMenu {
		t.Fatal("expected the title screen after Reset")
	}
	if g.world.Player != nil {
		t.Error("player should not exist before the session starts")
	}

	res = g.Step(pressed(core.ActionConfirm), frame)
	if res.State.InMenu || res.State.GameOver {
		t.Fatalf("Enter should start the session, got %+v", res.State)
	}
	if g.world.Player == nil || !g.world.Player.Active {
		t.Fatal("player should be spawned on start")
	}
}

func TestFireSpawnsBulletAtPlayer(t *testing.T) {
	g := started(t)
	p := g.world.Player

	g.Step(held(core.ActionFire), frame)

	bullets := playerBullets(g)
	if len(bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(bullets))
	}
	b := bullets[0]
	if b.Pos.X != p.Pos.X {
		t.Errorf("bullet x = %v, want player x %v", b.Pos.X, p.Pos.X)
	}
	if b.Vel.Y >= 0 {
		t.Errorf("bullet should move up, vel = %v", b.Vel)
	}
	firstY := b.Pos.Y

	// Cooldown is 150ms, so holding fire for another frame adds nothing
	g.Step(held(core.ActionFire), frame)
	if n := len(playerBullets(g)); n != 1 {
		t.Errorf("expected cooldown to hold at 1 bullet, got %d", n)
	}
	if !b.Active || b.Pos.Y >= firstY {
		t.Errorf("bullet should still be active and higher: active=%v y=%v first=%v", b.Active, b.Pos.Y, firstY)
	}
}

func TestMultishotFiresThree(t *testing.T) {
	g := started(t)
	g.grant(buffMultishot)

	g.Step(held(core.ActionFire), frame)

	bullets := playerBullets(g)
	if len(bullets) != 3 {
		t.Fatalf("expected 3 bullets under multishot, got %d", len(bullets))
	}
	left, right := 0, 0
	for _, b := range bullets {
		switch {
		case b.Vel.X < 0:
			left++
		case b.Vel.X > 0:
			right++
		}
	}
	if left != 1 || right != 1 {
		t.Errorf("expected one bullet angled each way, got left=%d right=%d", left, right)
	}
}

func TestRapidFireShortensCooldown(t *testing.T) {
	g := started(t)
	now := g.world.Now()

	if got := g.fireCooldown(now); got != 150*time.Millisecond {
		t.Errorf("base cooldown = %v, want 150ms", got)
	}
	g.grant(buffRapidFire)
	if got := g.fireCooldown(now); got != 50*time.Millisecond {
		t.Errorf("rapid fire cooldown = %v, want 50ms", got)
	}
}

func TestPowerUpPickup(t *testing.T) {
	g := started(t)
	p := g.world.Player
	g.world.Spawn(&sim.Entity{Kind: sim.KindPowerUp, Pos: p.Pos, W: 30, H: 30, TypeKey: buffShield})

	g.Step(core.NewInputFrame(), frame)

	if !g.world.Stats.Buffs.Has(buffShield, g.world.Now()) {
		t.Fatal("shield should be active after pickup")
	}
	if g.world.PowerUps.Len() != 0 {
		t.Error("collected power-up should be removed")
	}
	if !g.resolver.Protected() {
		t.Error("shield should protect the player")
	}
}

func TestNukeFillsSpecial(t *testing.T) {
	g := started(t)
	g.grant(powerUpNuke)
	if !g.world.Stats.SpecialReady() {
		t.Error("nuke should fill the special meter")
	}
}

func TestSpecialAttackHitsEveryEnemy(t *testing.T) {
	g := started(t)
	bomber := g.spawnEnemy("bomber", 1)
	bomber.Pos = core.V(200, 100)
	bomber.Health = 40
	g.world.Stats.Special = g.world.Stats.MaxSpecial

	g.Step(held(core.ActionSpecial), frame)

	if bomber.Active {
		t.Fatal("special attack should destroy a 40hp enemy")
	}
	if g.resolver.Score != 500 {
		t.Errorf("score = %d, want 500", g.resolver.Score)
	}
	if g.world.Stats.Special != g.cfg.Player.SpecialPerKill {
		t.Errorf("special = %v, want recharge of %v from the kill", g.world.Stats.Special, g.cfg.Player.SpecialPerKill)
	}
	if g.world.Flash <= 0 {
		t.Error("special attack should flash the screen")
	}
}

func TestPlayerDeathEndsSession(t *testing.T) {
	g := started(t)
	p := g.world.Player
	p.Health = 10
	g.world.Spawn(&sim.Entity{Kind: sim.KindProjectile, Owner: sim.SideEnemy, Pos: p.Pos, W: 10, H: 15, Damage: 20})

	res := g.Step(core.NewInputFrame(), frame)

	if !res.State.GameOver {
		t.Fatal("expected game over when health reaches zero")
	}
	if p.Health != 0 {
		t.Errorf("health should clamp at 0, got %v", p.Health)
	}
	if s := g.Summary(); s.Wave != 1 || s.BestCombo != 1 {
		t.Errorf("unexpected summary %+v", s)
	}

	// Game over freezes gameplay
	now := g.world.Now()
	g.Step(core.NewInputFrame(), frame)
	if g.world.Now() != now {
		t.Error("sim clock should not advance after game over")
	}

	res = g.Step(pressed(core.ActionRestart), frame)
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should begin a fresh session, got %+v", res.State)
	}
	if g.world.Player.Health != g.cfg.Player.MaxHealth {
		t.Errorf("restart should restore health, got %v", g.world.Player.Health)
	}
}

func TestShieldBlocksDamage(t *testing.T) {
	g := started(t)
	p := g.world.Player
	g.grant(buffShield)
	g.world.Spawn(&sim.Entity{Kind: sim.KindProjectile, Owner: sim.SideEnemy, Pos: p.Pos, W: 10, H: 15, Damage: 20})

	g.Step(core.NewInputFrame(), frame)

	if p.Health != g.cfg.Player.MaxHealth {
		t.Errorf("shielded player took damage: %v", p.Health)
	}
	if g.world.Projectiles.Len() != 0 {
		t.Error("enemy bullet should be spent on the shield")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := started(t)
	g.Step(core.NewInputFrame(), frame)

	res := g.Step(pressed(core.ActionPause), frame)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	now := g.world.Now()
	g.Step(core.NewInputFrame(), 100*time.Millisecond)
	if g.world.Now() != now {
		t.Error("paused session should not advance")
	}

	res = g.Step(pressed(core.ActionPause), frame)
	if res.State.Paused {
		t.Error("P should resume")
	}
}

func TestWaveAdvanceHeals(t *testing.T) {
	g := started(t)
	g.world.Player.Health = 50
	g.onWaveAdvance(2)
	if got := g.world.Player.Health; got != 70 {
		t.Errorf("health after wave bonus = %v, want 70", got)
	}

	g.world.Player.Health = 95
	g.onWaveAdvance(3)
	if got := g.world.Player.Health; got != g.cfg.Player.MaxHealth {
		t.Errorf("wave bonus should cap at max health, got %v", got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, int) {
		g := started(t)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Hold(core.ActionFire, true)
			}
			if i%50 < 25 {
				in.Hold(core.ActionLeft, true)
			} else {
				in.Hold(core.ActionRight, true)
			}
			g.Step(in, frame)
		}
		return g.resolver.Score, g.world.Enemies.Len()
	}

	s1, e1 := run()
	s2, e2 := run()
	if s1 != s2 || e1 != e2 {
		t.Errorf("same seed diverged: score %d/%d enemies %d/%d", s1, s2, e1, e2)
	}
}

func TestRenderStates(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "NEON FURY") {
		t.Error("menu should show the title")
	}

	g.machine.Start()
	g.Step(held(core.ActionFire), frame)
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "SCORE") {
		t.Errorf("HUD missing from row 0: %q", screen.Row(0))
	}
}
