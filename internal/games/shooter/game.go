// Package shooter implements Neon Fury, a vertical space shooter.
// The player flies at the bottom of the field, clears escalating waves of
// enemies and collects power-ups dropped by destroyed ships.
package shooter

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

func init() {
	registry.Register(config.Shooter, func() registry.Game { return New() })
}

// hudRows is the number of screen rows above the play area.
const hudRows = 1

// Game implements the Neon Fury game logic.
type Game struct {
	cfg        config.ShooterConfig
	log        *log.Logger
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	world    *sim.World
	machine  *sim.Machine
	driver   *sim.FrameDriver
	emitter  *sim.Emitter
	resolver *sim.Resolver
	combo    *sim.Combo
	waves    *sim.WaveScheduler

	stars *starfield
	vp    sim.Viewport
	draw  sim.DrawList
	fx    *rand.Rand // background and shake noise

	in        core.InputFrame
	ticks     int
	highScore int
	newHigh   bool
	dying     bool
	summary   core.SessionSummary
}

// New creates a new Neon Fury instance with the built-in configuration.
func New() *Game {
	return &Game{
		cfg: config.DefaultShooterConfig(),
		log: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.Shooter
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Fury"
}

// Configure loads the game config and applies the difficulty preset.
func (g *Game) Configure(opts registry.Options) error {
	if opts.Logger != nil {
		g.log = opts.Logger.With("game", config.Shooter)
	}
	cfg, err := config.LoadShooter(opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyShooterPreset(&cfg, config.ParsePreset(opts.Difficulty))
	g.cfg = cfg
	return nil
}

// Reset builds a fresh world and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.highScore = runtime.HighScore
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.world = sim.NewWorld(g.cfg.World.Width, g.cfg.World.Height, runtime.Seed)
	g.world.Stats = sim.NewPlayerStats(g.cfg.Player.MaxSpecial)
	g.fx = rand.New(rand.NewSource(runtime.Seed + 1))
	g.emitter = sim.NewEmitter(g.world)
	g.combo = sim.NewCombo(ms(g.cfg.Combo.TimeoutMS))
	g.resolver = &sim.Resolver{
		World:         g.world,
		Emitter:       g.emitter,
		Combo:         g.combo,
		DropChance:    g.cfg.PowerUps.Chance,
		Invincibility: ms(g.cfg.Player.InvincibleMS),
		HitShake:      g.cfg.Player.HitShake,
		OnKill:        g.onKill,
		OnDrop:        g.dropPowerUp,
		OnPlayerDeath: g.onPlayerDeath,
	}
	g.waves = sim.NewWaveScheduler(g.waveConfig(), g.world.Sched, g.world.Rand)
	g.waves.OnAdvance = g.onWaveAdvance

	g.machine = sim.NewMachine()
	g.machine.OnStart(g.startSession)
	g.machine.OnGameOver(g.endSession)
	g.machine.OnQuit(g.clearSession)
	g.driver = sim.NewFrameDriver(g)
	g.driver.MaxDelta = 250 * time.Millisecond

	g.stars = newStarfield(g.fx, g.cfg.World.Width, g.cfg.World.Height, g.cfg.Starfield)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.in = core.NewInputFrame()
}

// Resize fits the play area to the terminal below the HUD row.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.vp = sim.Viewport{
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		X:      0,
		Y:      hudRows,
		W:      w,
		H:      max(1, h-hudRows),
	}
}

func (g *Game) waveConfig() sim.WaveConfig {
	w := g.cfg.Waves
	tiers := make([]sim.WeightTier, 0, len(w.Tiers))
	for _, t := range w.Tiers {
		tier := sim.WeightTier{MinWave: t.MinWave}
		for _, e := range t.Types {
			tier.Types = append(tier.Types, sim.WeightedType{Type: e.Type, Chance: e.Chance})
		}
		tiers = append(tiers, tier)
	}
	return sim.WaveConfig{
		BaseCount:       w.BaseCount,
		Increment:       w.Increment,
		BaseInterval:    ms(w.SpawnRateMS),
		IntervalStep:    ms(w.SpawnStepMS),
		MinInterval:     ms(w.MinSpawnMS),
		TransitionDelay: ms(w.DelayMS),
		DefaultType:     w.DefaultType,
		Tiers:           tiers,
	}
}

// startSession resets every counter and places the player.
func (g *Game) startSession() {
	g.world.Reset()
	g.resolver.Reset()
	g.waves.Reset()
	g.driver.Reset()
	g.ticks = 0
	g.dying = false
	g.newHigh = false
	g.summary = core.SessionSummary{}
	g.spawnPlayer()
	g.log.Info("session started", "seed", g.runtime.Seed)
}

func (g *Game) endSession() {
	g.world.Sched.CancelAll()
	score := g.resolver.Score
	if score > g.highScore {
		g.highScore = score
		g.newHigh = true
	}
	g.summary = core.SessionSummary{
		Wave:      g.waves.Wave(),
		BestCombo: g.combo.Best,
		Kills:     g.resolver.Kills,
		Duration:  g.world.Now(),
	}
	g.log.Info("game over", "score", score, "wave", g.summary.Wave, "kills", g.summary.Kills, "best_combo", g.summary.BestCombo)
}

func (g *Game) clearSession() {
	g.world.Reset()
	g.resolver.Reset()
	g.waves.Reset()
}

// Step applies session controls and advances the simulation by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.in = in
	if in.Has(core.ActionRestart) && g.machine.State() == sim.StatePlaying {
		g.machine.QuitToMenu()
		g.machine.Start()
	} else {
		g.machine.Control(in)
	}
	g.driver.Advance(dt)
	return core.StepResult{State: g.State(), HUD: g.hud()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.machine.GameState(g.resolver.Score)
}

// Summary reports the figures of the last finished session.
func (g *Game) Summary() core.SessionSummary {
	return g.summary
}

// Playing reports whether gameplay should advance.
func (g *Game) Playing() bool {
	return g.machine.Playing()
}

// Update advances one frame of gameplay.
func (g *Game) Update(dt time.Duration) {
	w := g.world
	frames := sim.Frames(dt)
	g.ticks++

	w.Sched.Advance(dt)
	now := w.Now()
	w.Stats.Buffs.Expire(now)

	g.updatePlayer(frames, now)
	g.spawnEnemies(now)
	g.updateEnemies(dt)
	w.Move(frames)
	g.collide()

	g.emitter.Update(frames)
	g.stars.update(frames)
	w.DecayEffects(frames)

	g.cull()
	w.Compact()

	if g.dying {
		g.machine.GameOver()
	}
}

// Ambient keeps the starfield moving and lets explosions fade while gameplay is gated.
func (g *Game) Ambient(dt time.Duration) {
	frames := sim.Frames(dt)
	g.stars.update(frames)
	if g.machine.State() == sim.StateGameOver {
		g.emitter.Update(frames)
		g.world.DecayEffects(frames)
		g.world.Particles.Compact()
	}
}

func (g *Game) cull() {
	w := g.world
	w.CullOutside(&w.Projectiles, 50)
	for _, e := range w.Enemies.All() {
		if e.Active && e.Pos.Y > w.Height+100 {
			e.Active = false
		}
	}
	for _, p := range w.PowerUps.All() {
		if p.Active && p.Pos.Y > w.Height+50 {
			p.Active = false
		}
	}
}

func (g *Game) onKill(e *sim.Entity, points int) {
	g.world.Stats.AddSpecial(g.cfg.Player.SpecialPerKill)
	g.log.Debug("enemy destroyed", "type", e.TypeKey, "points", points, "combo", g.combo.Count)
}

func (g *Game) onPlayerDeath() {
	g.dying = true
	if p := g.world.Player; p != nil {
		g.emitter.Explosion(p.Pos, core.ColorBrightCyan, 60)
	}
}

func (g *Game) onWaveAdvance(wave int) {
	if p := g.world.Player; p != nil {
		p.Heal(g.cfg.Waves.HealBonus)
	}
	g.log.Info("wave started", "wave", wave, "enemies", g.waves.Required(wave))
}

// hud reports the plain values an external UI would render.
func (g *Game) hud() core.HUD {
	h := core.HUD{
		Score:     g.resolver.Score,
		HighScore: max(g.highScore, g.resolver.Score),
		Wave:      g.waves.Wave(),
		Combo:     g.combo.Count,
		Buffs:     g.world.Stats.Buffs.List(g.world.Now()),
	}
	if p := g.world.Player; p != nil {
		h.Health = p.HealthRatio()
	}
	return h
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
