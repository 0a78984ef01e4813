// Package towerdefense implements Neon Defense.
// Creeps walk a fixed waypoint path; the player spends credits on towers
// that pick the nearest creep in range and fire homing shots at it.
package towerdefense

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/scripting"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

func init() {
	registry.Register(config.TowerDefense, func() registry.Game { return New() })
}

// Screen rows reserved around the play area.
const (
	hudRows   = 1
	panelRows = 4
	maxLog    = 6
)

// Game implements the Neon Defense game logic.
type Game struct {
	cfg     config.TowerDefenseConfig
	log     *log.Logger
	runtime core.RuntimeConfig
	planner scripting.Planner
	engine  *scripting.Engine // non-nil when the planner is a Lua VM

	difficulty *config.DifficultyManager
	world      *sim.World
	machine    *sim.Machine
	driver     *sim.FrameDriver
	emitter    *sim.Emitter
	resolver   *sim.Resolver
	path       Path

	money    int
	lives    int
	wave     int // next wave to launch
	spawning sim.TimerID
	ticks    int
	dying    bool

	placing  int    // tower type index for placement, -1 for none
	selected sim.ID // placed tower under inspection
	cursorX  int    // cursor cell relative to the play area
	cursorY  int
	messages []string

	vp        sim.Viewport
	draw      sim.DrawList
	highScore int
	newHigh   bool
	summary   core.SessionSummary
}

// New creates a new Neon Defense instance with the built-in configuration.
func New() *Game {
	return &Game{
		cfg:     config.DefaultTowerDefenseConfig(),
		log:     log.New(io.Discard),
		placing: -1,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.TowerDefense
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Defense"
}

// Configure loads the game config, applies the difficulty preset and loads the wave script.
func (g *Game) Configure(opts registry.Options) error {
	if opts.Logger != nil {
		g.log = opts.Logger.With("game", config.TowerDefense)
	}
	cfg, err := config.LoadTowerDefense(opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyTowerDefensePreset(&cfg, config.ParsePreset(opts.Difficulty))
	g.cfg = cfg

	g.closeEngine()
	engine, err := scripting.Load(cfg.Waves.Script, g.formula(), g.log)
	if err != nil {
		return err
	}
	g.engine = engine
	g.planner = engine
	return nil
}

// Close releases the wave script VM.
func (g *Game) Close() error {
	g.closeEngine()
	return nil
}

func (g *Game) closeEngine() {
	if g.engine != nil {
		g.engine.Close()
		g.engine = nil
	}
}

// formula is the built-in wave plan, also handed to scripts as fallback.
func (g *Game) formula() scripting.Formula {
	w, e := g.cfg.Waves, g.cfg.Enemy
	return scripting.Formula{
		BaseCount:      w.BaseCount,
		PerWave:        w.PerWave,
		BaseIntervalMS: w.BaseIntervalMS,
		StepMS:         w.StepMS,
		MaxReductionMS: w.MaxReductionMS,
		BaseHealth:     e.BaseHealth,
		HealthPerWave:  e.HealthPerWave,
		BaseSpeed:      e.BaseSpeed,
		SpeedPerWave:   e.SpeedPerWave,
	}
}

// Reset builds a fresh world and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.highScore = runtime.HighScore
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.planner == nil {
		if engine, err := scripting.New("", g.formula(), g.log); err == nil {
			g.engine, g.planner = engine, engine
		} else {
			g.log.Warn("wave script unavailable, using formula", "error", err)
			g.planner = g.formula()
		}
	}

	g.path = newPath(g.cfg.Path)
	g.world = sim.NewWorld(g.cfg.World.Width, g.cfg.World.Height, runtime.Seed)
	g.emitter = sim.NewEmitter(g.world)
	g.resolver = &sim.Resolver{
		World:         g.world,
		Emitter:       g.emitter,
		ExplosionSize: 12,
		OnKill:        g.onKill,
	}

	g.machine = sim.NewMachine()
	g.machine.OnStart(g.startSession)
	g.machine.OnGameOver(g.endSession)
	g.machine.OnQuit(g.clearSession)
	g.driver = sim.NewFrameDriver(g)
	g.driver.FixedStep = time.Second / sim.FrameRate
	g.driver.MaxDelta = 250 * time.Millisecond

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.cursorX, g.cursorY = g.vp.W/2, g.vp.H/2
}

// Resize fits the play area between the HUD row and the bottom panel.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.vp = sim.Viewport{
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		X:      0,
		Y:      hudRows,
		W:      w,
		H:      max(1, h-hudRows-panelRows),
	}
	g.cursorX = core.Clamp(g.cursorX, 0, g.vp.W-1)
	g.cursorY = core.Clamp(g.cursorY, 0, g.vp.H-1)
}

func (g *Game) startSession() {
	g.world.Reset()
	g.resolver.Reset()
	g.driver.Reset()
	g.money = g.cfg.StartMoney
	g.lives = g.cfg.Lives
	g.wave = 1
	g.spawning = 0
	g.ticks = 0
	g.dying = false
	g.placing = -1
	g.selected = 0
	g.messages = nil
	g.newHigh = false
	g.summary = core.SessionSummary{}
	g.logf("System initialized.")
	g.log.Info("session started", "money", g.money, "lives", g.lives)
}

func (g *Game) endSession() {
	g.world.Sched.CancelAll()
	g.spawning = 0
	score := g.resolver.Score
	if score > g.highScore {
		g.highScore = score
		g.newHigh = true
	}
	g.summary = core.SessionSummary{
		Wave:     g.wave - 1,
		Kills:    g.resolver.Kills,
		Duration: g.world.Now(),
	}
	g.log.Info("game over", "score", score, "waves", g.summary.Wave, "kills", g.summary.Kills)
}

func (g *Game) clearSession() {
	g.world.Reset()
	g.resolver.Reset()
	g.spawning = 0
}

// Step applies session controls and player commands, then advances the simulation.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if !g.machine.Control(in) && g.machine.Playing() {
		g.handleInput(in)
	}
	g.driver.Advance(dt)
	return core.StepResult{State: g.State(), HUD: g.hud()}
}

// handleInput maps actions to build commands. Commands are applied between frames.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.cursorX--
	case in.Has(core.ActionRight):
		g.cursorX++
	}
	switch {
	case in.Has(core.ActionUp):
		g.cursorY--
	case in.Has(core.ActionDown):
		g.cursorY++
	}
	g.cursorX = core.Clamp(g.cursorX, 0, g.vp.W-1)
	g.cursorY = core.Clamp(g.cursorY, 0, g.vp.H-1)

	for _, a := range []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3, core.ActionSelect4, core.ActionSelect5} {
		if in.Has(a) {
			g.choose(a.SelectIndex())
		}
	}

	if in.Pointer.Valid && g.vp.Contains(in.Pointer.X, in.Pointer.Y) {
		g.cursorX, g.cursorY = in.Pointer.X-g.vp.X, in.Pointer.Y-g.vp.Y
		g.Click(g.vp.ToWorld(in.Pointer.X, in.Pointer.Y))
	} else if in.Has(core.ActionJump) || in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
		g.Click(g.cursorWorld())
	}

	if in.Has(core.ActionBuy) {
		if err := g.StartWave(); err != nil {
			g.reject(err)
		}
	}
	if in.Has(core.ActionUpgrade) {
		if err := g.Upgrade(); err != nil {
			g.reject(err)
		}
	}
	if in.Has(core.ActionSell) {
		if _, err := g.Sell(); err != nil {
			g.reject(err)
		}
	}
}

func (g *Game) cursorWorld() core.Vec {
	return g.vp.ToWorld(g.vp.X+g.cursorX, g.vp.Y+g.cursorY)
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

// Update advances one fixed frame of gameplay.
func (g *Game) Update(dt time.Duration) {
	w := g.world
	frames := sim.Frames(dt)
	g.ticks++

	w.Sched.Advance(dt)
	g.updateTowers(frames)
	g.updateEnemies(frames)
	g.updateProjectiles(frames)
	g.emitter.Update(frames)
	w.Compact()

	if g.dying {
		g.machine.GameOver()
	}
}

// Ambient lets the last explosions fade on the game-over screen.
func (g *Game) Ambient(dt time.Duration) {
	if g.machine.State() != sim.StateGameOver {
		return
	}
	g.emitter.Update(sim.Frames(dt))
	g.world.Particles.Compact()
}

// Money returns the player's credits.
func (g *Game) Money() int {
	return g.money
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// logf appends a line to the in-game log, keeping the newest entries.
func (g *Game) logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxLog {
		g.messages = g.messages[len(g.messages)-maxLog:]
	}
	g.log.Debug(msg)
}

func (g *Game) hud() core.HUD {
	return core.HUD{
		Score:     g.resolver.Score,
		HighScore: max(g.highScore, g.resolver.Score),
		Wave:      g.wave,
		Money:     g.money,
		Lives:     g.lives,
		Log:       append([]string(nil), g.messages...),
	}
}
