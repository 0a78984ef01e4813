// Package runner implements Neon Runner, an endless side-scroller.
// The player must jump over obstacles while running automatically.
package runner

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
	registry.Register(config.Runner, func() registry.Game { return New() })
}

const hudRows = 1

// Game implements the Neon Runner game logic.
type Game struct {
	cfg        config.RunnerConfig
	log        *log.Logger
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	world   *sim.World
	machine *sim.Machine
	driver  *sim.FrameDriver
	emitter *sim.Emitter

	dust *dust
	fx   *rand.Rand
	vp   sim.Viewport
	draw sim.DrawList

	grounded bool
	speed    float64 // base scroll speed before difficulty scaling
	score    int
	passed   int
	last     sim.ID // most recently spawned obstacle
	ticks    int
	legFrame int
	dying    bool

	highScore int
	newHigh   bool
	summary   core.SessionSummary
}

// New creates a new Neon Runner instance with the built-in configuration.
func New() *Game {
	return &Game{
		cfg: config.DefaultRunnerConfig(),
		log: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.Runner
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Runner"
}

// Configure loads the game config and applies the difficulty preset.
func (g *Game) Configure(opts registry.Options) error {
	if opts.Logger != nil {
		g.log = opts.Logger.With("game", config.Runner)
	}
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyRunnerPreset(&cfg, config.ParsePreset(opts.Difficulty))
	g.cfg = cfg
	return nil
}

// Reset builds a fresh world and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.highScore = runtime.HighScore
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.world = sim.NewWorld(g.cfg.World.Width, g.cfg.World.Height, runtime.Seed)
	g.emitter = sim.NewEmitter(g.world)
	g.fx = rand.New(rand.NewSource(runtime.Seed + 1))
	g.dust = newDust(g.fx, g.cfg.World.Width, g.cfg.World.Height, g.cfg.Particles)

	g.machine = sim.NewMachine()
	g.machine.OnStart(g.startSession)
	g.machine.OnGameOver(g.endSession)
	g.machine.OnQuit(g.clearSession)
	g.driver = sim.NewFrameDriver(g)
	g.driver.MaxDelta = 250 * time.Millisecond

	g.speed = g.cfg.Physics.BaseSpeed
	g.Resize(runtime.ScreenW, runtime.ScreenH)
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

// floor is the world y of the running surface.
func (g *Game) floor() float64 {
	return g.cfg.World.Height - g.cfg.Physics.FloorHeight
}

func (g *Game) startSession() {
	g.world.Reset()
	g.driver.Reset()
	g.speed = g.cfg.Physics.BaseSpeed
	g.score = 0
	g.passed = 0
	g.last = 0
	g.ticks = 0
	g.dying = false
	g.newHigh = false
	g.summary = core.SessionSummary{}

	p := g.cfg.Player
	g.world.Spawn(&sim.Entity{
		Kind:      sim.KindPlayer,
		Owner:     sim.SidePlayer,
		Pos:       core.V(p.X+p.Width/2, g.floor()-p.Height/2),
		W:         p.Width,
		H:         p.Height,
		Health:    1,
		MaxHealth: 1,
		Color:     core.ColorBrightCyan,
		Glyph:     '█',
	})
	g.grounded = true
	g.log.Info("session started", "seed", g.runtime.Seed)
}

func (g *Game) endSession() {
	g.world.Sched.CancelAll()
	if g.score > g.highScore {
		g.highScore = g.score
		g.newHigh = true
	}
	g.summary = core.SessionSummary{
		Kills:    g.passed,
		Duration: g.world.Now(),
	}
	g.log.Info("game over", "score", g.score, "passed", g.passed, "speed", g.Speed())
}

func (g *Game) clearSession() {
	g.world.Reset()
	g.speed = g.cfg.Physics.BaseSpeed
	g.score = 0
}

// Step applies session controls and the jump command, then advances the simulation.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if !g.machine.Control(in) && g.machine.Playing() {
		if in.Has(core.ActionJump) || in.Has(core.ActionUp) || in.Has(core.ActionFire) || in.Pointer.Valid {
			g.Jump()
		}
	}
	g.driver.Advance(dt)
	return core.StepResult{State: g.State(), HUD: g.hud()}
}

// Jump launches the runner. It does nothing in mid-air.
func (g *Game) Jump() bool {
	p := g.world.Player
	if p == nil || !g.grounded {
		return false
	}
	p.Vel.Y = -g.cfg.Physics.JumpImpulse
	g.grounded = false
	return true
}

// Grounded reports whether the runner stands on the floor.
func (g *Game) Grounded() bool {
	return g.grounded
}

// Speed is the current scroll speed in units per reference frame.
func (g *Game) Speed() float64 {
	return g.difficulty.Speed(g.speed, g.score, g.ticks)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.machine.GameState(g.score)
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
	g.legFrame = (g.legFrame + 1) % 10

	w.Sched.Advance(dt)
	g.dust.update(frames, g.Speed())
	g.updatePlayer(frames)
	g.spawnObstacles(frames)
	g.updateObstacles(frames)
	g.emitter.Update(frames)
	w.DecayEffects(frames)
	w.Compact()

	if g.dying {
		g.machine.GameOver()
	}
}

// Ambient drifts the background on the title screen and lets the crash fade.
func (g *Game) Ambient(dt time.Duration) {
	frames := sim.Frames(dt)
	switch g.machine.State() {
	case sim.StateMenu:
		g.dust.update(frames, g.cfg.Physics.BaseSpeed)
	case sim.StateGameOver:
		g.emitter.Update(frames)
		g.world.DecayEffects(frames)
		g.world.Particles.Compact()
	}
}

// updatePlayer applies gravity until the runner is back on the floor.
func (g *Game) updatePlayer(frames float64) {
	p := g.world.Player
	if p == nil {
		return
	}
	p.Pos.Y += p.Vel.Y * frames
	rest := g.floor() - p.H/2
	if p.Pos.Y < rest {
		p.Vel.Y += g.cfg.Physics.Gravity * frames
		g.grounded = false
		return
	}
	p.Pos.Y = rest
	p.Vel.Y = 0
	g.grounded = true
}

func (g *Game) hud() core.HUD {
	return core.HUD{
		Score:     g.score,
		HighScore: max(g.highScore, g.score),
	}
}
