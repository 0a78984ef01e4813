// Package maze implements Data Vault, a turn-based grid crawl.
// The player searches a small vault for a key, dodging traps, and escapes
// through the single door.
package maze

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

func init() {
	registry.Register(config.Maze, func() registry.Game { return New() })
}

// Move errors.
var (
	ErrInvalidMove = errors.New("invalid move")
	ErrDoorLocked  = errors.New("door locked")
)

// Game implements the Data Vault game logic.
type Game struct {
	cfg     config.MazeConfig
	log     *log.Logger
	runtime core.RuntimeConfig

	world   *sim.World
	machine *sim.Machine
	driver  *sim.FrameDriver

	grid      *Grid
	player    Pos
	integrity int
	attempts  int
	keys      int
	treasures int
	score     int
	moves     int
	won       bool

	message  string
	msgTimer sim.TimerID

	highScore int
	newHigh   bool
	summary   core.SessionSummary
}

// New creates a new Data Vault instance with the built-in configuration.
func New() *Game {
	return &Game{
		cfg: config.DefaultMazeConfig(),
		log: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.Maze
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Data Vault"
}

// Configure loads the game config and applies the difficulty preset.
func (g *Game) Configure(opts registry.Options) error {
	if opts.Logger != nil {
		g.log = opts.Logger.With("game", config.Maze)
	}
	cfg, err := config.LoadMaze(opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyMazePreset(&cfg, config.ParsePreset(opts.Difficulty))
	g.cfg = cfg
	return nil
}

// Reset builds a fresh vault and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.highScore = runtime.HighScore

	g.world = sim.NewWorld(float64(g.cfg.Width), float64(g.cfg.Height), runtime.Seed)
	g.machine = sim.NewMachine()
	g.machine.OnStart(g.startSession)
	g.machine.OnGameOver(g.endSession)
	g.machine.OnQuit(g.clearSession)
	g.driver = sim.NewFrameDriver(g)
	g.driver.MaxDelta = 250 * time.Millisecond

	g.clearSession()
}

func (g *Game) startSession() {
	g.clearSession()
	g.driver.Reset()
	g.grid = Generate(g.world.Rand, g.cfg.Width, g.cfg.Height, g.cfg.Odds)
	g.newHigh = false
	g.summary = core.SessionSummary{}
	g.say("Find the key and escape through the door.")
	g.log.Info("session started", "seed", g.runtime.Seed, "traps", g.grid.Count(CellTrap), "keys", g.grid.Count(CellKey))
}

func (g *Game) endSession() {
	g.world.Sched.CancelAll()
	g.msgTimer = 0
	if g.score > g.highScore {
		g.highScore = g.score
		g.newHigh = true
	}
	g.summary = core.SessionSummary{
		Kills:    g.treasures,
		Duration: g.world.Now(),
	}
	g.log.Info("game over", "won", g.won, "score", g.score, "moves", g.moves, "integrity", g.integrity)
}

func (g *Game) clearSession() {
	g.world.Reset()
	g.grid = NewGrid(g.cfg.Width, g.cfg.Height)
	g.player = Pos{}
	g.integrity = g.cfg.Integrity
	g.attempts = g.cfg.Attempts
	g.keys = 0
	g.treasures = 0
	g.score = 0
	g.moves = 0
	g.won = false
	g.message = ""
	g.msgTimer = 0
}

// Step applies session controls and one move per frame, then advances the clock.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if !g.machine.Control(in) && g.machine.Playing() {
		g.handleInput(in)
	}
	g.driver.Advance(dt)
	return core.StepResult{State: g.State(), HUD: g.hud()}
}

func (g *Game) handleInput(in core.InputFrame) {
	var dx, dy int
	switch {
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	}
	if in.Pointer.Valid && dx == 0 && dy == 0 {
		if p, ok := g.cellAt(in.Pointer.X, in.Pointer.Y); ok {
			dx, dy = sign(p.X-g.player.X), sign(p.Y-g.player.Y)
			if dx != 0 {
				dy = 0
			}
		}
	}
	if dx != 0 || dy != 0 {
		_ = g.Move(dx, dy)
	}
}

// Move steps the player one cell and resolves what is there.
// Off-grid moves and locked doors leave the player in place.
func (g *Game) Move(dx, dy int) error {
	if !g.machine.Playing() {
		return nil
	}
	to := Pos{g.player.X + dx, g.player.Y + dy}
	if !g.grid.In(to) || core.Abs(dx)+core.Abs(dy) != 1 {
		g.say("Invalid move!")
		return ErrInvalidMove
	}

	cell := g.grid.At(to)
	if cell == CellDoor {
		return g.tryDoor()
	}

	g.player = to
	g.moves++
	g.grid.Set(to, CellEmpty)

	switch cell {
	case CellTreasure:
		g.treasures++
		g.score += g.cfg.Scores.Treasure
		g.say("You found a treasure! +%d", g.cfg.Scores.Treasure)
	case CellTrap:
		g.integrity = max(0, g.integrity-g.cfg.TrapDamage)
		g.say("You fell into a trap! Integrity -%d", g.cfg.TrapDamage)
		if g.integrity == 0 {
			g.say("System integrity lost.")
			g.machine.GameOver()
		}
	case CellKey:
		g.keys++
		g.score += g.cfg.Scores.Key
		g.say("You found a key!")
	case CellNPC:
		g.say("You met an NPC! They whisper: %s", g.hint())
	}
	return nil
}

// tryDoor opens the door with a key or spends one attempt.
func (g *Game) tryDoor() error {
	if g.keys > 0 {
		g.won = true
		g.score += g.cfg.Scores.Escape
		g.say("You unlocked the door and won the game!")
		g.machine.GameOver()
		return nil
	}
	g.attempts = max(0, g.attempts-1)
	g.say("You need a key to open this door. %d attempts left.", g.attempts)
	if g.attempts == 0 {
		g.machine.GameOver()
	}
	return ErrDoorLocked
}

// hint points toward a key, or toward the door once a key is held.
func (g *Game) hint() string {
	target, what := CellKey, "a key"
	if g.keys > 0 {
		target, what = CellDoor, "the door"
	}
	p, ok := g.grid.Find(target)
	if !ok {
		return "nothing left to find."
	}
	dir := ""
	switch {
	case p.Y < g.player.Y:
		dir = "north"
	case p.Y > g.player.Y:
		dir = "south"
	}
	switch {
	case p.X < g.player.X:
		dir += "west"
	case p.X > g.player.X:
		dir += "east"
	}
	if dir == "" {
		dir = "here"
	}
	return fmt.Sprintf("%s lies %s.", what, dir)
}

// say shows a message and clears it after the configured delay.
func (g *Game) say(format string, args ...any) {
	g.message = fmt.Sprintf(format, args...)
	g.log.Debug(g.message)
	if g.msgTimer != 0 {
		g.world.Sched.Cancel(g.msgTimer)
	}
	g.msgTimer = g.world.Sched.After(time.Duration(g.cfg.MessageMS)*time.Millisecond, func() {
		g.message = ""
		g.msgTimer = 0
	})
}

// Message returns the text currently shown under the grid.
func (g *Game) Message() string {
	return g.message
}

// Player returns the player's cell.
func (g *Game) Player() Pos {
	return g.player
}

// Won reports whether the last session ended through the door.
func (g *Game) Won() bool {
	return g.won
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

// Update advances the clock so pending messages expire.
func (g *Game) Update(dt time.Duration) {
	g.world.Sched.Advance(dt)
}

// Ambient does nothing; the vault is still between moves.
func (g *Game) Ambient(time.Duration) {}

func (g *Game) hud() core.HUD {
	h := core.HUD{
		Score:     g.score,
		HighScore: max(g.highScore, g.score),
		Lives:     g.attempts,
	}
	if g.cfg.Integrity > 0 {
		h.Health = float64(g.integrity) / float64(g.cfg.Integrity)
	}
	if g.message != "" {
		h.Log = []string{g.message}
	}
	return h
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

