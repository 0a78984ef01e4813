// Package hacker implements Hacker Tycoon, an idle clicker.
// Each hack earns credits; software raises click power and hardware adds
// passive income paid out on a fixed interval.
package hacker

import (
	"fmt"
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
	registry.Register(config.Hacker, func() registry.Game { return New() })
}

// Game implements the Hacker Tycoon game logic.
type Game struct {
	cfg     config.HackerConfig
	log     *log.Logger
	runtime core.RuntimeConfig

	world   *sim.World
	machine *sim.Machine
	driver  *sim.FrameDriver
	rain    *rain

	money      int
	earned     int // lifetime earnings, reported as the score
	clickPower int
	autoRate   int
	hacks      int
	owned      map[Tab][]int
	tab        Tab
	cursor     int
	messages   []string
	income     sim.TimerID

	highScore int
	newHigh   bool
	summary   core.SessionSummary
}

// New creates a new Hacker Tycoon instance with the built-in configuration.
func New() *Game {
	return &Game{
		cfg: config.DefaultHackerConfig(),
		log: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.Hacker
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hacker Tycoon"
}

// Configure loads the game config and applies the difficulty preset.
func (g *Game) Configure(opts registry.Options) error {
	if opts.Logger != nil {
		g.log = opts.Logger.With("game", config.Hacker)
	}
	cfg, err := config.LoadHacker(opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyHackerPreset(&cfg, config.ParsePreset(opts.Difficulty))
	g.cfg = cfg
	return nil
}

// Reset builds a fresh session and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.highScore = runtime.HighScore

	// The world only carries the clock and scheduler; there are no entities.
	g.world = sim.NewWorld(float64(runtime.ScreenW), float64(runtime.ScreenH), runtime.Seed)
	g.rain = newRain(rand.New(rand.NewSource(runtime.Seed+1)), runtime.ScreenW, runtime.ScreenH)

	g.machine = sim.NewMachine()
	g.machine.OnStart(g.startSession)
	g.machine.OnGameOver(g.endSession)
	g.machine.OnQuit(g.clearSession)
	g.driver = sim.NewFrameDriver(g)
	g.driver.MaxDelta = 250 * time.Millisecond

	g.clearSession()
}

// Resize refits the background rain to the terminal.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.rain.resize(w, h)
}

func (g *Game) startSession() {
	g.clearSession()
	g.driver.Reset()
	g.newHigh = false
	g.summary = core.SessionSummary{}
	g.income = g.world.Sched.Every(ms(g.cfg.IncomeMS), g.payIncome)
	g.logf("Target IP acquired.")
	g.log.Info("session started", "click_power", g.clickPower)
}

// endSession runs on disconnect. The session is final once it gets here.
func (g *Game) endSession() {
	g.world.Sched.CancelAll()
	g.income = 0
	if g.earned > g.highScore {
		g.highScore = g.earned
		g.newHigh = true
	}
	g.summary = core.SessionSummary{
		Kills:    g.hacks,
		Duration: g.world.Now(),
	}
	g.log.Info("disconnected", "earned", g.earned, "hacks", g.hacks, "rate", g.autoRate)
}

func (g *Game) clearSession() {
	g.world.Reset()
	g.income = 0
	g.money = 0
	g.earned = 0
	g.clickPower = g.cfg.ClickPower
	g.autoRate = 0
	g.hacks = 0
	g.owned = map[Tab][]int{
		TabHardware: make([]int, len(g.cfg.Hardware)),
		TabSoftware: make([]int, len(g.cfg.Software)),
	}
	g.tab = TabHardware
	g.cursor = 0
	g.messages = nil
}

// Step applies session controls and terminal commands, then advances the simulation.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if !g.machine.Control(in) && g.machine.Playing() {
		g.handleInput(in)
	}
	g.driver.Advance(dt)
	return core.StepResult{State: g.State(), HUD: g.hud()}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionSpecial) {
		g.Disconnect()
		return
	}
	if in.Pointer.Valid {
		g.click(in.Pointer.X, in.Pointer.Y)
	}
	if in.Has(core.ActionJump) || in.Has(core.ActionFire) {
		g.Hack()
	}
	if in.Has(core.ActionSwitch) || in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		g.SwitchTab()
	}
	switch {
	case in.Has(core.ActionUp):
		g.cursor--
	case in.Has(core.ActionDown):
		g.cursor++
	}
	g.cursor = core.Clamp(g.cursor, 0, len(g.items(g.tab))-1)

	for _, a := range []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3, core.ActionSelect4, core.ActionSelect5} {
		if in.Has(a) {
			_ = g.Buy(g.tab, a.SelectIndex())
		}
	}
	if in.Has(core.ActionBuy) || in.Has(core.ActionConfirm) {
		_ = g.Buy(g.tab, g.cursor)
	}
}

// Hack runs one manual hack and earns the current click power.
func (g *Game) Hack() {
	if !g.machine.Playing() {
		return
	}
	g.hacks++
	g.addMoney(g.clickPower)
	g.rain.burst()
	g.logf("Executed hack. Gained $%s", core.FormatNumber(g.clickPower))
}

// Disconnect ends the session so its earnings are recorded.
func (g *Game) Disconnect() {
	if !g.machine.Playing() {
		return
	}
	g.logf("Connection terminated.")
	g.machine.GameOver()
}

// payIncome is the scheduler callback for passive income.
func (g *Game) payIncome() {
	if g.autoRate > 0 {
		g.addMoney(g.autoRate)
	}
}

func (g *Game) addMoney(n int) {
	g.money += n
	g.earned += n
}

// Money returns the spendable balance.
func (g *Game) Money() int {
	return g.money
}

// Earned returns lifetime earnings for this session.
func (g *Game) Earned() int {
	return g.earned
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.machine.GameState(g.earned)
}

// Summary reports the figures of the last finished session.
func (g *Game) Summary() core.SessionSummary {
	return g.summary
}

// Playing reports whether gameplay should advance.
func (g *Game) Playing() bool {
	return g.machine.Playing()
}

// Update advances the sim clock, paying income as intervals elapse.
func (g *Game) Update(dt time.Duration) {
	g.world.Sched.Advance(dt)
	g.rain.update(dt)
}

// Ambient keeps the rain falling on the title and game-over screens.
func (g *Game) Ambient(dt time.Duration) {
	if g.machine.State() != sim.StatePaused {
		g.rain.update(dt)
	}
}

func (g *Game) logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.messages = append(g.messages, msg)
	if n := g.cfg.LogLines; n > 0 && len(g.messages) > n {
		g.messages = g.messages[len(g.messages)-n:]
	}
	g.log.Debug(msg)
}

func (g *Game) hud() core.HUD {
	return core.HUD{
		Score:     g.earned,
		HighScore: max(g.highScore, g.earned),
		Money:     g.money,
		Log:       append([]string(nil), g.messages...),
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
