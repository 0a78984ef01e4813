// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "shooter", "maze").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Neon Fury").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions, RNG seed and stored high score.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt of wall-clock time.
	// dt may be irregular; a throttled frame simply carries a larger dt.
	// Input is abstracted to platform-level actions (Fire, Pause, clicks, etc.).
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Options carries per-run settings chosen on the command line.
type Options struct {
	ConfigPath string      // custom YAML/TOML config; empty means search defaults
	Difficulty string      // easy, normal, hard, fixed or empty
	Logger     *log.Logger // nil means discard
}

// Configurable games load their config before the first Reset.
type Configurable interface {
	Configure(opts Options) error
}

// Summarizer games report extra end-of-session figures for storage.
type Summarizer interface {
	Summary() core.SessionSummary
}

// Resizer games adapt their viewport when the terminal changes size
// without restarting the session.
type Resizer interface {
	Resize(w, h int)
}

// Closer games hold resources (e.g. a script VM) released on exit.
type Closer interface {
	Close() error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game factory under id, normally from the game package's init.
// The title is read once from a throwaway instance. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	ids := slices.Sorted(maps.Keys(entries))
	out := make([]GameInfo, len(ids))
	for i, id := range ids {
		out[i] = GameInfo{ID: id, Title: entries[id].title}
	}
	return out
}

func lookup(id string) (entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e, ok
}

// Create returns a fresh, unconfigured game.
func Create(id string) (Game, error) {
	e, ok := lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// CreateConfigured instantiates a game and applies opts if it is Configurable.
func CreateConfigured(id string, opts Options) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		if err := c.Configure(opts); err != nil {
			return nil, fmt.Errorf("registry: configure %s: %w", id, err)
		}
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := lookup(id)
	return ok
}
