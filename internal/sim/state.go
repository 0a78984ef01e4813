package sim

// State is the top-level mode of a game session.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Machine gates the update path. Invalid requests return false and change nothing.
type Machine struct {
	state State

	onStart    []func()
	onGameOver []func()
	onQuit     []func()
	overFired  bool
}

// NewMachine returns a machine in the menu state.
func NewMachine() *Machine {
	return &Machine{state: StateMenu}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Playing reports whether gameplay may advance.
func (m *Machine) Playing() bool {
	return m.state == StatePlaying
}

// OnStart registers a hook that resets the session. Hooks run in registration order.
func (m *Machine) OnStart(fn func()) {
	m.onStart = append(m.onStart, fn)
}

// OnGameOver registers a hook run once when a session ends.
func (m *Machine) OnGameOver(fn func()) {
	m.onGameOver = append(m.onGameOver, fn)
}

// OnQuit registers a hook run on return to the menu.
func (m *Machine) OnQuit(fn func()) {
	m.onQuit = append(m.onQuit, fn)
}

// Start begins a new session from the menu or the game-over screen.
func (m *Machine) Start() bool {
	if m.state != StateMenu && m.state != StateGameOver {
		return false
	}
	m.state = StatePlaying
	m.overFired = false
	for _, fn := range m.onStart {
		fn()
	}
	return true
}

// Pause suspends a running session.
func (m *Machine) Pause() bool {
	if m.state != StatePlaying {
		return false
	}
	m.state = StatePaused
	return true
}

// Resume continues a paused session.
func (m *Machine) Resume() bool {
	if m.state != StatePaused {
		return false
	}
	m.state = StatePlaying
	return true
}

// TogglePause pauses or resumes depending on the current state.
func (m *Machine) TogglePause() bool {
	if m.state == StatePaused {
		return m.Resume()
	}
	return m.Pause()
}

// GameOver ends a running session. The game-over hooks fire once per session.
func (m *Machine) GameOver() bool {
	if m.state != StatePlaying || m.overFired {
		return false
	}
	m.state = StateGameOver
	m.overFired = true
	for _, fn := range m.onGameOver {
		fn()
	}
	return true
}

// QuitToMenu returns to the menu from any other state.
func (m *Machine) QuitToMenu() bool {
	if m.state == StateMenu {
		return false
	}
	m.state = StateMenu
	for _, fn := range m.onQuit {
		fn()
	}
	return true
}
