package sim

import "github.com/vovakirdan/neon-arcade/internal/core"

// Control applies the session actions every game shares:
// Enter starts from the menu, R or Enter restarts after game over,
// P toggles pause and B returns to the menu.
// It reports whether the input caused a transition.
func (m *Machine) Control(in core.InputFrame) bool {
	switch m.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			return m.Start()
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			return m.Pause()
		}
		if in.Has(core.ActionBack) {
			return m.QuitToMenu()
		}
	case StatePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			return m.Resume()
		}
		if in.Has(core.ActionBack) {
			return m.QuitToMenu()
		}
	case StateGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			return m.Start()
		}
		if in.Has(core.ActionBack) {
			return m.QuitToMenu()
		}
	}
	return false
}

// GameState reports the machine as the platform-level state flags.
func (m *Machine) GameState(score int) core.GameState {
	return core.GameState{
		Score:    score,
		GameOver: m.state == StateGameOver,
		Paused:   m.state == StatePaused,
		InMenu:   m.state == StateMenu,
	}
}
