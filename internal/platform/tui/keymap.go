package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// holdWindow is how long a press keeps a continuous action held.
// Terminals report no key releases, only repeats, so a held key is one
// that was pressed again within the window.
const holdWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to the actions it triggers.
// Space fires and jumps at once so every game reads it as its primary action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	case "w", "up":
		return []core.Action{core.ActionUp}, false
	case "s", "down":
		return []core.Action{core.ActionDown}, false
	case "a", "left":
		return []core.Action{core.ActionLeft}, false
	case "d", "right":
		return []core.Action{core.ActionRight}, false
	case " ":
		return []core.Action{core.ActionJump, core.ActionFire}, false
	case "x":
		return []core.Action{core.ActionSpecial}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b":
		return []core.Action{core.ActionBack}, false
	case "p", "esc":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	case "e":
		return []core.Action{core.ActionBuy}, false
	case "u":
		return []core.Action{core.ActionUpgrade}, false
	case "delete", "backspace":
		return []core.Action{core.ActionSell}, false
	case "tab":
		return []core.Action{core.ActionSwitch}, false
	case "1":
		return []core.Action{core.ActionSelect1}, false
	case "2":
		return []core.Action{core.ActionSelect2}, false
	case "3":
		return []core.Action{core.ActionSelect3}, false
	case "4":
		return []core.Action{core.ActionSelect4}, false
	case "5":
		return []core.Action{core.ActionSelect5}, false
	}
	return nil, false
}

// Holdable reports whether an action is continuous (movement, fire, special).
func (km *KeyMapper) Holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionFire, core.ActionSpecial:
		return true
	}
	return false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// heldKeys tracks when each continuous action was last pressed.
type heldKeys map[core.Action]time.Time

// press records a press of a at now.
func (h heldKeys) press(a core.Action, now time.Time) {
	h[a] = now
}

// apply copies the actions still inside the hold window into frame and
// forgets the expired ones.
func (h heldKeys) apply(frame *core.InputFrame, now time.Time) {
	frame.Release()
	for a, at := range h {
		if now.Sub(at) > holdWindow {
			delete(h, a)
			continue
		}
		frame.Hold(a, true)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
