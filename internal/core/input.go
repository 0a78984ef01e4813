package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // Space - primary action (jump, hack, fire)
	ActionFire           // Space - fire (held)
	ActionSpecial        // X - special attack (held)
	ActionConfirm        // Enter - confirm selection / start game
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
	ActionBuy            // E - buy / next wave
	ActionUpgrade        // U - upgrade selection
	ActionSell           // Delete, Backspace - sell selection
	ActionSwitch         // Tab - switch shop tab
	ActionSelect1        // 1 - pick slot 1
	ActionSelect2        // 2 - pick slot 2
	ActionSelect3        // 3 - pick slot 3
	ActionSelect4        // 4 - pick slot 4
	ActionSelect5        // 5 - pick slot 5
	ActionPlace          // Mouse click / Enter on the cursor cell
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionSpecial:
		return "Special"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionBuy:
		return "Buy"
	case ActionUpgrade:
		return "Upgrade"
	case ActionSell:
		return "Sell"
	case ActionSwitch:
		return "Switch"
	case ActionSelect1, ActionSelect2, ActionSelect3, ActionSelect4, ActionSelect5:
		return "Select"
	case ActionPlace:
		return "Place"
	default:
		return "Unknown"
	}
}

// SelectIndex returns the zero-based slot for ActionSelect1..ActionSelect5, or -1.
func (a Action) SelectIndex() int {
	if a >= ActionSelect1 && a <= ActionSelect5 {
		return int(a - ActionSelect1)
	}
	return -1
}

// Pointer is a click position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool
}

// InputFrame represents the input state for a single player during one frame.
// Actions are discrete events triggered this frame; Held is the snapshot of
// keys that are currently down (movement, fire, special).
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Held maps continuous actions to their current key state.
	Held map[Action]bool

	// Pointer is the last click this frame, if any.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold records the key state of a continuous action.
func (f *InputFrame) Hold(a Action, down bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if down {
		f.Held[a] = true
		return
	}
	delete(f.Held, a)
}

// IsHeld returns true if the action's key is down, or was triggered this frame.
// Terminals without key-release events deliver movement as discrete presses,
// so a press counts as held for the frame it arrives in.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held != nil && f.Held[a] {
		return true
	}
	return f.Has(a)
}

// Click records a pointer click at the given cell.
func (f *InputFrame) Click(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
	f.Set(ActionPlace)
}

// Clear resets all discrete actions and the pointer for the next frame.
// Held keys survive until released.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Release drops every held key.
func (f *InputFrame) Release() {
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
