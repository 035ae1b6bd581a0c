package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionMoveLeft             // Left arrow, A - shift piece one column left
	ActionMoveRight            // Right arrow, D - shift piece one column right
	ActionRotate               // Up arrow, W - rotate piece clockwise
	ActionSoftDropStart        // Down arrow, S - fast fall while held
	ActionSoftDropEnd          // Synthesized by the platform when the down key is released
	ActionHardDrop             // Space - drop and lock immediately
	ActionPause                // P - pause/unpause game
	ActionMute                 // M - mute/unmute sound effects
	ActionRestart              // R - start a new game
	ActionQuit                 // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDropStart:
		return "SoftDropStart"
	case ActionSoftDropEnd:
		return "SoftDropEnd"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the commands received during one simulation tick.
// Commands keep their arrival order, so two presses of the same key within
// one frame are both applied.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the frame's actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
