package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the game only sees intents.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - steer up / menu up
	ActionDown               // S, Down arrow - steer down / menu down
	ActionLeft               // A, Left arrow - steer left / decrease value
	ActionRight              // D, Right arrow - steer right / increase value
	ActionConfirm            // Enter - confirm selection
	ActionBack               // Escape - leave the current screen
	ActionRestart            // R key - restart after game over, reseed in the lobby
	ActionQuit               // Q, Ctrl+C - exit
	ActionPause              // P - pause/unpause a run
	ActionDensityDown        // - key
	ActionDensityUp          // + / = key
	ActionSlower             // [ key
	ActionFaster             // ] key
	ActionSettings           // S in the lobby
	ActionMute               // M in settings
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
	case ActionDensityDown:
		return "DensityDown"
	case ActionDensityUp:
		return "DensityUp"
	case ActionSlower:
		return "Slower"
	case ActionFaster:
		return "Faster"
	case ActionSettings:
		return "Settings"
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
