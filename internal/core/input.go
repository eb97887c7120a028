package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionAccelerate        // W, Up arrow - thrust along heading (held)
	ActionDecelerate        // S, Down arrow - reverse thrust (held)
	ActionTurnLeft          // A, Left arrow - rotate counter-clockwise (held)
	ActionTurnRight         // D, Right arrow - rotate clockwise (held)
	ActionFire              // Space - fire, doubles as start outside play (held)
	ActionPause             // P, Escape - pause (edge)
	ActionConfirm           // Enter, R - start/confirm (edge)
	ActionBack              // B - back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session

	actionCount // sentinel for sizing latch tables
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAccelerate:
		return "Accelerate"
	case ActionDecelerate:
		return "Decelerate"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a held control (sampled as a latch)
// rather than an edge-triggered command.
func (a Action) Held() bool {
	switch a {
	case ActionAccelerate, ActionDecelerate, ActionTurnLeft, ActionTurnRight, ActionFire:
		return true
	default:
		return false
	}
}

// InputFrame represents the input state for one simulation tick: the latched
// held controls plus any edge-triggered actions delivered since the last tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
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
