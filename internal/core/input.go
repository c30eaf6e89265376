package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionUp             // W, Up arrow - steer up
	ActionDown           // S, Down arrow - steer down
	ActionRelease        // movement key let go (inferred) or Space
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - start a new game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRelease:
		return "Release"
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
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action steers the player.
func (a Action) IsMovement() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown:
		return true
	}
	return false
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// KeyHold infers key-up events for terminals that only report presses.
// A held key auto-repeats; once no repeat arrives within the window the
// key is considered released.
type KeyHold struct {
	window time.Duration
	last   time.Time
	held   bool
}

// NewKeyHold creates a tracker. A zero window disables inference: keys
// stay held until Reset.
func NewKeyHold(window time.Duration) *KeyHold {
	return &KeyHold{window: window}
}

// Press records a press (or auto-repeat) at the given time.
func (k *KeyHold) Press(now time.Time) {
	k.last = now
	k.held = true
}

// Held reports whether a key is currently considered down.
func (k *KeyHold) Held() bool {
	return k.held
}

// Poll returns true exactly once when the held key is inferred released.
func (k *KeyHold) Poll(now time.Time) bool {
	if !k.held || k.window <= 0 {
		return false
	}
	if now.Sub(k.last) < k.window {
		return false
	}
	k.held = false
	return true
}

// Reset forgets any held key.
func (k *KeyHold) Reset() {
	k.held = false
}

// SetWindow changes the release window. Zero disables inference.
func (k *KeyHold) SetWindow(window time.Duration) {
	k.window = window
}
