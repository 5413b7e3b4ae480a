package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - held
	ActionRight          // D, Right arrow - held
	ActionUp             // W, Up arrow - held
	ActionDown           // S, Down arrow - held
	ActionFire           // Space - fire one projectile per press
	ActionPause          // P, Escape - pause/resume
	ActionConfirm        // Enter - start from menu, acknowledge game over
	ActionQuit           // Q - exit from the main menu
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
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement directions.
func (a Action) IsDirection() bool {
	return a == ActionLeft || a == ActionRight || a == ActionUp || a == ActionDown
}

// Opposite returns the direction pointing the other way, or ActionNone.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	default:
		return ActionNone
	}
}

// InputFrame is the input for one simulation step.
// Pressed actions are edge-triggered: they fire once on the frame they arrive.
// Held actions are level-triggered: they stay set while the key is down.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets pressed and held actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
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
	return clone
}

// HoldTracker turns discrete key events into held state.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held until window elapses without another event for it.
type HoldTracker struct {
	window time.Duration
	last   map[Action]time.Time
	seen   map[Action]time.Time // Latest event per non-direction action
}

// NewHoldTracker creates a tracker that keeps a key held for window after
// its most recent event.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[Action]time.Time),
		seen:   make(map[Action]time.Time),
	}
}

// Press records a key event for a direction. Pressing a direction releases
// its opposite immediately.
func (h *HoldTracker) Press(a Action, now time.Time) {
	if !a.IsDirection() {
		return
	}
	delete(h.last, a.Opposite())
	h.last[a] = now
}

// Repeat records an event for a non-direction action and reports whether it
// came within window of the previous one, as auto-repeat does. Holding a key
// keeps renewing the window, so only the first event of a hold is fresh.
func (h *HoldTracker) Repeat(a Action, now time.Time) bool {
	prev, ok := h.seen[a]
	h.seen[a] = now
	return ok && now.Sub(prev) <= h.window
}

// Release forgets every held direction.
func (h *HoldTracker) Release() {
	for k := range h.last {
		delete(h.last, k)
	}
}

// Apply sets the still-held directions on frame and expires stale ones.
func (h *HoldTracker) Apply(frame *InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Hold(a)
	}
}
