package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space, W, Up - impulse the flyer upward
	ActionQuit        // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation step.
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Trigger converts a level signal ("is the button down this step") into
// an edge signal that fires only on the step the button first goes down.
type Trigger struct {
	down bool
}

// Update feeds the current level and reports whether a rising edge occurred.
func (t *Trigger) Update(down bool) bool {
	fired := down && !t.down
	t.down = down
	return fired
}

// Reset forgets the previous level, so the next press fires again.
func (t *Trigger) Reset() {
	t.down = false
}
