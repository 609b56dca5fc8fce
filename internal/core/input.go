package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionLeft           // A, Left arrow, touch ◀ - move left (held)
	ActionRight          // D, Right arrow, touch ▶ - move right (held)
	ActionShoot          // Space, Up, canvas click, touch FIRE
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionShoot:
		return "Shoot"
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

// InputSource identifies the device that is holding a continuous action.
type InputSource int

const (
	SourceKeyboard InputSource = iota
	SourceTouch                // On-screen buttons driven by mouse/touch
)

// String returns the source name.
func (s InputSource) String() string {
	if s == SourceTouch {
		return "touch"
	}
	return "keyboard"
}

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions holds discrete actions triggered this frame (shoot, pause).
	Actions map[Action]bool

	// Held holds continuous actions that are down during this frame,
	// keyed by action with the device holding it.
	Held map[Action]InputSource
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]InputSource),
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

// Hold marks a continuous action as held by src for this frame.
func (f *InputFrame) Hold(a Action, src InputSource) {
	if f.Held == nil {
		f.Held = make(map[Action]InputSource)
	}
	f.Held[a] = src
}

// IsHeld returns whether a continuous action is held and by which source.
func (f InputFrame) IsHeld(a Action) (InputSource, bool) {
	if f.Held == nil {
		return SourceKeyboard, false
	}
	src, ok := f.Held[a]
	return src, ok
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}
