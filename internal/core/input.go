package core

// Action represents a semantic input, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionPrimary            // Space, Up, W, mouse click - start a run or flap
	ActionStart              // Enter - play button on the start screen
	ActionRetry              // R - retry button after game over
	ActionPause              // P - pause/resume toggle
	ActionBack               // Esc - close an overlay, otherwise pause
	ActionHelp               // H, ? - how-to-play overlay
	ActionShare              // S - copy a share message after game over
	ActionToggleSound        // M - mute/unmute
	ActionScreenshot         // Ctrl+S - export the current frame
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionStart:
		return "Start"
	case ActionRetry:
		return "Retry"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionShare:
		return "Share"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two driver ticks.
// Repeated presses of the same action within one frame collapse into one.
type InputFrame struct {
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
