package game

// Event is a signal from the game to the presentation shell.
type Event interface {
	gameEvent()
}

// StartedEvent is emitted when a run is reset and begins.
type StartedEvent struct{}

func (StartedEvent) gameEvent() {}

// ScoredEvent is emitted each time the score is incremented.
type ScoredEvent struct {
	Score int
}

func (ScoredEvent) gameEvent() {}

// FlappedEvent is emitted when a flap is accepted.
type FlappedEvent struct{}

func (FlappedEvent) gameEvent() {}

// HitEvent is emitted on a terminal collision, just before EndedEvent.
type HitEvent struct {
	Cause Collision
}

func (HitEvent) gameEvent() {}

// EndedEvent is emitted when a run is over.
// BestScore already includes FinalScore.
type EndedEvent struct {
	FinalScore int
	BestScore  int
	NewBest    bool // FinalScore raised the best score
}

func (EndedEvent) gameEvent() {}

// PauseReason tells why a run was paused.
type PauseReason int

const (
	PauseNone     PauseReason = iota // Not paused
	PauseExplicit                    // Player asked for it
	PauseHidden                      // Terminal lost focus
)

// String returns a human-readable name for the reason.
func (r PauseReason) String() string {
	switch r {
	case PauseNone:
		return "none"
	case PauseExplicit:
		return "explicit"
	case PauseHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// PausedChangedEvent is emitted when the run enters or leaves Paused.
type PausedChangedEvent struct {
	Paused bool
	Reason PauseReason
}

func (PausedChangedEvent) gameEvent() {}
