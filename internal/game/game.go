// Package game implements Flappy Fish: a fish swims through a stream of
// coral pipes under constant gravity. The package is headless; it exposes
// explicit inputs and returns events for the presentation shell.
package game

import (
	"math/rand"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// ID is the game identifier used for score storage.
const ID = "flappyfish"

// Title is the display name of the game.
const Title = "Flappy Fish"

// Phase is the run state.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first run
	PhaseRunning               // Simulation advancing
	PhasePaused                // Frozen until an explicit resume
	PhaseGameOver              // Frozen until the next start
)

// String returns a human-readable name for the phase.
func (ph Phase) String() string {
	switch ph {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game owns the world and the run state machine.
// Every input method returns the events it produced, in order.
type Game struct {
	params      Params
	world       World
	phase       Phase
	pause       PauseReason
	best        int
	pendingFlap bool
	rng         *rand.Rand
	ticks       int
}

// New creates a game in the Idle phase.
// best is the persisted best score loaded by the shell.
func New(p Params, seed int64, best int) *Game {
	return &Game{
		params: p,
		world:  NewWorld(Field{}, p),
		best:   max(best, 0),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Params returns the simulation constants.
func (g *Game) Params() Params {
	return g.params
}

// World returns a copy of the current world.
func (g *Game) World() World {
	return g.world.Clone()
}

// Phase returns the current run state.
func (g *Game) Phase() Phase {
	return g.phase
}

// PauseReason returns why the run is paused, or PauseNone.
func (g *Game) PauseReason() PauseReason {
	return g.pause
}

// Best returns the best score across completed runs.
func (g *Game) Best() int {
	return g.best
}

// Ticks returns the number of advanced ticks in the current run.
func (g *Game) Ticks() int {
	return g.ticks
}

// State returns a summary for the HUD.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		Best:     g.best,
		Running:  g.phase == PhaseRunning,
		Paused:   g.phase == PhasePaused,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Start begins a fresh run from Idle or GameOver.
// It is ignored while a run is in progress.
func (g *Game) Start() []Event {
	if g.phase != PhaseIdle && g.phase != PhaseGameOver {
		return nil
	}

	g.world = NewWorld(g.world.Field, g.params)
	g.phase = PhaseRunning
	g.pause = PauseNone
	g.pendingFlap = false
	g.ticks = 0

	return []Event{StartedEvent{}}
}

// Flap queues an upward impulse for the next tick.
// It is ignored unless the run is advancing.
func (g *Game) Flap() []Event {
	if g.phase != PhaseRunning {
		return nil
	}
	g.pendingFlap = true
	return []Event{FlappedEvent{}}
}

// Primary handles the main input: it starts a run from Idle or GameOver and
// flaps while running. It does nothing while paused.
func (g *Game) Primary() []Event {
	switch g.phase {
	case PhaseIdle, PhaseGameOver:
		return g.Start()
	case PhaseRunning:
		return g.Flap()
	default:
		return nil
	}
}

// SetPaused pauses a running game or resumes a paused one.
// Requests that do not change the phase are ignored, so repeating a request
// emits at most one event.
func (g *Game) SetPaused(paused bool) []Event {
	switch {
	case paused && g.phase == PhaseRunning:
		return g.enterPause(PauseExplicit)
	case !paused && g.phase == PhasePaused:
		g.phase = PhaseRunning
		g.pause = PauseNone
		return []Event{PausedChangedEvent{Paused: false, Reason: PauseNone}}
	default:
		return nil
	}
}

// TogglePause flips between Running and Paused.
func (g *Game) TogglePause() []Event {
	return g.SetPaused(g.phase == PhaseRunning)
}

// Hide pauses a running game because the surface lost visibility.
// Regaining visibility does not resume; only SetPaused(false) does.
func (g *Game) Hide() []Event {
	if g.phase != PhaseRunning {
		return nil
	}
	return g.enterPause(PauseHidden)
}

func (g *Game) enterPause(reason PauseReason) []Event {
	g.phase = PhasePaused
	g.pause = reason
	return []Event{PausedChangedEvent{Paused: true, Reason: reason}}
}

// Resize updates the field geometry. Entity and obstacle state are kept as
// they are; only an idle fish is re-seated so it stays on screen.
func (g *Game) Resize(w, h float64) {
	g.world.Field = Field{W: max(w, 0), H: max(h, 0)}
	if g.phase == PhaseIdle {
		g.world.Fish = spawnFish(g.world.Field, g.params)
	}
}

// Advance runs one tick of dt seconds. It only advances while Running.
func (g *Game) Advance(dt float64) []Event {
	if g.phase != PhaseRunning {
		return nil
	}

	next, res := Step(g.world, StepInput{DT: dt, Flap: g.pendingFlap}, g.params, g.rng)
	if res.Skipped {
		return nil
	}
	g.world = next
	g.pendingFlap = false
	g.ticks++

	var events []Event
	for i := res.Scored - 1; i >= 0; i-- {
		events = append(events, ScoredEvent{Score: g.world.Score - i})
	}

	if res.Collision != CollisionNone {
		events = append(events, g.end(res.Collision)...)
	}
	return events
}

// end moves to GameOver and folds the final score into the best score.
func (g *Game) end(cause Collision) []Event {
	g.phase = PhaseGameOver
	g.pendingFlap = false

	final := g.world.Score
	newBest := final > g.best
	if newBest {
		g.best = final
	}

	return []Event{
		HitEvent{Cause: cause},
		EndedEvent{FinalScore: final, BestScore: g.best, NewBest: newBest},
	}
}

// Render draws the current world. t is wall-clock seconds for cosmetic motion.
func (g *Game) Render(dst *core.Screen, vp core.Viewport, t float64) {
	Render(dst, g.world, g.params, vp, t)
}
