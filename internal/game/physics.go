package game

import (
	"math"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Collision identifies what ended a run.
type Collision int

const (
	CollisionNone     Collision = iota // Run continues
	CollisionCeiling                   // Fish crossed the top of the field
	CollisionFloor                     // Fish crossed the bottom of the field
	CollisionObstacle                  // Fish touched a pipe outside its gap
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionCeiling:
		return "ceiling"
	case CollisionFloor:
		return "floor"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// StepInput carries everything that happened since the previous tick.
type StepInput struct {
	DT   float64 // Elapsed seconds, clamped to Params.MaxStep
	Flap bool    // A flap impulse was queued
}

// StepResult describes what a tick did.
type StepResult struct {
	Scored    int       // Obstacles passed this tick
	Collision Collision // Terminal collision, if any
	Skipped   bool      // Field was not usable, nothing advanced
}

// Step advances the world by one tick and returns the new world.
// The input world is not modified. A collision stops the tick before scoring.
func Step(w World, in StepInput, p Params, rng Rand) (World, StepResult) {
	if !w.Field.Valid() {
		return w, StepResult{Skipped: true}
	}

	w = w.Clone()
	dt := core.ClampF(in.DT, 0, p.MaxStep)

	if in.Flap {
		w.Fish.VY = p.FlapVelocity
	}

	// Spawn, scroll, retire
	if needSpawn(w, p) {
		spawn(&w, p, rng)
	}
	scroll(&w, p, dt)
	retire(&w, p)

	integrate(&w.Fish, p, dt)

	if c := collide(w, p); c != CollisionNone {
		return w, StepResult{Collision: c}
	}

	return w, StepResult{Scored: score(&w, p)}
}

// integrate applies gravity and moves the fish.
func integrate(e *Entity, p Params, dt float64) {
	e.VY = math.Min(p.MaxFallSpeed, e.VY+p.Gravity*dt)
	e.Y += e.VY * dt
	e.Rotation = math.Atan2(e.VY, p.ForwardSpeedRef)
}

// collide checks the field boundaries, then every obstacle the fish overlaps.
func collide(w World, p Params) Collision {
	body := w.Fish.VSpan()
	if body.Lo < 0 {
		return CollisionCeiling
	}
	if body.Hi > w.Field.H {
		return CollisionFloor
	}

	reach := w.Fish.HSpan()
	for _, o := range w.Obstacles {
		if !reach.Overlaps(o.HSpan(p.ObstacleWidth)) {
			continue
		}
		if !body.Within(o.Gap(p.GapHeight)) {
			return CollisionObstacle
		}
	}
	return CollisionNone
}

// score marks obstacles whose right edge is behind the fish.
func score(w *World, p Params) int {
	tail := w.Fish.X - w.Fish.Radius
	passed := 0
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if !o.Scored && o.Right(p.ObstacleWidth) < tail {
			o.Scored = true
			passed++
		}
	}
	w.Score += passed
	return passed
}
