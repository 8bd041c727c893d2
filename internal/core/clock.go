package core

import "time"

// DefaultMaxStep bounds a single physics step after a stall.
const DefaultMaxStep = 0.033

// Clock turns driver timestamps into clamped frame intervals.
// The first tick yields zero, and a timestamp that goes backwards also yields
// zero, so the interval is never negative.
type Clock struct {
	last    time.Time
	started bool
	maxStep float64
	elapsed time.Duration
}

// NewClock creates a clock whose intervals never exceed maxStep seconds.
// A non-positive maxStep selects DefaultMaxStep.
func NewClock(maxStep float64) *Clock {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Clock{maxStep: maxStep}
}

// Tick records now and returns the clamped interval since the previous tick
// in seconds.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	d := now.Sub(c.last)
	if d < 0 {
		return 0
	}
	c.last = now
	c.elapsed += d

	return ClampF(d.Seconds(), 0, c.maxStep)
}

// Elapsed returns the unclamped wall-clock time seen since the first tick.
// Cosmetic animation keys off this value, never the physics.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// MaxStep returns the configured clamp bound in seconds.
func (c *Clock) MaxStep() float64 {
	return c.maxStep
}
