package core

import (
	"testing"
	"time"
)

func TestClockFirstTickIsZero(t *testing.T) {
	c := NewClock(0.033)
	if dt := c.Tick(time.Unix(100, 0)); dt != 0 {
		t.Errorf("first tick dt = %f, expected 0", dt)
	}
}

func TestClockInterval(t *testing.T) {
	c := NewClock(0.033)
	start := time.Unix(100, 0)
	c.Tick(start)

	dt := c.Tick(start.Add(16 * time.Millisecond))
	if dt < 0.0159 || dt > 0.0161 {
		t.Errorf("dt = %f, expected ~0.016", dt)
	}
}

func TestClockClampsStall(t *testing.T) {
	c := NewClock(0.033)
	start := time.Unix(100, 0)
	c.Tick(start)

	// Terminal was suspended for five seconds
	dt := c.Tick(start.Add(5 * time.Second))
	if dt != 0.033 {
		t.Errorf("dt after stall = %f, expected clamp 0.033", dt)
	}
	if c.Elapsed() != 5*time.Second {
		t.Errorf("Elapsed() = %v, expected 5s unclamped", c.Elapsed())
	}
}

func TestClockBackwardsTimestamp(t *testing.T) {
	c := NewClock(0.033)
	start := time.Unix(100, 0)
	c.Tick(start)

	if dt := c.Tick(start.Add(-time.Second)); dt != 0 {
		t.Errorf("backwards timestamp dt = %f, expected 0", dt)
	}

	// The clock keeps its last good reading
	dt := c.Tick(start.Add(10 * time.Millisecond))
	if dt < 0.0099 || dt > 0.0101 {
		t.Errorf("dt after backwards tick = %f, expected ~0.010", dt)
	}
}

func TestClockDefaultMaxStep(t *testing.T) {
	if got := NewClock(0).MaxStep(); got != DefaultMaxStep {
		t.Errorf("MaxStep() = %f, expected default %f", got, DefaultMaxStep)
	}
}
