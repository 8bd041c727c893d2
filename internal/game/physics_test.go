package game

import (
	"math"
	"testing"
)

func testWorld(p Params) World {
	return NewWorld(Field{W: 640, H: 384}, p)
}

func TestStepVelocityClamped(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(Field{W: 640, H: 100000}, p)

	for i := 0; i < 60; i++ {
		var res StepResult
		w, res = Step(w, StepInput{DT: p.MaxStep}, p, fixedRand(0.5))
		if res.Collision != CollisionNone {
			t.Fatalf("Tick %d: unexpected collision %v", i, res.Collision)
		}
		if w.Fish.VY > p.MaxFallSpeed {
			t.Fatalf("Tick %d: VY %v exceeds max fall speed %v", i, w.Fish.VY, p.MaxFallSpeed)
		}
	}

	if w.Fish.VY != p.MaxFallSpeed {
		t.Errorf("Expected terminal velocity %v after a long fall, got %v", p.MaxFallSpeed, w.Fish.VY)
	}
}

func TestStepFlap(t *testing.T) {
	p := DefaultParams()
	w := testWorld(p)

	w, _ = Step(w, StepInput{DT: 0, Flap: true}, p, fixedRand(0.5))
	if w.Fish.VY != p.FlapVelocity {
		t.Errorf("Expected VY %v after flap, got %v", p.FlapVelocity, w.Fish.VY)
	}
	if w.Fish.Rotation >= 0 {
		t.Errorf("Rising fish should bank upward, rotation=%v", w.Fish.Rotation)
	}

	dt := 0.02
	before := w.Fish.Y
	w, _ = Step(w, StepInput{DT: dt}, p, fixedRand(0.5))
	wantVY := p.FlapVelocity + p.Gravity*dt
	if math.Abs(w.Fish.VY-wantVY) > 1e-9 {
		t.Errorf("Expected VY %v, got %v", wantVY, w.Fish.VY)
	}
	if w.Fish.Y >= before {
		t.Errorf("Fish should rise after a flap: y %v -> %v", before, w.Fish.Y)
	}
}

func TestStepClampsDT(t *testing.T) {
	p := DefaultParams()
	w := testWorld(p)

	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"negative", -1, 0},
		{"normal", 0.01, 0.01},
		{"long stall", 5, p.MaxStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := Step(w, StepInput{DT: tt.dt}, p, fixedRand(0.5))
			spawnX := w.Field.W + p.ObstacleWidth
			moved := spawnX - next.Obstacles[0].X
			if math.Abs(moved-p.Speed*tt.want) > 1e-9 {
				t.Errorf("Obstacle moved %v, want %v", moved, p.Speed*tt.want)
			}
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	p := DefaultParams()
	w := testWorld(p)
	w.Obstacles = []Obstacle{{ID: 0, X: 300, GapCenter: 192}}
	w.NextID = 1

	next, _ := Step(w, StepInput{DT: p.MaxStep, Flap: true}, p, fixedRand(0.5))

	if w.Obstacles[0].X != 300 {
		t.Errorf("Input obstacle was mutated: x=%v", w.Obstacles[0].X)
	}
	if w.Fish.VY != 0 {
		t.Errorf("Input fish was mutated: vy=%v", w.Fish.VY)
	}
	if next.Obstacles[0].X == 300 {
		t.Error("Output obstacle should have scrolled")
	}
}

func TestStepInvalidFieldSkips(t *testing.T) {
	p := DefaultParams()

	for _, f := range []Field{{}, {W: 640}, {H: 384}, {W: -1, H: 384}} {
		w := NewWorld(f, p)
		next, res := Step(w, StepInput{DT: p.MaxStep, Flap: true}, p, fixedRand(0.5))
		if !res.Skipped {
			t.Errorf("Field %+v: expected step to be skipped", f)
		}
		if len(next.Obstacles) != 0 || next.Fish != w.Fish {
			t.Errorf("Field %+v: skipped step changed the world", f)
		}
	}
}

func TestStepBoundaryCollision(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name string
		y    float64
		want Collision
	}{
		{"top edge", 0, CollisionCeiling},
		{"touching top", p.FishRadius, CollisionNone},
		{"middle", 192, CollisionNone},
		{"touching bottom", 384 - p.FishRadius, CollisionNone},
		{"bottom edge", 384, CollisionFloor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(p)
			w.Fish.Y = tt.y
			_, res := Step(w, StepInput{DT: 0}, p, fixedRand(0.5))
			if res.Collision != tt.want {
				t.Errorf("y=%v: collision %v, want %v", tt.y, res.Collision, tt.want)
			}
		})
	}
}

func TestStepObstacleCollision(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name      string
		x         float64
		gapCenter float64
		want      Collision
	}{
		{"inside gap", 80, 192, CollisionNone},
		{"gap edge touches body", 80, 192 - p.GapHeight/2 + p.FishRadius, CollisionNone},
		{"above gap", 80, 100, CollisionObstacle},
		{"below gap", 80, 300, CollisionObstacle},
		{"pipe touching nose", 90 + 14, 300, CollisionNone},
		{"pipe touching tail", 90 - 14 - 50, 300, CollisionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(p)
			w.Fish.Y = 192
			w.Obstacles = []Obstacle{{ID: 0, X: tt.x, GapCenter: tt.gapCenter, Scored: true}}
			w.NextID = 1

			_, res := Step(w, StepInput{DT: 0}, p, fixedRand(0.5))
			if res.Collision != tt.want {
				t.Errorf("collision %v, want %v", res.Collision, tt.want)
			}
		})
	}
}

func TestStepScoring(t *testing.T) {
	p := DefaultParams()
	w := testWorld(p)
	w.Fish.Y = 192
	tail := w.Fish.X - w.Fish.Radius
	w.Obstacles = []Obstacle{
		{ID: 0, X: tail - p.ObstacleWidth - 1, GapCenter: 192},
		{ID: 1, X: tail - p.ObstacleWidth + 1, GapCenter: 192},
	}
	w.NextID = 2

	w, res := Step(w, StepInput{DT: 0}, p, fixedRand(0.5))
	if res.Scored != 1 || w.Score != 1 {
		t.Fatalf("Expected one point, got scored=%d score=%d", res.Scored, w.Score)
	}
	if !w.Obstacles[0].Scored || w.Obstacles[1].Scored {
		t.Errorf("Wrong obstacles marked scored: %+v", w.Obstacles[:2])
	}

	// A scored obstacle never counts twice
	w, res = Step(w, StepInput{DT: 0}, p, fixedRand(0.5))
	if res.Scored != 0 || w.Score != 1 {
		t.Errorf("Obstacle scored twice: scored=%d score=%d", res.Scored, w.Score)
	}
}

func TestStepCollisionBeforeScoring(t *testing.T) {
	p := DefaultParams()
	w := testWorld(p)
	w.Fish.Y = 0
	w.Obstacles = []Obstacle{{ID: 0, X: 0, GapCenter: 192}}
	w.NextID = 1

	next, res := Step(w, StepInput{DT: 0}, p, fixedRand(0.5))
	if res.Collision != CollisionCeiling {
		t.Fatalf("Expected ceiling collision, got %v", res.Collision)
	}
	if res.Scored != 0 || next.Score != 0 {
		t.Errorf("Colliding tick must not score: scored=%d score=%d", res.Scored, next.Score)
	}
}

func TestCollisionString(t *testing.T) {
	tests := map[Collision]string{
		CollisionNone:     "none",
		CollisionCeiling:  "ceiling",
		CollisionFloor:    "floor",
		CollisionObstacle: "obstacle",
		Collision(99):     "unknown",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Collision(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
