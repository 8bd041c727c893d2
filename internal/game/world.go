package game

import "github.com/vovakirdan/flappy-fish/internal/core"

// Entity is the fish.
type Entity struct {
	X        float64 // Fixed horizontal position (center)
	Y        float64 // Vertical position (center), grows downward
	VY       float64 // Vertical velocity, negative is up
	Radius   float64 // Collision radius
	Rotation float64 // Banking angle in radians, visual only
}

// HSpan returns the horizontal extent of the fish.
func (e Entity) HSpan() core.Span {
	return core.SpanAround(e.X, e.Radius)
}

// VSpan returns the vertical extent of the fish.
func (e Entity) VSpan() core.Span {
	return core.SpanAround(e.Y, e.Radius)
}

// Obstacle is a pipe pair with a passable gap.
// Width and gap height are shared constants in Params.
type Obstacle struct {
	ID        uint64  // Creation sequence number
	X         float64 // Left edge
	GapCenter float64 // Vertical midpoint of the gap
	Scored    bool    // Whether passing it has been counted
}

// Right returns the x coordinate of the right edge.
func (o Obstacle) Right(width float64) float64 {
	return o.X + width
}

// HSpan returns the horizontal extent of the obstacle.
func (o Obstacle) HSpan(width float64) core.Span {
	return core.Span{Lo: o.X, Hi: o.X + width}
}

// Gap returns the vertical extent of the passable opening.
func (o Obstacle) Gap(gapHeight float64) core.Span {
	return core.SpanAround(o.GapCenter, gapHeight/2)
}

// Field is the play area in logical units.
type Field struct {
	W, H float64
}

// Valid reports whether the field has a usable, nonzero size.
func (f Field) Valid() bool {
	return f.W > 0 && f.H > 0
}

// World is the complete simulation state of one run.
// Obstacles are ordered by creation, so the head is always the leftmost.
type World struct {
	Field     Field
	Fish      Entity
	Obstacles []Obstacle
	Score     int
	NextID    uint64
}

// NewWorld returns a fresh world for the given field.
func NewWorld(field Field, p Params) World {
	return World{
		Field: field,
		Fish:  spawnFish(field, p),
	}
}

// spawnFish places the fish at its starting position.
func spawnFish(field Field, p Params) Entity {
	return Entity{
		X:      p.FishX,
		Y:      field.H * p.StartYRatio,
		Radius: p.FishRadius,
	}
}

// Clone returns a copy whose obstacle slice does not alias w's.
func (w World) Clone() World {
	w.Obstacles = append([]Obstacle(nil), w.Obstacles...)
	return w
}
