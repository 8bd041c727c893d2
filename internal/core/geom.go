// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned cell rectangle used for overlay layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Span is a closed interval on one axis, in logical units.
type Span struct {
	Lo, Hi float64
}

// SpanAround returns the interval [center-radius, center+radius].
func SpanAround(center, radius float64) Span {
	return Span{Lo: center - radius, Hi: center + radius}
}

// Overlaps reports whether the open interiors of s and o intersect.
// Touching edges do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Hi > o.Lo && s.Lo < o.Hi
}

// Within reports whether s lies entirely inside o (edges inclusive).
func (s Span) Within(o Span) bool {
	return s.Lo >= o.Lo && s.Hi <= o.Hi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
