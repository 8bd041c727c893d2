package game

// Rand is the randomness source used to place gaps.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// GapBounds returns the allowed range of gap centers for a field height.
// When the field is too short to honor the margins, both bounds collapse to
// the middle of the field.
func GapBounds(fieldH float64, p Params) (lo, hi float64) {
	lo = p.Margin + p.GapHeight/2
	hi = fieldH - p.Margin - p.GapHeight/2
	if hi < lo {
		mid := fieldH / 2
		return mid, mid
	}
	return lo, hi
}

// needSpawn reports whether a new obstacle is due.
func needSpawn(w World, p Params) bool {
	if len(w.Obstacles) == 0 {
		return true
	}
	last := w.Obstacles[len(w.Obstacles)-1]
	return w.Field.W-last.X >= p.Spacing
}

// spawn appends a new obstacle just beyond the right edge of the field.
func spawn(w *World, p Params, rng Rand) {
	lo, hi := GapBounds(w.Field.H, p)
	w.Obstacles = append(w.Obstacles, Obstacle{
		ID:        w.NextID,
		X:         w.Field.W + p.ObstacleWidth,
		GapCenter: lo + rng.Float64()*(hi-lo),
	})
	w.NextID++
}

// scroll moves every obstacle left.
func scroll(w *World, p Params, dt float64) {
	dx := p.Speed * dt
	for i := range w.Obstacles {
		w.Obstacles[i].X -= dx
	}
}

// retire drops obstacles that have fully left the field.
// Only the head can be off screen, so removal stops at the first survivor.
func retire(w *World, p Params) {
	n := 0
	for n < len(w.Obstacles) && w.Obstacles[n].Right(p.ObstacleWidth) < 0 {
		n++
	}
	if n > 0 {
		w.Obstacles = w.Obstacles[n:]
	}
}
