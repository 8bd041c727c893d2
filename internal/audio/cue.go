package audio

import "time"

// Cue is a sound effect triggered by a game event.
type Cue int

const (
	CueSwim  Cue = iota // Flap
	CueScore            // Obstacle passed
	CueHit              // Run ended
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueSwim:
		return "swim"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

var cueTones = map[Cue]Tone{
	CueSwim:  {Freq: 520, Duration: 60 * time.Millisecond, Wave: WaveTriangle, Gain: 0.06},
	CueScore: {Freq: 800, Duration: 90 * time.Millisecond, Wave: WaveSquare, Gain: 0.06},
	CueHit:   {Freq: 120, Duration: 160 * time.Millisecond, Wave: WaveSaw, Gain: 0.08},
}

// ToneFor returns the tone of a cue.
func ToneFor(c Cue) (Tone, bool) {
	t, ok := cueTones[c]
	return t, ok
}
