// Package audio synthesizes the short sound cues of the game and plays them
// through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// rampFloor is the gain an exponential decay ends at. Zero is unreachable
// on an exponential curve.
const rampFloor = 0.0001

// Tone describes a single enveloped beep.
type Tone struct {
	Freq     float64       // Hz
	Duration time.Duration // Total length
	Wave     Wave
	Gain     float64 // Starting gain, decays exponentially to silence
}

// oscillator generates a raw periodic wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// newOscillator creates an oscillator producing duration worth of samples.
func newOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// sample returns the wave value in [-1, 1] for a phase in [0, 1).
func sample(wave Wave, phase float64) float64 {
	switch wave {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay scales a stream by a gain that falls exponentially from start to
// rampFloor over the given number of samples.
type decay struct {
	streamer beep.Streamer
	start    float64
	position int
	total    int
}

func newDecay(s beep.Streamer, gain float64, duration time.Duration, rate beep.SampleRate) *decay {
	return &decay{streamer: s, start: gain, total: rate.N(duration)}
}

// gainAt returns the envelope value at sample position pos.
func (d *decay) gainAt(pos int) float64 {
	if d.start <= 0 {
		return 0
	}
	if d.total <= 0 || pos >= d.total {
		return rampFloor
	}
	frac := float64(pos) / float64(d.total)
	return d.start * math.Pow(rampFloor/d.start, frac)
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := d.gainAt(d.position)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s in a linear volume control.
// math.Log2(0) is -Inf, so zero volume is mapped to silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer renders the tone at the given sample rate and master volume.
func (t Tone) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := newOscillator(t.Freq, t.Duration, t.Wave, rate)
	shaped := newDecay(osc, t.Gain, t.Duration, rate)
	return newVolume(shaped, volume)
}
