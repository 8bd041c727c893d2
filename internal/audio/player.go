package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// output is the device the player writes to.
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the system speaker.
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

func (speakerOutput) Lock() { speaker.Lock() }

func (speakerOutput) Unlock() { speaker.Unlock() }

func (speakerOutput) Close() { speaker.Close() }

// Player mixes cues into a single speaker stream.
// The speaker is opened lazily on the first cue, so a game that never makes
// a sound never touches the audio device. Playback errors are logged once and
// the player goes quiet.
type Player struct {
	mu      sync.Mutex
	out     output
	mixer   *beep.Mixer
	logger  *log.Logger
	enabled bool
	volume  float64
	ready   bool
	failed  bool
}

// NewPlayer creates a player for the system speaker.
func NewPlayer(enabled bool, volume float64, logger *log.Logger) *Player {
	return newPlayer(speakerOutput{}, enabled, volume, logger)
}

func newPlayer(out output, enabled bool, volume float64, logger *log.Logger) *Player {
	return &Player{
		out:     out,
		mixer:   &beep.Mixer{},
		logger:  logger,
		enabled: enabled,
		volume:  volume,
	}
}

// Enabled reports whether cues are played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetEnabled turns playback on or off.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Toggle flips playback and returns the new state.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Play queues a cue on the mixer. It never blocks on playback.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.open() {
		return
	}
	tone, ok := ToneFor(c)
	if !ok {
		return
	}

	p.out.Lock()
	p.mixer.Add(tone.Streamer(sampleRate, p.volume))
	p.out.Unlock()
}

// open initializes the output on first use.
func (p *Player) open() bool {
	if p.ready {
		return true
	}
	if p.failed {
		return false
	}

	if err := p.out.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		p.failed = true
		if p.logger != nil {
			p.logger.Warn("audio disabled", "error", err)
		}
		return false
	}

	p.out.Play(p.mixer)
	p.ready = true
	return true
}

// Close stops all sounds and releases the output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.out.Close()
	p.ready = false
}
