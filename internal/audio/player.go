// Package audio plays the game's sound cues through gopxl/beep. Every cue is
// synthesized; there are no sample files.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
)

const sampleRate = beep.SampleRate(44100)

var _ arkanoid.Audio = (*Player)(nil)

// Player mixes cues into a single beep.Mixer. Until Init succeeds the mixer
// is not attached to a device, which keeps the player usable headless.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	format      beep.Format
	master      float64
	initialized bool
	logger      *log.Logger
}

// Option configures a Player.
type Option func(*Player)

// WithMasterVolume scales every cue. Values are clamped to [0, 1].
func WithMasterVolume(v float64) Option {
	return func(p *Player) { p.master = min(max(v, 0), 1) }
}

// WithLogger sets the logger used for device errors.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// NewPlayer creates a player with an empty mixer.
func NewPlayer(opts ...Option) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		format: beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		master: 1,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init opens the default output device and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a cue. Solo silences everything already playing first; Loop
// repeats the cue until the next solo cue or Close.
func (p *Player) Play(cue arkanoid.Cue, opts arkanoid.PlayOptions) {
	s := synthCue(cue, sampleRate)
	if s == nil {
		p.logger.Debug("unknown cue", "cue", cue)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if opts.Loop {
		buf := beep.NewBuffer(p.format)
		buf.Append(s)
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	s = newVolume(s, opts.Volume*p.master)

	p.lock()
	defer p.unlock()
	if opts.Solo {
		p.mixer.Clear()
	}
	p.mixer.Add(s)
}

// Playing returns the number of streams in the mixer.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Stream pulls samples from the mixer directly. It is meant for headless use
// and tests; with an open device the speaker is the only reader.
func (p *Player) Stream(samples [][2]float64) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n, _ := p.mixer.Stream(samples)
	return n
}

// Close silences the player and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	p.mixer.Clear()
	p.unlock()
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// lock guards the mixer against the speaker goroutine. It must be called with
// p.mu held.
func (p *Player) lock() {
	if p.initialized {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.initialized {
		speaker.Unlock()
	}
}

// Nop is an Audio that discards every cue.
type Nop struct{}

func (Nop) Play(arkanoid.Cue, arkanoid.PlayOptions) {}
