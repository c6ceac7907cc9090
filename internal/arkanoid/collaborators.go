package arkanoid

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Renderer,HUDView,Effects,Audio

// Renderer draws entities. Create fails with an InvalidStateError for an ID
// that already exists; MoveTo and Destroy fail with a NotFoundError for an ID
// that was never created or is already destroyed.
type Renderer interface {
	Create(id core.EntityID, kind core.Kind, bounds core.Rect) error
	MoveTo(id core.EntityID, x, y int) error
	Destroy(id core.EntityID) error
}

// HUDView displays the counters and the info line.
type HUDView interface {
	SetScore(score int)
	SetHealth(health, max int)
	ShowInfo(text string)
	ShowHealthIndicator(visible bool)
}

// Effects runs fire-and-forget cosmetic timers. Implementations must tolerate
// the target being gone when the timer fires.
type Effects interface {
	Flash(id core.EntityID, d time.Duration)
	Trace(bounds core.Rect, d time.Duration)
}

// Cue names a sound.
type Cue string

const (
	CueBlockHit  Cue = "block-hit"
	CuePaddleHit Cue = "paddle-hit"
	CueBallHit   Cue = "ball-hit"
	CueInGame    Cue = "in-game"
	CueAwait     Cue = "await"
)

// PlayOptions controls how a cue is played. Solo silences everything else first.
type PlayOptions struct {
	Volume float64
	Loop   bool
	Solo   bool
}

// Audio plays cues. Unknown cues are ignored.
type Audio interface {
	Play(cue Cue, opts PlayOptions)
}

// Rand is the random source of a session. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic PCG source for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type nopRenderer struct{}

func (nopRenderer) Create(core.EntityID, core.Kind, core.Rect) error { return nil }
func (nopRenderer) MoveTo(core.EntityID, int, int) error             { return nil }
func (nopRenderer) Destroy(core.EntityID) error                      { return nil }

type nopHUD struct{}

func (nopHUD) SetScore(int)             {}
func (nopHUD) SetHealth(int, int)       {}
func (nopHUD) ShowInfo(string)          {}
func (nopHUD) ShowHealthIndicator(bool) {}

type nopEffects struct{}

func (nopEffects) Flash(core.EntityID, time.Duration) {}
func (nopEffects) Trace(core.Rect, time.Duration)     {}

type nopAudio struct{}

func (nopAudio) Play(Cue, PlayOptions) {}
