package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
)

// synthCue builds the streamer for a cue, or nil for a cue it does not know.
func synthCue(cue arkanoid.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case arkanoid.CueBlockHit:
		// Two-step chirp, B5 then E6
		return melody([]note{
			{987.77, 40 * time.Millisecond},
			{1318.51, 60 * time.Millisecond},
		}, WaveSquare, rate)
	case arkanoid.CuePaddleHit:
		return tone(note{440, 80 * time.Millisecond}, WaveSine, rate)
	case arkanoid.CueBallHit:
		return tone(note{110, 300 * time.Millisecond}, WaveSaw, rate)
	case arkanoid.CueInGame:
		return melody([]note{
			{261.63, 150 * time.Millisecond},
			{329.63, 150 * time.Millisecond},
			{392.00, 150 * time.Millisecond},
			{329.63, 150 * time.Millisecond},
		}, WaveSine, rate)
	case arkanoid.CueAwait:
		return melody([]note{
			{329.63, 400 * time.Millisecond},
			{261.63, 400 * time.Millisecond},
		}, WaveSine, rate)
	default:
		return nil
	}
}
