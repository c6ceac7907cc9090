package web

import (
	"sync/atomic"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
)

// cueQueue is the Audio collaborator of a web session. Play runs on the loop
// goroutine and must never block it, so cues that find the queue full are
// dropped and counted.
type cueQueue struct {
	ch      chan CueMessage
	dropped atomic.Int64
}

var _ arkanoid.Audio = (*cueQueue)(nil)

func newCueQueue(size int) *cueQueue {
	return &cueQueue{ch: make(chan CueMessage, size)}
}

func (q *cueQueue) Play(cue arkanoid.Cue, opts arkanoid.PlayOptions) {
	msg := CueMessage{Name: cue, Volume: opts.Volume, Loop: opts.Loop, Solo: opts.Solo}
	select {
	case q.ch <- msg:
	default:
		q.dropped.Add(1)
	}
}

// Dropped returns how many cues were lost to a full queue.
func (q *cueQueue) Dropped() int64 {
	return q.dropped.Load()
}
