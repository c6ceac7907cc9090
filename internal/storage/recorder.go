package storage

import (
	"sync"
	"time"
)

// GameStatus is what a front-end samples from a running game.
type GameStatus struct {
	Score   int
	Health  int
	Stopped bool // The loop is not ticking
	Won     bool
}

// finished reports whether the game is over: stopped with no health left.
// A win zeroes health too, so both outcomes qualify.
func (g GameStatus) finished() bool {
	return g.Stopped && g.Health == 0
}

// Recorder saves every finished game of one session exactly once.
// It is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	store     *Store
	sessionID string
	player    string
	started   time.Time
	saved     bool
}

// NewRecorder creates a recorder for a session. A nil store records nothing.
func NewRecorder(store *Store, sessionID, player string, now time.Time) *Recorder {
	return &Recorder{
		store:     store,
		sessionID: sessionID,
		player:    player,
		started:   now,
	}
}

// Observe feeds one sample. It returns true when this sample finished a game
// and its result was saved. Health above zero after a save means a restart
// and arms the recorder again.
func (r *Recorder) Observe(now time.Time, g GameStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !g.finished() {
		if r.saved && g.Health > 0 {
			r.saved = false
			r.started = now
		}
		return false, nil
	}
	if r.saved {
		return false, nil
	}
	r.saved = true
	if r.store == nil {
		return false, nil
	}

	_, err := r.store.SaveResult(Result{
		SessionID: r.sessionID,
		Player:    r.player,
		Score:     g.Score,
		Won:       g.Won,
		Duration:  now.Sub(r.started),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
