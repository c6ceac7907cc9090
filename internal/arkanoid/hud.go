package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Info line texts.
const (
	TextGameOver = "Game over. Hit space to restart"
	TextContinue = "Hit space to continue"
	TextWin      = "You win. Press Space to restart"
	TextPaused   = "Paused. Hit space to continue"
)

// ScoreText formats a score the way the HUD displays it.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// HUD owns the health and score counters and mirrors every change to a HUDView.
type HUD struct {
	view      HUDView
	maxHealth int
	hs        HealthScore
	info      string
	indicator bool
}

// NewHUD creates a HUD at full health.
func NewHUD(view HUDView, maxHealth int) *HUD {
	if view == nil {
		view = nopHUD{}
	}
	h := &HUD{view: view, maxHealth: maxHealth}
	h.Reset()
	return h
}

func (h *HUD) Health() int          { return h.hs.Health }
func (h *HUD) MaxHealth() int       { return h.maxHealth }
func (h *HUD) Score() int           { return h.hs.Score }
func (h *HUD) Info() string         { return h.info }
func (h *HUD) IndicatorShown() bool { return h.indicator }

// Counters returns a copy of health and score.
func (h *HUD) Counters() HealthScore { return h.hs }

// SetHealth sets health, clamped to [0, max].
func (h *HUD) SetHealth(v int) {
	h.hs.Health = core.Clamp(v, 0, h.maxHealth)
	h.view.SetHealth(h.hs.Health, h.maxHealth)
}

// Damage lowers health by n, never below zero.
func (h *HUD) Damage(n int) {
	h.SetHealth(h.hs.Health - n)
}

// SetScore sets an absolute score. Score never decreases within a session;
// only Reset brings it back to zero.
func (h *HUD) SetScore(v int) error {
	if v < h.hs.Score {
		return core.InvalidStatef("HUD.SetScore", "score would drop from %d to %d", h.hs.Score, v)
	}
	h.hs.Score = v
	h.view.SetScore(v)
	return nil
}

// ShowInfo sets the info line. An empty string clears it.
func (h *HUD) ShowInfo(text string) {
	h.info = text
	h.view.ShowInfo(text)
}

// ShowHealthIndicator toggles the health meter.
func (h *HUD) ShowHealthIndicator(visible bool) {
	h.indicator = visible
	h.view.ShowHealthIndicator(visible)
}

// Reset restores full health, zero score, no info text and a visible meter.
func (h *HUD) Reset() {
	h.hs = HealthScore{}
	h.view.SetScore(0)
	h.SetHealth(h.maxHealth)
	h.ShowInfo("")
	h.ShowHealthIndicator(true)
}
