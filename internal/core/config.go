package core

import "time"

// RuntimeConfig contains what a front-end needs to host one game session.
type RuntimeConfig struct {
	TickPeriod time.Duration // Simulation tick period (0 = host floor)
	FrameRate  int           // Redraws per second for polling front-ends
	KeyHold    time.Duration // Auto-release delay for terminals without key-up events
	Seed       uint64        // RNG seed, 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickPeriod: 5 * time.Millisecond,
		FrameRate:  30,
		KeyHold:    150 * time.Millisecond,
		Seed:       0,
	}
}

// FramePeriod converts FrameRate into a redraw interval.
func (c RuntimeConfig) FramePeriod() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FrameRate)
}
