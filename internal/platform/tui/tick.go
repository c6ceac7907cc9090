// Package tui provides the Bubble Tea front-end for arkanoid, both for the
// local terminal and for SSH sessions served through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a redraw. The simulation ticks on its own
// goroutine; frames only sample it. Game tags the model that scheduled it so
// a frame left over from a finished game is dropped.
type FrameMsg struct {
	Time time.Time
	Game string
}

// frameCmd returns a Bubble Tea command that sends a frame message after period.
func frameCmd(game string, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Game: game}
	})
}
