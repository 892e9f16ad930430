// Package tui provides the Bubble Tea spectator view for a running match.
// It consumes the core's read-only snapshot surface; nothing here mutates
// simulation state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a batch of simulation ticks.
type TickMsg time.Time

// frameRate is the render cadence. The simulation runs at the match's
// tick rate; each frame advances tickRate/frameRate simulation ticks.
const frameRate = 30

// tickCmd returns a Bubble Tea command that sends tick messages at the
// frame rate.
func tickCmd() tea.Cmd {
	interval := time.Second / frameRate
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
