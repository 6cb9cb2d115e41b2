// Package tui provides the Bubble Tea integration: the session model, input
// mapping, board rendering, the leaderboard screens, and SSH remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires one tick after the given
// interval. The command is re-armed on every tick with the run's current
// interval, so a speed-up simply changes the next arming: the previous timer
// is always replaced, never duplicated, and ticks stay strictly sequential.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
