package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	boardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderLeaderboardPanel renders the live top-N side panel. The panel shows
// whatever the subscription last delivered; until the first update arrives
// (or forever, if the subscription is broken) it stays in the loading state,
// and without a store at all it reports the degraded mode.
func renderLeaderboardPanel(entries []leaderboard.Entry, loaded, available bool, limit int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(fmt.Sprintf("TOP %d", limit)))
	b.WriteString("\n\n")

	switch {
	case !available:
		b.WriteString(dimStyle.Render("leaderboard unavailable"))
	case !loaded:
		b.WriteString(dimStyle.Render("loading..."))
	case len(entries) == 0:
		b.WriteString(dimStyle.Render("no scores yet"))
	default:
		for i, e := range entries {
			name := e.DisplayName
			if len(name) > 14 {
				name = name[:13] + "…"
			}
			b.WriteString(fmt.Sprintf("%2d. %-14s %5d", i+1, name, e.Score))
			b.WriteString("\n")
		}
	}

	return panelStyle.Render(b.String())
}
