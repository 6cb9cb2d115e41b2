package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard screen.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the full-screen leaderboard view.
type ScoreboardModel struct {
	store     *leaderboard.Store
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	loadErr   error
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the current top entries.
func NewScoreboardModel(store *leaderboard.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable builds the table with the scoreboard columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8
	if height < 4 {
		height = 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the top entries into the table.
func (m *ScoreboardModel) load() {
	entries, err := m.store.Top(leaderboard.DefaultLimit)
	if err != nil {
		m.loadErr = err
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.DisplayName,
			fmt.Sprintf("%d", e.Score),
			e.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// SetSize updates the screen dimensions.
func (m *ScoreboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.load()
}

// Update handles messages, mutating the model in place.
func (m *ScoreboardModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			m.goingBack = true
			return nil
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

// View renders the scoreboard.
func (m *ScoreboardModel) View() string {
	title := titleStyle.Render("  LEADERBOARD  ")

	var body string
	switch {
	case m.loadErr != nil:
		body = dimStyle.Render("loading...")
	case len(m.table.Rows()) == 0:
		body = dimStyle.Render("No scores recorded yet.")
	default:
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

// GoingBack reports whether the user asked to return to the menu.
func (m *ScoreboardModel) GoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m *ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
