package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/identity"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// sessionPhase is the UI state of a session.
type sessionPhase int

const (
	phaseMenu sessionPhase = iota
	phaseScoreboard
	phasePlaying
	phaseGameOver
)

// leaderboardMsg carries a fresh top-N snapshot from the Watch subscription.
type leaderboardMsg []leaderboard.Entry

// scoreSubmittedMsg reports the outcome of a fire-and-forget submission.
type scoreSubmittedMsg struct {
	err error
}

// SessionModel manages the full session flow: menu (name entry) -> game ->
// game over -> menu, with the live leaderboard panel alongside.
type SessionModel struct {
	cfg     config.Config
	rules   game.Rules
	store   *leaderboard.Store // nil in degraded mode
	profile *identity.Profile  // nil for SSH sessions

	identityToken string
	nameInput     textinput.Model
	keyMapper     *KeyMapper

	seed       int64 // 0 = time-based per run
	phase      sessionPhase
	run        *game.Run
	board      *core.Screen
	paused     bool
	submitted  bool // Score submission fired for the current run
	finalScore int

	scoreboard *ScoreboardModel

	entries   []leaderboard.Entry
	lbLoaded  bool
	lbCh      <-chan []leaderboard.Entry
	lbCancel  context.CancelFunc
	submitErr error

	width    int
	height   int
	errMsg   string
	quitting bool
}

// NewSessionModel creates a session. The identity token and display name come
// from the local profile for terminal play, or from the SSH session for
// remote play (profile is nil then). A nil store enables the degraded mode:
// the game runs, the leaderboard does not.
func NewSessionModel(cfg config.Config, store *leaderboard.Store, profile *identity.Profile, identityToken, displayName string) SessionModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 24
	ti.Width = 26
	ti.SetValue(displayName)
	ti.Focus()

	m := SessionModel{
		cfg:           cfg,
		rules:         cfg.Rules(),
		store:         store,
		profile:       profile,
		identityToken: identityToken,
		nameInput:     ti,
		keyMapper:     NewKeyMapper(),
		phase:         phaseMenu,
	}

	w, h := boardScreenSize(game.Grid{BoardSize: m.rules.BoardSize, CellSize: m.rules.CellSize})
	m.board = core.NewScreen(w, h)

	// The subscription lives for the whole session. It is created here rather
	// than in Init because Init's value receiver cannot retain the cancel func.
	if store != nil {
		ctx, cancel := context.WithCancel(context.Background())
		m.lbCh = store.Watch(ctx, cfg.RefreshInterval(), cfg.Leaderboard.Limit)
		m.lbCancel = cancel
	}

	return m
}

// WithSize returns a copy of the model with the initial terminal size set,
// so the first frame lays out correctly before any resize message arrives.
func (m SessionModel) WithSize(width, height int) SessionModel {
	m.width = width
	m.height = height
	return m
}

// WithSeed returns a copy of the model with a fixed RNG seed for reproducible
// runs. Zero keeps the default time-based seeding.
func (m SessionModel) WithSeed(seed int64) SessionModel {
	m.seed = seed
	return m
}

// Init starts the input cursor blink and the leaderboard subscription pump.
func (m SessionModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.lbCh != nil {
		cmds = append(cmds, waitForLeaderboard(m.lbCh))
	}
	return tea.Batch(cmds...)
}

// waitForLeaderboard blocks on the subscription channel and forwards the next
// snapshot as a message. Re-issued after every delivery.
func waitForLeaderboard(ch <-chan []leaderboard.Entry) tea.Cmd {
	return func() tea.Msg {
		entries, ok := <-ch
		if !ok {
			return nil
		}
		return leaderboardMsg(entries)
	}
}

// submitScoreCmd fires the upsert in a command goroutine so the phase
// transition never waits on the store.
func submitScoreCmd(store *leaderboard.Store, identityToken, displayName string, score int) tea.Cmd {
	return func() tea.Msg {
		return scoreSubmittedMsg{err: store.SubmitScore(identityToken, displayName, score)}
	}
}

// Update handles messages and updates the model state.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.scoreboard != nil {
			m.scoreboard.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case leaderboardMsg:
		m.entries = msg
		m.lbLoaded = true
		return m, waitForLeaderboard(m.lbCh)

	case scoreSubmittedMsg:
		// Submission failures are dropped: the player never sees them and the
		// run outcome is already final. The error is kept for post-exit logs.
		if msg.err != nil {
			m.submitErr = msg.err
		}
		return m, nil

	case TickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseScoreboard && m.scoreboard != nil {
		cmd := m.scoreboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the run by one simulation step.
func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying || m.run == nil {
		// Stale tick from a run that already ended; do not re-arm.
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.run.Interval())
	}

	res := m.run.Step()
	if res.Collided {
		m.phase = phaseGameOver
		next, cmd := m.finishRun()
		return next, cmd
	}
	return m, tickCmd(res.Interval)
}

// handleKey routes keyboard input by phase.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseMenu:
		return m.handleMenuKey(msg)
	case phaseScoreboard:
		return m.handleScoreboardKey(msg)
	case phasePlaying:
		return m.handlePlayKey(msg)
	case phaseGameOver:
		return m.handleGameOverKey(msg)
	}
	return m, nil
}

func (m SessionModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.quit()

	case MenuActionStart:
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.errMsg = "Enter a display name to start"
			return m, nil
		}
		m.errMsg = ""
		m.persistName(name)
		return m.startRun()

	case MenuActionScoreboard:
		if m.store == nil {
			m.errMsg = "Leaderboard unavailable"
			return m, nil
		}
		sb := NewScoreboardModel(m.store, m.width, m.height)
		m.scoreboard = &sb
		m.phase = phaseScoreboard
		return m, nil
	}

	// Everything else is text entry.
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m SessionModel) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.scoreboard.Update(msg)
	if m.scoreboard.GoingBack() {
		m.scoreboard = nil
		m.phase = phaseMenu
		return m, nil
	}
	if m.scoreboard.IsQuitting() {
		return m.quit()
	}
	return m, cmd
}

func (m SessionModel) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dir, ok := m.keyMapper.MapKeyToDirection(msg); ok {
		// Applied immediately, takes effect on the next tick's step.
		m.run.SetDirection(dir)
		return m, nil
	}

	switch m.keyMapper.MapKeyToControl(msg) {
	case ControlQuit:
		next, cmd := m.finishRun()
		model, quitCmd := next.quit()
		return model, tea.Batch(cmd, quitCmd)

	case ControlPause:
		m.paused = !m.paused
		return m, nil

	case ControlEndRun:
		// Explicit end-game request: terminal for this run.
		next, cmd := m.finishRun()
		next.phase = phaseMenu
		next.nameInput.Focus()
		return next, cmd
	}

	return m, nil
}

func (m SessionModel) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToControl(msg) {
	case ControlQuit:
		return m.quit()
	case ControlRestart:
		return m.startRun()
	case ControlEndRun:
		m.phase = phaseMenu
		m.nameInput.Focus()
		return m, nil
	}
	if msg.String() == "enter" {
		return m.startRun()
	}
	return m, nil
}

// persistName saves the chosen display name to the local profile so the next
// session starts with it. SSH sessions have no profile and keep nothing.
func (m SessionModel) persistName(name string) {
	if m.profile == nil || m.profile.DisplayName == name {
		return
	}
	//nolint:errcheck // Best-effort persist, the session keeps the typed name
	m.profile.SetDisplayName(name)
}

// startRun transitions idle -> running: fresh run state, run flag set, first
// tick armed at the initial interval.
func (m SessionModel) startRun() (tea.Model, tea.Cmd) {
	seed := m.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.run = game.NewRun(m.rules, seed)
	interval := m.run.Start()
	m.paused = false
	m.submitted = false
	m.finalScore = 0
	m.phase = phasePlaying
	m.nameInput.Blur()

	if m.profile != nil {
		//nolint:errcheck // Best-effort flag write, the run starts regardless
		m.profile.BeginRun()
	}

	return m, tickCmd(interval)
}

// finishRun transitions running -> idle and returns the updated model. The
// run may already be idle (wall hit inside Step, or a repeated end request);
// the submission is gated so the final score is sent at most once per run.
func (m SessionModel) finishRun() (SessionModel, tea.Cmd) {
	m.run.End()
	m.finalScore = m.run.FinalScore()

	if m.profile != nil {
		//nolint:errcheck // Best-effort flag clear
		m.profile.EndRun()
	}

	if m.submitted || m.store == nil {
		return m, nil
	}
	m.submitted = true
	name := strings.TrimSpace(m.nameInput.Value())
	return m, submitScoreCmd(m.store, m.identityToken, name, m.finalScore)
}

// quit cancels the subscription and exits the program.
func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	if m.lbCancel != nil {
		m.lbCancel()
	}
	m.quitting = true
	return m, tea.Quit
}

// SubmitErr returns the last submission failure, if any, so the caller can
// log it after the program exits the alternate screen.
func (m SessionModel) SubmitErr() error {
	return m.submitErr
}

// View renders the current phase.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseScoreboard:
		return m.scoreboard.View()
	case phasePlaying, phaseGameOver:
		return m.viewGame()
	default:
		return m.viewMenu()
	}
}

// viewMenu renders the title, name entry, and the live leaderboard panel.
func (m SessionModel) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  S N A K E  "))
	b.WriteString("\n\n")
	b.WriteString("Display name:\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(dimStyle.Render("Enter: play  |  Tab: leaderboard  |  Esc: quit"))

	menu := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	panel := renderLeaderboardPanel(m.entries, m.lbLoaded, m.store != nil, m.cfg.Leaderboard.Limit)

	if m.width >= lipgloss.Width(menu)+lipgloss.Width(panel)+2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, menu, " ", panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, menu, panel)
}

// viewGame renders the status line, the board (with any overlay), and the
// leaderboard panel.
func (m SessionModel) viewGame() string {
	renderBoard(m.board, m.run)

	switch {
	case m.phase == phaseGameOver:
		renderOverlay(m.board, "Game Over", fmt.Sprintf("Score: %d", m.finalScore))
	case m.paused:
		renderOverlay(m.board, "Paused", "P: continue")
	}

	hud := hudLine(m.run, strings.TrimSpace(m.nameInput.Value()))
	board := lipgloss.JoinVertical(lipgloss.Left,
		hud,
		boardStyle.Render(m.board.String()),
	)
	if m.phase == phaseGameOver {
		hint := dimStyle.Render("R: restart  |  Esc: menu  |  Q: quit")
		board = lipgloss.JoinVertical(lipgloss.Left, board, hint)
	}
	panel := renderLeaderboardPanel(m.entries, m.lbLoaded, m.store != nil, m.cfg.Leaderboard.Limit)

	if m.width >= lipgloss.Width(board)+lipgloss.Width(panel)+2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, board, " ", panel)
	}
	return board
}

// Run starts a Bubble Tea program for the session and returns the final
// model, so callers can inspect deferred errors.
func Run(model SessionModel) (SessionModel, error) {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(SessionModel); ok {
		return m, nil
	}
	return model, nil
}
