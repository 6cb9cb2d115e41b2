package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up", "down", "left", "right", "enter", "esc", "tab", "ctrl+c":
		types := map[string]tea.KeyType{
			"up":     tea.KeyUp,
			"down":   tea.KeyDown,
			"left":   tea.KeyLeft,
			"right":  tea.KeyRight,
			"enter":  tea.KeyEnter,
			"esc":    tea.KeyEsc,
			"tab":    tea.KeyTab,
			"ctrl+c": tea.KeyCtrlC,
		}
		return tea.KeyMsg{Type: types[s]}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyToDirection(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want game.Direction
	}{
		{"left", game.DirLeft},
		{"a", game.DirLeft},
		{"h", game.DirLeft},
		{"up", game.DirUp},
		{"w", game.DirUp},
		{"k", game.DirUp},
		{"right", game.DirRight},
		{"d", game.DirRight},
		{"l", game.DirRight},
		{"down", game.DirDown},
		{"s", game.DirDown},
		{"j", game.DirDown},
	}

	for _, tt := range tests {
		got, ok := km.MapKeyToDirection(keyMsg(tt.key))
		if !ok {
			t.Errorf("key %q: expected a direction", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("key %q: got %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMapKeyToDirectionNonDirection(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"p", "q", "x", "enter", "esc"} {
		if _, ok := km.MapKeyToDirection(keyMsg(key)); ok {
			t.Errorf("key %q should not map to a direction", key)
		}
	}
}

func TestMapKeyToControl(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want ControlAction
	}{
		{"q", ControlQuit},
		{"ctrl+c", ControlQuit},
		{"p", ControlPause},
		{"r", ControlRestart},
		{"esc", ControlEndRun},
		{"b", ControlEndRun},
		{"x", ControlNone},
		{"up", ControlNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToControl(keyMsg(tt.key)); got != tt.want {
			t.Errorf("key %q: got %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"enter", MenuActionStart},
		{"tab", MenuActionScoreboard},
		{"esc", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		// Plain letters go to the name input, not to actions.
		{"q", MenuActionNone},
		{"p", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("key %q: got %v, want %v", tt.key, got, tt.want)
		}
	}
}
