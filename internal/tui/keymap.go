package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToDirection translates a key message to a movement direction.
// Returns the direction and whether the key was a direction key at all.
func (km *KeyMapper) MapKeyToDirection(msg tea.KeyMsg) (game.Direction, bool) {
	switch msg.String() {
	case "left", "a", "h":
		return game.DirLeft, true
	case "up", "w", "k":
		return game.DirUp, true
	case "right", "d", "l":
		return game.DirRight, true
	case "down", "s", "j":
		return game.DirDown, true
	}
	return game.Direction{}, false
}

// ControlAction represents a non-movement action during a run.
type ControlAction int

const (
	ControlNone ControlAction = iota
	ControlPause
	ControlRestart
	ControlEndRun
	ControlQuit
)

// MapKeyToControl translates a key message to a run control action.
func (km *KeyMapper) MapKeyToControl(msg tea.KeyMsg) ControlAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case "p":
		return ControlPause
	case "r":
		return ControlRestart
	case "esc", "b":
		return ControlEndRun
	}
	return ControlNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionStart
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Plain letters are not
// mapped here because the menu hosts a focused text input.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "esc":
		return MenuActionQuit
	case "enter":
		return MenuActionStart
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
