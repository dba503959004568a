package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Command represents a semantic game command, abstracted from physical key
// presses. The session layer only ever sees these.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
	CmdRestart
	CmdContinue
	CmdQuit
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Command {
	switch msg.String() {
	case "ctrl+c", "q":
		return CmdQuit
	case "up", "w", "k":
		return CmdUp
	case "down", "s", "j":
		return CmdDown
	case "left", "a", "h":
		return CmdLeft
	case "right", "d", "l":
		return CmdRight
	case "p", "esc":
		return CmdPause
	case "r":
		return CmdRestart
	case "c", "enter":
		return CmdContinue
	}
	return CmdNone
}

// Direction converts a directional command to an engine direction.
// The second return is false for non-directional commands.
func (c Command) Direction() (engine.Direction, bool) {
	switch c {
	case CmdUp:
		return engine.DirUp, true
	case CmdDown:
		return engine.DirDown, true
	case CmdLeft:
		return engine.DirLeft, true
	case CmdRight:
		return engine.DirRight, true
	}
	return 0, false
}
