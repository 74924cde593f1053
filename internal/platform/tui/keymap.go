package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// ControlAction is a platform-level command, as opposed to fighter input.
type ControlAction int

const (
	ControlNone ControlAction = iota
	ControlQuit
	ControlPause
	ControlReset
)

// KeyMapper translates Bubble Tea key messages into per-player fighter
// actions and platform commands. Both players share one keyboard:
//
//	Player 1:  A / D move, W jump, F attack, S block
//	Player 2:  arrow keys move, Up jump, K attack, Down block
//	Global:    R reset round, P pause, Q / Ctrl+C quit
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// KeyMapper is stateless; it centralizes bindings and keeps them testable.
type KeyMapper struct{}

// MapKey translates a key message. Exactly one of the returns is
// meaningful: a fighter action with its player, or a control action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, control ControlAction) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.NoPlayer, core.ActionNone, ControlQuit
	case "p", "esc":
		return core.NoPlayer, core.ActionNone, ControlPause
	case "r":
		return core.NoPlayer, core.ActionNone, ControlReset

	case "a":
		return core.Player1, core.ActionLeft, ControlNone
	case "d":
		return core.Player1, core.ActionRight, ControlNone
	case "w":
		return core.Player1, core.ActionJump, ControlNone
	case "f":
		return core.Player1, core.ActionAttack, ControlNone
	case "s":
		return core.Player1, core.ActionBlock, ControlNone

	case "left":
		return core.Player2, core.ActionLeft, ControlNone
	case "right":
		return core.Player2, core.ActionRight, ControlNone
	case "up":
		return core.Player2, core.ActionJump, ControlNone
	case "k":
		return core.Player2, core.ActionAttack, ControlNone
	case "down":
		return core.Player2, core.ActionBlock, ControlNone
	}

	return core.NoPlayer, core.ActionNone, ControlNone
}

// HelpLine returns the one-line control summary shown under the arena.
func (km *KeyMapper) HelpLine() string {
	return "P1: A/D move W jump F attack S block   P2: ◄/► move ▲ jump K attack ▼ block   R reset  P pause  Q quit"
}
