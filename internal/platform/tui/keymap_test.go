package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func TestKeyMapperFighterBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		player core.PlayerID
		action core.Action
	}{
		{"a", core.Player1, core.ActionLeft},
		{"d", core.Player1, core.ActionRight},
		{"w", core.Player1, core.ActionJump},
		{"f", core.Player1, core.ActionAttack},
		{"s", core.Player1, core.ActionBlock},
		{"left", core.Player2, core.ActionLeft},
		{"right", core.Player2, core.ActionRight},
		{"up", core.Player2, core.ActionJump},
		{"k", core.Player2, core.ActionAttack},
		{"down", core.Player2, core.ActionBlock},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			player, action, control := km.MapKey(keyMsg(tc.key))
			if player != tc.player || action != tc.action {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.key, player, action, tc.player, tc.action)
			}
			if control != ControlNone {
				t.Errorf("MapKey(%q) control = %v, expected none", tc.key, control)
			}
		})
	}
}

func TestKeyMapperControlBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key     string
		control ControlAction
	}{
		{"q", ControlQuit},
		{"ctrl+c", ControlQuit},
		{"p", ControlPause},
		{"esc", ControlPause},
		{"r", ControlReset},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			player, action, control := km.MapKey(keyMsg(tc.key))
			if control != tc.control {
				t.Errorf("MapKey(%q) control = %v, expected %v", tc.key, control, tc.control)
			}
			if player != core.NoPlayer || action != core.ActionNone {
				t.Errorf("MapKey(%q) should not map to a fighter action", tc.key)
			}
		})
	}
}

func TestKeyMapperUnboundKey(t *testing.T) {
	km := NewKeyMapper()

	player, action, control := km.MapKey(keyMsg("z"))
	if player != core.NoPlayer || action != core.ActionNone || control != ControlNone {
		t.Errorf("unbound key mapped to (%v, %v, %v)", player, action, control)
	}
}
