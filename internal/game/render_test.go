package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/core"
)

func TestRenderDrawsHUDAndFighters(t *testing.T) {
	m := NewMatch(DefaultTuning())
	screen := core.NewScreen(80, 24)

	m.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Player 1") || !strings.Contains(out, "Player 2") {
		t.Error("HUD should show both player names")
	}
	if !strings.Contains(out, "Round 1") {
		t.Error("HUD should show the round label")
	}
	if !strings.ContainsRune(out, BodyChar) {
		t.Error("both fighters should be drawn")
	}
	if !strings.ContainsRune(out, GroundChar) {
		t.Error("ground line should be drawn")
	}
}

func TestRenderRoundOverBanner(t *testing.T) {
	m := NewMatch(DefaultTuning())
	m.P1.X = 400
	m.P2.X = 400 + m.tun.FighterW + 10
	m.P2.Health = 5
	m.Tick(Inputs{P1: core.Snapshot{Attack: true}})

	screen := core.NewScreen(80, 24)
	m.Render(screen)

	if !strings.Contains(screen.String(), "Player 1 Win!") {
		t.Error("round-over banner should show the winner")
	}
}

func TestRenderTinyScreenDoesNotPanic(t *testing.T) {
	m := NewMatch(DefaultTuning())

	for _, size := range [][2]int{{1, 1}, {5, 3}, {9, 10}, {200, 60}} {
		screen := core.NewScreen(size[0], size[1])
		m.Render(screen) // must not panic or write out of bounds
	}
}
