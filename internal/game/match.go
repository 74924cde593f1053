package game

import (
	"fmt"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Inputs carries both players' held-key snapshots for one tick.
type Inputs struct {
	P1 core.Snapshot
	P2 core.Snapshot
}

// Match owns the two fighters and the round lifecycle. One Tick per
// rendered frame: player 1 updates against player 2, then player 2 against
// player 1, in that fixed order. A lethally hit fighter still evaluates
// its own update that tick before dropping, so a trade can leave both at
// zero on the same tick; in that case the fighter damaged first loses,
// which under the fixed order is always player 2.
type Match struct {
	P1 *Fighter
	P2 *Fighter

	Round     int
	RoundOver bool
	Winner    core.PlayerID

	tun  Tuning
	tick uint64
}

// NewMatch creates a match with both fighters at their spawns, round 1.
func NewMatch(tun Tuning) *Match {
	m := &Match{Round: 1, tun: tun}
	m.P1 = NewFighter("Player 1", core.ColorRed, tun.SpawnInset, FaceRight, &m.tun)
	m.P2 = NewFighter("Player 2", core.ColorBlue, tun.ArenaW-tun.SpawnInset-tun.FighterW, FaceLeft, &m.tun)
	return m
}

// Tuning returns the match's active tuning values.
func (m *Match) Tuning() Tuning {
	return m.tun
}

// Tick advances the simulation by one step. Safe to keep calling after the
// round ends: the downed fighter is frozen and the outcome is latched.
func (m *Match) Tick(in Inputs) {
	m.P1.Update(m.P2, in.P1)
	m.P2.Update(m.P1, in.P2)
	m.checkRoundOver()
	m.tick++
}

// checkRoundOver downs any fighter whose health ran out after its own
// update already ran this tick, then latches the outcome. When both reach
// zero on the same tick the fighter damaged first loses; the fixed update
// order means that is always player 2.
func (m *Match) checkRoundOver() {
	if m.P1.Health <= 0 && !m.P1.Downed {
		m.P1.down()
	}
	if m.P2.Health <= 0 && !m.P2.Downed {
		m.P2.down()
	}

	if m.RoundOver {
		return
	}
	switch {
	case m.P1.Health <= 0 && m.P2.Health <= 0:
		m.RoundOver = true
		m.Winner = core.Player1
	case m.P1.Health <= 0:
		m.RoundOver = true
		m.Winner = core.Player2
	case m.P2.Health <= 0:
		m.RoundOver = true
		m.Winner = core.Player1
	}
}

// Reset starts the next round: both fighters back to spawn with full
// meters, outcome cleared, round counter incremented.
func (m *Match) Reset() {
	m.P1.Reset()
	m.P2.Reset()
	m.RoundOver = false
	m.Winner = core.NoPlayer
	m.Round++
}

// Tick count since match start, monotonic across rounds.
func (m *Match) TickCount() uint64 {
	return m.tick
}

// Status returns the round label shown to players.
func (m *Match) Status() string {
	if m.RoundOver {
		switch m.Winner {
		case core.Player1:
			return "Player 1 Win!"
		case core.Player2:
			return "Player 2 Win!"
		}
	}
	return fmt.Sprintf("Round %d", m.Round)
}

// Fighter returns the fighter for the given player, nil for other IDs.
func (m *Match) Fighter(id core.PlayerID) *Fighter {
	switch id {
	case core.Player1:
		return m.P1
	case core.Player2:
		return m.P2
	default:
		return nil
	}
}
