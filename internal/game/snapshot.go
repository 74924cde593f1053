package game

import "github.com/vovakirdan/tui-duel/internal/core"

// FighterView is the read-only slice of fighter state a renderer or UI
// needs: position, dimensions, facing, color, flags, and meter percentages.
type FighterView struct {
	Name    string
	Color   core.Color
	X, Y    float64 // X = left edge, Y = foot baseline
	W, H    float64
	Facing  float64
	Health  float64 // 0..100
	Stamina float64 // 0..100

	Attacking bool
	Blocking  bool
	OnGround  bool
	Downed    bool
}

// MatchSnapshot is the complete renderable state of a match at one tick.
type MatchSnapshot struct {
	Tick      uint64
	Round     int
	RoundOver bool
	Winner    core.PlayerID
	Status    string
	ArenaW    float64
	ArenaH    float64
	GroundY   float64
	P1        FighterView
	P2        FighterView
}

func (f *Fighter) view() FighterView {
	return FighterView{
		Name:      f.Name,
		Color:     f.Color,
		X:         f.X,
		Y:         f.Y,
		W:         f.tun.FighterW,
		H:         f.tun.FighterH,
		Facing:    f.Facing,
		Health:    f.HealthPercent(),
		Stamina:   f.StaminaPercent(),
		Attacking: f.Attacking,
		Blocking:  f.Blocking,
		OnGround:  f.OnGround,
		Downed:    f.Downed,
	}
}

// Snapshot returns the current match state for rendering and persistence.
func (m *Match) Snapshot() MatchSnapshot {
	return MatchSnapshot{
		Tick:      m.tick,
		Round:     m.Round,
		RoundOver: m.RoundOver,
		Winner:    m.Winner,
		Status:    m.Status(),
		ArenaW:    m.tun.ArenaW,
		ArenaH:    m.tun.ArenaH,
		GroundY:   m.tun.GroundY,
		P1:        m.P1.view(),
		P2:        m.P2.view(),
	}
}
