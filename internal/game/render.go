package game

import "github.com/vovakirdan/tui-duel/internal/core"

// Visual characters for rendering.
const (
	BodyChar   = '█'
	GuardChar  = '▒'
	StrikeChar = '═'
	GroundChar = '─'
	BarFull    = '█'
	BarEmpty   = '░'
)

// HUD rows reserved above the arena.
const hudRows = 3

// Render draws the current match state into the screen buffer. The logical
// arena is scaled to whatever cell grid is available; the simulation itself
// never changes with screen size.
func (m *Match) Render(dst *core.Screen) {
	dst.Clear()

	snap := m.Snapshot()

	m.renderHUD(dst, snap)
	m.renderArena(dst, snap)

	if snap.RoundOver {
		dst.DrawTextCentered(dst.Height()/2, snap.Status)
		dst.DrawTextCentered(dst.Height()/2+1, "Press R for next round")
	}
}

// renderHUD draws both fighters' meters and the round label.
func (m *Match) renderHUD(dst *core.Screen, snap MatchSnapshot) {
	w := dst.Width()
	barW := core.Clamp(w/3, 10, 30)

	// Player 1, left-aligned.
	dst.DrawTextColored(1, 0, snap.P1.Name, snap.P1.Color)
	drawBar(dst, 1, 1, barW, snap.P1.Health, core.ColorGreen)
	drawBar(dst, 1, 2, barW, snap.P1.Stamina, core.ColorYellow)

	// Player 2, right-aligned.
	dst.DrawTextColored(w-1-len(snap.P2.Name), 0, snap.P2.Name, snap.P2.Color)
	drawBar(dst, w-1-barW, 1, barW, snap.P2.Health, core.ColorGreen)
	drawBar(dst, w-1-barW, 2, barW, snap.P2.Stamina, core.ColorYellow)

	dst.DrawTextCentered(0, snap.Status)
}

// drawBar renders a 0..100 percentage as a fixed-width meter.
func drawBar(dst *core.Screen, x, y, width int, percent float64, c core.Color) {
	filled := int(core.ClampF(percent, 0, 100) / 100 * float64(width))
	dst.DrawHLine(x, y, filled, BarFull, c)
	dst.DrawHLine(x+filled, y, width-filled, BarEmpty, core.ColorGray)
}

// renderArena draws the ground line and both fighters scaled to the
// available cell grid below the HUD.
func (m *Match) renderArena(dst *core.Screen, snap MatchSnapshot) {
	areaH := dst.Height() - hudRows
	if areaH < 4 || dst.Width() < 10 {
		return
	}

	sx := float64(dst.Width()) / snap.ArenaW
	sy := float64(areaH) / snap.ArenaH

	groundRow := hudRows + int(snap.GroundY*sy)
	groundRow = core.Clamp(groundRow, hudRows+1, dst.Height()-1)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	m.renderFighter(dst, snap.P1, sx, sy, groundRow)
	m.renderFighter(dst, snap.P2, sx, sy, groundRow)
}

func (m *Match) renderFighter(dst *core.Screen, f FighterView, sx, sy float64, groundRow int) {
	bodyW := core.Max(1, int(f.W*sx))
	bodyH := core.Max(2, int(f.H*sy))

	x := int(f.X * sx)
	// Feet sit on the scaled baseline; on the ground that is the ground row.
	feet := hudRows + int(f.Y*sy)
	if f.OnGround {
		feet = groundRow
	}
	top := feet - bodyH

	if f.Downed {
		// A downed fighter lies flat at the baseline.
		dst.DrawHLine(x, feet-1, core.Max(bodyW, bodyH/2), BodyChar, f.Color)
		return
	}

	dst.FillRect(core.NewRect(x, top, bodyW, bodyH), BodyChar, f.Color)

	midY := top + bodyH/2
	if f.Attacking {
		reachW := core.Max(1, int(m.tun.Reach*sx))
		if f.Facing >= 0 {
			dst.DrawHLine(x+bodyW, midY, reachW, StrikeChar, f.Color)
		} else {
			dst.DrawHLine(x-reachW, midY, reachW, StrikeChar, f.Color)
		}
	}
	if f.Blocking {
		guardX := x - 1
		if f.Facing >= 0 {
			guardX = x + bodyW
		}
		for y := top; y < feet; y++ {
			dst.SetCell(guardX, y, GuardChar, core.ColorWhite)
		}
	}
}
