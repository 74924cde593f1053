package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/game"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

// Model is the Bubble Tea model driving a duel: it maps the shared
// keyboard onto the two fighters' input snapshots, ticks the simulation at
// the configured rate, and persists finished rounds.
type Model struct {
	match  *game.Match
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	held1 *core.Held
	held2 *core.Held

	paused     bool
	quitting   bool
	roundSaved bool   // Whether the current round's outcome was persisted
	roundStart uint64 // Tick the current round began at
}

// NewModel creates a Bubble Tea model for the given match.
// store may be nil; the duel then runs without persistence.
func NewModel(match *game.Match, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		match:  match,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		held1:  core.NewHeld(core.DefaultHoldTicks),
		held2:  core.NewHeld(core.DefaultHoldTicks),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey routes keyboard input to platform commands or fighter holds.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	player, action, control := m.keys.MapKey(msg)

	switch control {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit
	case ControlPause:
		m.paused = !m.paused
		return m, nil
	case ControlReset:
		m.resetRound()
		return m, nil
	}

	now := m.match.TickCount()
	switch player {
	case core.Player1:
		m.held1.Press(action, now)
	case core.Player2:
		m.held2.Press(action, now)
	}

	return m, nil
}

// resetRound starts the next round and clears stale input.
func (m *Model) resetRound() {
	m.match.Reset()
	m.held1.Clear()
	m.held2.Clear()
	m.roundSaved = false
	m.roundStart = m.match.TickCount()
	m.paused = false
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	now := m.match.TickCount()
	m.match.Tick(game.Inputs{
		P1: m.held1.Snapshot(now),
		P2: m.held2.Snapshot(now),
	})

	if m.match.RoundOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound persists the finished round, best-effort.
func (m *Model) saveRound() {
	if m.store == nil {
		return
	}

	winner := m.match.Fighter(m.match.Winner)
	if winner == nil {
		return
	}

	//nolint:errcheck // Best-effort save, the duel continues regardless
	m.store.SaveRound(storage.RoundResult{
		Round:         m.match.Round,
		Winner:        m.match.Winner,
		WinnerHealth:  winner.HealthPercent(),
		DurationTicks: int(m.match.TickCount() - m.roundStart),
	})
}

// View renders the current match state to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)
	m.screen.DrawTextCentered(m.screen.Height()-1, m.keys.HelpLine())
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED - press P to resume")
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local duel.
func Run(match *game.Match, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(match, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
