package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-duel/internal/storage"
)

// maxHistoryRows caps how many rounds the browser loads.
const maxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the round-history browser.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is an interactive browser over persisted round results.
type HistoryModel struct {
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	wins     storage.WinCounts
	quitting bool
}

// NewHistoryModel loads recent rounds from the store into a table view.
// tickRate is the rate durations were recorded at; <= 0 selects 60.
func NewHistoryModel(store *storage.Store, tickRate int) (HistoryModel, error) {
	rounds, err := store.RecentRounds(maxHistoryRows)
	if err != nil {
		return HistoryModel{}, err
	}
	wins, err := store.Wins()
	if err != nil {
		return HistoryModel{}, err
	}

	columns := []table.Column{
		{Title: "When", Width: 17},
		{Title: "Round", Width: 6},
		{Title: "Winner", Width: 10},
		{Title: "Health left", Width: 12},
		{Title: "Duration", Width: 10},
	}

	rows := make([]table.Row, 0, len(rounds))
	for _, r := range rounds {
		rows = append(rows, table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", r.Round),
			r.Winner.String(),
			fmt.Sprintf("%.0f%%", r.WinnerHealth),
			formatTicks(r.DurationTicks, tickRate),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return HistoryModel{
		table: t,
		help:  help.New(),
		keys:  DefaultHistoryKeyMap(),
		wins:  wins,
	}, nil
}

// formatTicks renders a tick count as seconds at the given rate.
func formatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(tickRate))
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a win tally header.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	header := fmt.Sprintf("Round history   Player 1: %d wins   Player 2: %d wins\n\n",
		m.wins.Player1, m.wins.Player2)
	return header + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunHistory opens the interactive round-history browser.
func RunHistory(store *storage.Store, tickRate int) error {
	model, err := NewHistoryModel(store, tickRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
