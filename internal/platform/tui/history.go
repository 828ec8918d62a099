package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/block-blast/internal/storage"
)

// maxHistory is the number of games loaded into the table.
const maxHistory = 100

// HistoryView selects the table ordering.
type HistoryView int

const (
	ViewRecent HistoryView = iota
	ViewTop
)

func (v HistoryView) String() string {
	if v == ViewTop {
		return "Top"
	}
	return "Recent"
}

// HistorySource is the read side of the game store.
type HistorySource interface {
	RecentGames(gameID string, limit int) ([]storage.GameEntry, error)
	TopGames(gameID string, limit int) ([]storage.GameEntry, error)
	Stats(gameID string) (*storage.GameStats, error)
}

var _ HistorySource = (*storage.Store)(nil)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Select, k.Quit},
	}
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
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/top"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded games.
type HistoryModel struct {
	source   HistorySource
	gameID   string
	view     HistoryView
	entries  []storage.GameEntry
	stats    *storage.GameStats
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	selected string // Record ID chosen with Enter
	done     bool
}

// NewHistoryModel creates a history browser for one game ID.
func NewHistoryModel(source HistorySource, gameID string, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		gameID: gameID,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Lines", Width: 6},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 12},
		{Title: "ID", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads entries and stats for the current view.
func (m *HistoryModel) load() {
	m.err = nil
	if m.source == nil {
		m.entries = nil
		m.updateTableRows()
		return
	}

	var err error
	if m.view == ViewTop {
		m.entries, err = m.source.TopGames(m.gameID, maxHistory)
	} else {
		m.entries, err = m.source.RecentGames(m.gameID, maxHistory)
	}
	if err != nil {
		m.entries = nil
		m.err = err
	}

	if stats, err := m.source.Stats(m.gameID); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded entries.
func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(HistoryRows(m.entries))
	m.table.GotoTop()
}

// HistoryRows formats entries as table rows. Shared with the plain printer.
func HistoryRows(entries []storage.GameEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Moves),
			fmt.Sprintf("%d", e.Lines),
			fmt.Sprintf("%d", e.Seed),
			e.CreatedAt.Format("Jan 02 15:04"),
			ShortID(e.ID),
		}
	}
	return rows
}

// ShortID returns the first eight characters of a record ID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.view == ViewTop {
				m.view = ViewRecent
			} else {
				m.view = ViewTop
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.entries) {
				m.selected = m.entries[i].ID
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("GAME HISTORY - %s", m.view), m.width)))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		b.WriteString(centerText(FormatStats(m.stats), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not load history:\n" + m.err.Error())
	}
	if len(m.entries) == 0 {
		return emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")
	}
	return m.table.View()
}

// Selected returns the record ID chosen with Enter, or "".
func (m HistoryModel) Selected() string {
	return m.selected
}

// FormatStats renders aggregated stats on one line.
func FormatStats(s *storage.GameStats) string {
	return fmt.Sprintf("Games: %d  Best: %d  Avg: %.1f  Lines: %d",
		s.GamesCount, s.HighScore, s.AvgScore, s.TotalLines)
}

// centerText pads text so it is centered in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the history browser.
// Returns the record ID the user chose to replay, or "" if they quit.
func RunHistory(source HistorySource, gameID string, width, height int) (string, error) {
	model := NewHistoryModel(source, gameID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
