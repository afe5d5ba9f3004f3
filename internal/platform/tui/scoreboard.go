package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-snake/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreSource is what the scoreboard reads. *storage.Store implements it.
type ScoreSource interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	RecentScores(limit int) ([]storage.ScoreEntry, error)
	Stats() (*storage.Stats, error)
}

// ScoreOrder selects which runs the scoreboard lists.
type ScoreOrder int

const (
	OrderTop ScoreOrder = iota
	OrderRecent
)

func (o ScoreOrder) String() string {
	if o == OrderRecent {
		return "Recent runs"
	}
	return "Top scores"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the score history screen.
type ScoreboardModel struct {
	source      ScoreSource
	order       ScoreOrder
	scores      []storage.ScoreEntry
	stats       *storage.Stats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool // Whether to show the stats sidebar
}

// NewScoreboardModel creates a new scoreboard model. source may be nil.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source:      source,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Walls", Width: 6},
		{Title: "Speed", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("22")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("46")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores reloads the list for the current order and the stats.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	var err error
	if m.order == OrderRecent {
		m.scores, err = m.source.RecentScores(maxScores)
	} else {
		m.scores, err = m.source.TopScores(maxScores)
	}
	if err != nil {
		m.loadErr = err
		m.scores = nil
	}
	if stats, err := m.source.Stats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// ScoreRows formats entries as table rows, ranked in the given order.
func ScoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, s := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%.0f%%", s.WallDensity*100),
			fmt.Sprintf("%dms", s.MoveInterval.Milliseconds()),
			fmt.Sprintf("%d", s.Seed),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(ScoreRows(m.scores))
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.order = (m.order + 1) % 2
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		MarginBottom(1)

	title := fmt.Sprintf("MATRIX SNAKE - %s", m.order)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("22")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the aggregate stats panel.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("22")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	if m.stats == nil {
		sb.WriteString("no data")
	} else {
		fmt.Fprintf(&sb, "Runs:  %d\n", m.stats.Runs)
		fmt.Fprintf(&sb, "Best:  %d\n", m.stats.HighScore)
		fmt.Fprintf(&sb, "Avg:   %.1f\n", m.stats.AvgScore)
		fmt.Fprintf(&sb, "Total: %d\n", m.stats.TotalScore)
		if !m.stats.LastPlayed.IsZero() {
			fmt.Fprintf(&sb, "Last:  %s", m.stats.LastPlayed.Format("Jan 02 15:04"))
		}
	}
	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or an empty/error message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not load scores:\n%v", m.loadErr))
	}
	if len(m.scores) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsQuitting returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// RunScoreboard runs the scoreboard screen until the user leaves it.
func RunScoreboard(source ScoreSource, width, height int) error {
	model := NewScoreboardModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
