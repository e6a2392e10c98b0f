package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jstraceski/BreakJoe/internal/config"
	"github.com/jstraceski/BreakJoe/internal/storage"
)

const (
	minWidthForStats = 80 // Narrower screens drop the stats panel
	statsWidth       = 24
	maxScores        = 100
)

// allDifficulties is the scoreboard tab listing every run.
const allDifficulties = "all"

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
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
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev difficulty"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next difficulty"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev difficulty"),
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

// ScoreboardModel shows the best runs per difficulty in a table, with a
// stats panel for the selected difficulty on wide screens.
type ScoreboardModel struct {
	tabs      []string // "all" first, then the presets
	tabCursor int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     map[string]*storage.Stats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard on the "all" tab. A nil store shows
// an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	tabs := []string{allDifficulties}
	for _, p := range config.Presets {
		tabs = append(tabs, string(p))
	}

	m := ScoreboardModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Mode", Width: 8},
		{Title: "Date", Width: 12},
	}

	free := m.width - 4
	if m.showStats() {
		free -= statsWidth + 4
	}
	if free > 50 {
		columns[4].Width = min(free-36, 18)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
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

// selected returns the store filter for the current tab.
func (m ScoreboardModel) selected() string {
	if d := m.tabs[m.tabCursor]; d != allDifficulties {
		return d
	}
	return ""
}

// reload queries the store for the current tab.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(m.selected(), maxScores); err == nil {
			m.scores = scores
		}
		if m.stats == nil {
			if stats, err := m.store.StatsByDifficulty(); err == nil {
				m.stats = stats
			}
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level+1),
			e.Difficulty,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
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
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Right):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.Left):
			m.tabCursor = (m.tabCursor + len(m.tabs) - 1) % len(m.tabs)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	board := boxStyle.Render(m.renderTable())
	if m.showStats() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", boxStyle.Width(statsWidth).Render(m.renderStats()))
	}
	b.WriteString(centerText(board, m.width))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.tabs))
	for i, name := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = dimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.tabs[m.tabCursor])
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return dimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

// renderStats summarizes the selected difficulty, or every difficulty
// combined on the "all" tab.
func (m ScoreboardModel) renderStats() string {
	var total storage.Stats
	var sum float64
	for name, st := range m.stats {
		if d := m.selected(); d != "" && d != name {
			continue
		}
		total.RunsCount += st.RunsCount
		total.HighScore = max(total.HighScore, st.HighScore)
		total.BestLevel = max(total.BestLevel, st.BestLevel)
		sum += st.AvgScore * float64(st.RunsCount)
		if st.LastPlayed.After(total.LastPlayed) {
			total.LastPlayed = st.LastPlayed
		}
	}

	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", statsWidth-4))
	b.WriteString("\n")
	if total.RunsCount == 0 {
		b.WriteString(dimStyle.Render("no runs"))
		return b.String()
	}
	fmt.Fprintf(&b, "Runs      %d\n", total.RunsCount)
	fmt.Fprintf(&b, "Best      %d\n", total.HighScore)
	fmt.Fprintf(&b, "Average   %.0f\n", sum/float64(total.RunsCount))
	fmt.Fprintf(&b, "Furthest  level %d\n", total.BestLevel+1)
	fmt.Fprintf(&b, "Last      %s", total.LastPlayed.Format("Jan 02"))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
