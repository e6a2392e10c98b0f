package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jstraceski/BreakJoe/internal/config"
	"github.com/jstraceski/BreakJoe/internal/core"
	"github.com/jstraceski/BreakJoe/internal/lang"
	"github.com/jstraceski/BreakJoe/internal/level"
)

// Menu rows, in display order.
const (
	menuPlay = iota
	menuDifficulty
	menuLanguage
	menuLevel
	menuScores
	menuQuit
	menuCount
)

// Selection holds the options chosen in the menu.
type Selection struct {
	Difficulty config.DifficultyPreset
	Language   string
	StartLevel int // Zero-based
}

// MenuModel is the Bubble Tea model for the title menu. Difficulty,
// language and starting level cycle with left/right.
type MenuModel struct {
	levels         []*level.Level
	languages      []string
	selection      Selection
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model with sel as the initial choice.
func NewMenuModel(levels []*level.Level, sel Selection, cfg core.RuntimeConfig) MenuModel {
	if sel.Difficulty == "" {
		sel.Difficulty = config.DifficultyNormal
	}
	if sel.Language == "" {
		sel.Language = lang.Default
	}
	return MenuModel{
		levels:    levels,
		languages: lang.Names(),
		selection: sel,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case menuPlay:
			m.started = true
			return m, tea.Quit
		case menuScores:
			m.openScoreboard = true
			return m, tea.Quit
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.cycle(1)
		}
	}

	return m, nil
}

// cycle moves the option under the cursor by step, wrapping around.
func (m *MenuModel) cycle(step int) {
	switch m.cursor {
	case menuDifficulty:
		i := indexOf(config.Presets, m.selection.Difficulty)
		m.selection.Difficulty = config.Presets[wrap(i+step, len(config.Presets))]
	case menuLanguage:
		if len(m.languages) == 0 {
			return
		}
		i := indexOf(m.languages, m.selection.Language)
		m.selection.Language = m.languages[wrap(i+step, len(m.languages))]
	case menuLevel:
		if len(m.levels) == 0 {
			return
		}
		m.selection.StartLevel = wrap(m.selection.StartLevel+step, len(m.levels))
	}
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K J O E"), m.width))
	b.WriteString("\n\n")

	levelName := "-"
	if m.selection.StartLevel < len(m.levels) {
		levelName = fmt.Sprintf("%d. %s", m.selection.StartLevel+1, m.levels[m.selection.StartLevel].Name)
	}

	rows := [menuCount]string{
		menuPlay:       "Play",
		menuDifficulty: fmt.Sprintf("Difficulty: < %s >", m.selection.Difficulty),
		menuLanguage:   fmt.Sprintf("Language:   < %s >", lang.DisplayName(m.selection.Language)),
		menuLevel:      fmt.Sprintf("Level:      < %s >", levelName),
		menuScores:     "High Scores",
		menuQuit:       "Quit",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selection returns the options chosen so far.
func (m MenuModel) Selection() Selection {
	return m.selection
}

// Started returns true if the user chose Play.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
