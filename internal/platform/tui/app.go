package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jstraceski/BreakJoe/internal/config"
	"github.com/jstraceski/BreakJoe/internal/core"
	"github.com/jstraceski/BreakJoe/internal/game"
	"github.com/jstraceski/BreakJoe/internal/lang"
	"github.com/jstraceski/BreakJoe/internal/level"
	"github.com/jstraceski/BreakJoe/internal/sound"
	"github.com/jstraceski/BreakJoe/internal/storage"
)

// Deps are the shared resources every app instance plays with.
type Deps struct {
	Config config.Config // Base config before the difficulty preset
	Levels []*level.Level
	Store  *storage.Store // May be nil
	Sound  sound.Player   // May be nil
	Logger *log.Logger    // May be nil
}

// NewSession builds a session for a menu selection.
func (d Deps) NewSession(sel Selection, tickRate int) (*game.Session, error) {
	cfg := d.Config
	config.ApplyPreset(&cfg, sel.Difficulty)
	cfg.Gameplay.Language = sel.Language

	return game.New(cfg, d.Levels,
		game.WithLanguage(lang.MustLoad(sel.Language)),
		game.WithSound(d.Sound),
		game.WithLogger(d.Logger),
		game.WithTickRate(tickRate),
		game.WithStartLevel(sel.StartLevel),
	)
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages the full flow: menu -> game -> menu, plus the scoreboard.
// This is the top-level model for local play and SSH sessions.
type AppModel struct {
	deps     Deps
	config   core.RuntimeConfig
	logger   *log.Logger
	screen   appScreen
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewAppModel creates the app starting at the menu with sel preselected.
func NewAppModel(deps Deps, cfg core.RuntimeConfig, sel Selection) AppModel {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return AppModel{
		deps:   deps,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(deps.Levels, sel, cfg),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Started():
		sel := m.menu.Selection()
		session, err := m.deps.NewSession(sel, m.config.TickRate)
		if err != nil {
			m.logger.Error("cannot start session", "error", err)
			m.menu = NewMenuModel(m.deps.Levels, sel, m.config)
			return m, nil
		}
		m.game = NewModel(session, m.deps.Store, m.config, string(sel.Difficulty), m.logger)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Check if user left the run (back to menu)
	if m.game.BackToMenu() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoreModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = scoreModel
	}

	// Check if user quit entirely
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

func (m *AppModel) backToMenu() {
	m.menu = NewMenuModel(m.deps.Levels, m.menu.Selection(), m.config)
	m.screen = screenMenu
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the menu-driven app in the current terminal.
func RunApp(deps Deps, cfg core.RuntimeConfig, sel Selection) error {
	p := tea.NewProgram(
		NewAppModel(deps, cfg, sel),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
