package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jstraceski/BreakJoe/internal/core"
	"github.com/jstraceski/BreakJoe/internal/game"
	"github.com/jstraceski/BreakJoe/internal/storage"
)

// helpRows is the space reserved below the field for the key help.
const helpRows = 1

// Model is the Bubble Tea model for playing one BreakJoe session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	savedRun   string // Run whose score is already stored
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, difficulty string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpRows)),
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  session.State(),
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu from a paused or finished run
	phase := m.session.Phase()
	if msg.String() == "b" && (phase == core.PhasePaused || phase == core.PhaseWon) {
		m.saveScore()
		m.backToMenu = true
		return m, nil
	}

	// Map key to action; quit keys end the program
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The world has a fixed size,
// so the session keeps running and only the screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size, keeping a row for the help line
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Run game simulation
	result := m.session.Step(m.inputFrame)
	m.gameState = result.State

	// Save score once per finished run
	if m.gameState.GameOver {
		m.saveScore()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the current run if it scored and was not stored yet.
func (m *Model) saveScore() {
	runID := m.session.RunID()
	if m.store == nil || m.savedRun == runID || m.session.Score() <= 0 {
		return
	}
	m.savedRun = runID

	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:      runID,
		Score:      m.session.Score(),
		Level:      m.session.LevelIndex(),
		Difficulty: m.difficulty,
		Ticks:      m.session.Tick(),
	})
	if err != nil {
		m.logger.Warn("could not save score", "run", runID, "error", err)
		return
	}
	m.logger.Debug("score saved", "run", runID, "score", m.session.Score())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	// Create screenshots directory
	dir := filepath.Join(home, ".breakjoe", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	filename := fmt.Sprintf("breakjoe_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.session.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Session returns the session being played.
func (m Model) Session() *game.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single session in the current terminal.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, difficulty string, logger *log.Logger) error {
	model := NewModel(session, store, cfg, difficulty, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
