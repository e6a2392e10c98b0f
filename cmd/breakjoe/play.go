package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jstraceski/BreakJoe/internal/core"
	"github.com/jstraceski/BreakJoe/internal/platform/tui"
	"github.com/jstraceski/BreakJoe/internal/sound"
	"github.com/jstraceski/BreakJoe/internal/storage"
)

var (
	flagStartLevel int
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play BreakJoe",
	Long: `Start the title menu and play the level campaign.

Controls:
  A/Left     - Push paddle left
  D/Right    - Push paddle right
  Space/Up   - Launch the ball
  P/Esc      - Pause
  B          - Back to menu (paused or after winning)
  R          - Restart (after winning)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 5 lives, wide paddle
  normal - 3 lives
  hard   - 2 lives, narrow paddle, faster ball
  fixed  - Ball speed limit never grows with score

Logs are written to ~/.breakjoe/breakjoe.log while playing.

Examples:
  breakjoe play
  breakjoe play --difficulty easy --level 2
  breakjoe play --lang french --no-sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Starting level (1-based)")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	levels, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file
	logger, closeLog := fileLogger()
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var player sound.Player = sound.Nop{}
	if cfg.Sound.Enabled && !flagNoSound {
		mixer := sound.NewMixer(cfg.Sound.Volume)
		if err := mixer.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer mixer.Close()
			player = mixer
		}
	}

	deps := tui.Deps{
		Config: cfg,
		Levels: levels,
		Store:  store,
		Sound:  player,
		Logger: logger,
	}
	sel := tui.Selection{
		Difficulty: preset(),
		Language:   flagLang,
		StartLevel: max(0, min(flagStartLevel-1, len(levels)-1)),
	}

	if err := tui.RunApp(deps, rt, sel); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// fileLogger opens ~/.breakjoe/breakjoe.log. On failure logs are discarded.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".breakjoe")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "breakjoe.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}
