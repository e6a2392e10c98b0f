// breakjoe is a ball-and-paddle brick breaker for the terminal.
//
// Usage:
//
//	breakjoe play            - Play with the title menu
//	breakjoe levels          - List the level campaign
//	breakjoe scores [mode]   - Show high scores
//	breakjoe sim             - Run headless autopilot simulations
//	breakjoe serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.breakjoe/scores.db)
//	--config <path>       - Custom config YAML
//	--levels <dir>        - Load levels from a directory instead of the built-ins
//	--difficulty <preset> - easy, normal, hard, fixed
//	--lang <name>         - HUD language
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jstraceski/BreakJoe/internal/config"
	"github.com/jstraceski/BreakJoe/internal/lang"
	"github.com/jstraceski/BreakJoe/internal/level"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLang       string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakjoe",
	Short: "BreakJoe - break bricks in your terminal",
	Long: `BreakJoe is a ball-and-paddle brick breaker. Steer the paddle, launch
the ball and clear every brick to advance through the campaign.

Available commands:
  play     - Play with the title menu
  levels   - Show the level campaign
  scores   - View high scores
  sim      - Run headless autopilot simulations
  serve    - Start SSH server for remote play

Examples:
  breakjoe play
  breakjoe play --difficulty hard --lang french
  breakjoe sim --ticks 20000 --trace run.csv
  breakjoe serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		if _, err := lang.Load(flagLang); err != nil {
			return fmt.Errorf("%w; available: %v", err, lang.Names())
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakjoe/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", string(config.DifficultyNormal), "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", lang.Default, "HUD language")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the root logger writing to w at --log-level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakjoe",
	})
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// loadConfig reads the config from --config or the default search path.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLang != "" {
		cfg.Gameplay.Language = flagLang
	}
	return cfg, nil
}

// loadLevels reads the campaign from --levels or the built-ins and checks
// that every level fits the world of cfg.
func loadLevels(cfg config.Config) ([]*level.Level, error) {
	var (
		levels []*level.Level
		err    error
	)
	if flagLevelsDir != "" {
		levels, err = level.LoadDir(flagLevelsDir)
	} else {
		levels, err = level.Builtin()
	}
	if err != nil {
		return nil, err
	}
	if err := level.ValidateAll(levels, level.GeometryFor(cfg)); err != nil {
		return nil, err
	}
	return levels, nil
}

// preset returns the validated --difficulty flag.
func preset() config.DifficultyPreset {
	p, _ := config.ParsePreset(flagDifficulty)
	return p
}
