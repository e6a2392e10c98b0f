package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jstraceski/BreakJoe/internal/platform/tui"
	"github.com/jstraceski/BreakJoe/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the BreakJoe SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the title menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.breakjoe/host_key

Examples:
  breakjoe serve                           # Listen on :23234 with auto-generated key
  breakjoe serve --ssh :2222               # Listen on port 2222
  breakjoe serve --host-key ./my_host_key  # Use specific host key
  breakjoe serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	levels, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = flagFPS
	srvCfg.Selection = tui.Selection{
		Difficulty: preset(),
		Language:   flagLang,
	}

	server, err := tui.NewSSHServer(srvCfg, tui.Deps{
		Config: cfg,
		Levels: levels,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting BreakJoe SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
