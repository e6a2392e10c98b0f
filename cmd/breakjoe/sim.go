package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jstraceski/BreakJoe/internal/config"
	"github.com/jstraceski/BreakJoe/internal/core"
	"github.com/jstraceski/BreakJoe/internal/game"
	"github.com/jstraceski/BreakJoe/internal/lang"
	"github.com/jstraceski/BreakJoe/internal/level"
	"github.com/jstraceski/BreakJoe/internal/telemetry"
)

var (
	flagSimTicks      int
	flagSimTrace      string
	flagSimAllPresets bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot simulations",
	Long: `Plays the campaign without a terminal, steering the paddle with the
built-in autopilot. Prints a summary of the run and a hash of the final
state; identical flags always give the same hash.

With --trace every tick is written as a CSV row. With --all-presets each
difficulty runs concurrently and the trace file name gets the preset
appended (run.csv becomes run-easy.csv, run-normal.csv, ...).

Examples:
  breakjoe sim
  breakjoe sim --ticks 20000 --trace run.csv
  breakjoe sim --all-presets`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimTrace, "trace", "", "Write a per-tick CSV trace to this file")
	simCmd.Flags().BoolVar(&flagSimAllPresets, "all-presets", false, "Run every difficulty preset concurrently")
}

type simResult struct {
	preset  config.DifficultyPreset
	summary telemetry.Summary
	hash    uint64
	won     bool
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	logger := newLogger(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	levels, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	presets := []config.DifficultyPreset{preset()}
	if flagSimAllPresets {
		presets = config.Presets
	}

	results := make([]simResult, len(presets))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, p := range presets {
		g.Go(func() error {
			tracePath := flagSimTrace
			if tracePath != "" && flagSimAllPresets {
				tracePath = presetTracePath(tracePath, p)
			}
			res, err := simulate(ctx, cfg, levels, p, tracePath, logger.With("preset", p))
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		status := ""
		if r.won {
			status = " (won)"
		}
		fmt.Printf("%-8s %s%s\n", r.preset, r.summary, status)
		fmt.Printf("%-8s hash=%016x\n", "", r.hash)
	}
	return nil
}

// simulate runs one autopilot session for flagSimTicks ticks.
func simulate(ctx context.Context, base config.Config, levels []*level.Level, p config.DifficultyPreset, tracePath string, logger *log.Logger) (simResult, error) {
	cfg := base
	config.ApplyPreset(&cfg, p)

	session, err := game.New(cfg, levels,
		game.WithLanguage(lang.MustLoad(cfg.Gameplay.Language)),
		game.WithLogger(logger),
		game.WithTickRate(flagFPS),
	)
	if err != nil {
		return simResult{}, err
	}

	var trace *telemetry.Writer
	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			return simResult{}, fmt.Errorf("creating trace: %w", err)
		}
		defer f.Close()
		trace = telemetry.NewWriter(f)
	}

	var collector telemetry.Collector
	logger.Debug("simulation started", "run", session.RunID(), "ticks", flagSimTicks)

	for i := 0; i < flagSimTicks; i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return simResult{}, err
			}
		}

		res := session.Step(game.Autopilot(session))
		rec := telemetry.Record(session)
		collector.Add(rec)
		if err := trace.Write(rec); err != nil {
			return simResult{}, err
		}
		if res.State.Phase == core.PhaseWon {
			break
		}
	}

	snap := session.Snapshot()
	logger.Debug("simulation finished", "run", session.RunID(), "score", session.Score(), "level", session.LevelIndex()+1)

	return simResult{
		preset:  p,
		summary: collector.Summary(),
		hash:    snap.Hash(),
		won:     session.Phase() == core.PhaseWon,
	}, nil
}

// presetTracePath inserts the preset before the extension: run.csv -> run-hard.csv.
func presetTracePath(path string, p config.DifficultyPreset) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + string(p) + ext
}
