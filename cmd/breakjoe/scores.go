package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jstraceski/BreakJoe/internal/config"
	"github.com/jstraceski/BreakJoe/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top high scores, for one difficulty or across all of them,
followed by per-difficulty statistics.

Examples:
  breakjoe scores
  breakjoe scores hard
  breakjoe scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores instead of showing them")
}

func runScores(_ *cobra.Command, args []string) error {
	difficulty := ""
	if len(args) == 1 {
		if _, ok := config.ParsePreset(args[0]); !ok {
			return fmt.Errorf("unknown difficulty %q", args[0])
		}
		difficulty = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(difficulty); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(difficulty, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakjoe play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-8s  %s\n", i+1, e.Score, e.Level+1, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.StatsByDifficulty()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	for _, name := range names {
		s := stats[name]
		fmt.Printf("%-8s runs %-4d best %-6d avg %-8.1f furthest level %d\n", name, s.RunsCount, s.HighScore, s.AvgScore, s.BestLevel+1)
	}
	return nil
}
