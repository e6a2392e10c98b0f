package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level campaign",
	Long: `Shows the levels in play order with their brick count and the score
for clearing them.

Use --levels <dir> to list a custom campaign of .txt and .yaml files.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	levels, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	fmt.Println("Levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-16s  %6s  %9s\n", "#", maxIDLen, "ID", "Name", "Bricks", "Max score")
	fmt.Printf("  %-3s  %-*s  %-16s  %6s  %9s\n", "-", maxIDLen, "--", "----", "------", "---------")

	total := 0
	for i, l := range levels {
		fmt.Printf("  %-3d  %-*s  %-16s  %6d  %9d\n", i+1, maxIDLen, l.ID, l.Name, l.BrickCount(), l.MaxScore())
		total += l.MaxScore()
	}

	fmt.Println()
	fmt.Printf("Campaign max score: %d\n", total)
	fmt.Println("Run 'breakjoe play --level <n>' to start at a level.")
	return nil
}
