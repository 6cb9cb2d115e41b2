package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/identity"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 scores. Each player appears at most once, with
their best score.

Examples:
  snake scores
  snake scores --db ./leaderboard.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := leaderboard.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Top(cfg.Leaderboard.Limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "----", "----", "-----", "----")

	for i, entry := range entries {
		dateStr := entry.UpdatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-8d  %s\n", i+1, entry.DisplayName, entry.Score, dateStr)
	}

	// Show the current player's own best, if recorded
	profilePath, err := identity.DefaultPath()
	if err != nil {
		return
	}
	profile, err := identity.Load(profilePath)
	if err != nil {
		return
	}
	own, err := store.EntryFor(profile.PlayerID)
	if err == nil && own != nil {
		fmt.Println()
		fmt.Printf("Your best: %d\n", own.Score)
	}
}
