package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stardrift/stardrift/internal/registry"
	"github.com/stardrift/stardrift/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 best runs for the specified game.

Examples:
  stardrift scores shooter`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'stardrift list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get best runs
	runs, err := store.BestRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'stardrift play %s' to set the first record!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-5s  %-6s  %s\n",
		"Rank", "Score", "Level", "Wave", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-5s  %-6s  %s\n",
		"----", "-----", "-----", "----", "-----", "----", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60)
		fmt.Printf("  %-4d  %-10d  %-5d  %-5d  %-5d  %-6s  %s\n",
			i+1, r.Score, r.Level, r.Wave, r.Kills, timeStr, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil && highScore > 0 {
		fmt.Printf("Best: %d\n", highScore)
	}
}
