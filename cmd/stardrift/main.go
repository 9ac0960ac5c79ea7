// stardrift is a terminal space shooter with RPG-style stat progression.
//
// Usage:
//
//	stardrift list              - List available games
//	stardrift play [game]       - Play a game (default: shooter)
//	stardrift menu              - Start menu to pick games interactively
//	stardrift serve             - Start SSH server for remote play
//	stardrift scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.stardrift/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/stardrift/stardrift/internal/games/shooter"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardrift",
	Short: "Stardrift - Terminal space shooter",
	Long: `Stardrift is a terminal space shooter where you pilot a ship through
enemy waves, levelling up from kills and switching between shooting
patterns.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  stardrift play
  stardrift play --difficulty hard
  stardrift menu
  stardrift serve --ssh :2222
  stardrift scores shooter`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stardrift/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
