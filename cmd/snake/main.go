// snake is a terminal snake game with a shared top-10 leaderboard.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake scores             - Show the leaderboard
//	snake name [new name]    - Show or set your display name
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--db <path>      - Set database path (default from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - classic snake in your terminal",
	Long: `Snake is a terminal game: steer the snake, eat food, climb the
shared leaderboard. Your best score is kept per player, so only a new
personal best moves you up.

Available commands:
  play     - Play in the current terminal
  scores   - View the leaderboard
  name     - Show or set your display name
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --config ./my-snake.yaml
  snake scores
  snake name Gopher
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to leaderboard database (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config, applying the --db override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}
