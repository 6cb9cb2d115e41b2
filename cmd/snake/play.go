package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/identity"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/tui"
)

var flagSeed int64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game session in the current terminal.

Controls:
  Arrows/WASD  - Steer the snake
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - End run, back to menu
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --config ./my-snake.yaml
  snake play --db ./leaderboard.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Load local player profile (identity + display name + run flag)
	profilePath, err := identity.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot resolve profile path: %v\n", err)
		os.Exit(1)
	}
	profile, err := identity.Load(profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}

	// A run flag left behind by a crash or kill: the unfinished run is
	// discarded, nothing is submitted for it.
	if cleared, clearErr := profile.ClearStaleRun(); clearErr != nil {
		logger.Warn("could not clear stale run flag", "error", clearErr)
	} else if cleared {
		logger.Info("previous session ended mid-run, discarding it")
	}

	// Open leaderboard storage
	store, err := leaderboard.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	model := tui.NewSessionModel(cfg, store, profile, profile.PlayerID, profile.DisplayName)
	if flagSeed != 0 {
		model = model.WithSeed(flagSeed)
	}

	// Seed the model with the terminal size so the first frame lays out
	// correctly; Bubble Tea sends resize updates after that.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		model = model.WithSize(w, h)
	}

	final, runErr := tui.Run(model)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	// Surface a failed submission after leaving the alternate screen.
	if submitErr := final.SubmitErr(); submitErr != nil {
		logger.Warn("last score submission failed", "error", submitErr)
	}
}
