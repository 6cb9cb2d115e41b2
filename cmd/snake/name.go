package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/identity"
)

var nameCmd = &cobra.Command{
	Use:   "name [new name]",
	Short: "Show or set your display name",
	Long: `Without arguments, print the current display name. With an argument,
set it. The name is what other players see on the leaderboard; your
identity (and your best score) stays the same when you rename.

Examples:
  snake name
  snake name Gopher`,
	Args: cobra.MaximumNArgs(1),
	Run:  runName,
}

func runName(_ *cobra.Command, args []string) {
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

	if len(args) == 0 {
		if profile.DisplayName == "" {
			fmt.Println("No display name set. Run 'snake name <name>' to set one.")
			return
		}
		fmt.Println(profile.DisplayName)
		return
	}

	name := strings.TrimSpace(args[0])
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: display name cannot be empty")
		os.Exit(1)
	}

	if err := profile.SetDisplayName(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Display name set to %q\n", name)
}
