package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/progress"
)

var flagAchInteractive bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements",
	Long: `List all achievements with their unlock status.

Examples:
  t2048 achievements
  t2048 achievements --interactive`,
	Args: cobra.NoArgs,
	Run:  runAchievements,
}

func init() {
	achievementsCmd.Flags().BoolVar(&flagAchInteractive, "interactive", false, "Browse achievements in an interactive table")
}

func runAchievements(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagAchInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if runErr := tui.RunAchievements(store, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	unlocks, err := store.Achievements()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving achievements: %v\n", err)
		os.Exit(1)
	}

	unlockedAt := make(map[string]string, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.ID] = u.UnlockedAt.Format("2006-01-02")
	}

	fmt.Printf("Achievements (%d/%d unlocked)\n", len(unlockedAt), len(progress.Achievements))
	fmt.Println()

	for _, a := range progress.Achievements {
		mark := "[ ]"
		when := ""
		if date, ok := unlockedAt[a.ID]; ok {
			mark = "[*]"
			when = "  unlocked " + date
		}
		fmt.Printf("  %s %-18s %s%s\n", mark, a.Title, a.Description, when)
	}
}
