package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresGrid  int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded results",
	Long: `Display the top results for a grid size.

Examples:
  t2048 scores
  t2048 scores --grid 5
  t2048 scores --interactive
  t2048 scores --grid 4 --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresGrid, "grid", 4, "Grid size to show results for")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse results in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded results for the grid size")
}

// openStore opens the results database using the configured path,
// overridden by the global --db flag.
func openStore() (*storage.Store, error) {
	settings, err := config.Load("")
	if err != nil {
		return nil, err
	}
	path := settings.Storage.Path
	if flagDBPath != "" {
		path = flagDBPath
	}
	return storage.Open(path)
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if clearErr := store.ClearResults(flagScoresGrid); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %dx%d\n", flagScoresGrid, flagScoresGrid)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if runErr := tui.RunScoreboard(store, flagScoresGrid, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(flagScoresGrid, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top Results - %dx%d\n", flagScoresGrid, flagScoresGrid)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to record the first result!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Max", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "---", "-----", "----", "----")

	for i, r := range results {
		elapsed := time.Duration(r.DurationSecs) * time.Second
		fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %-7s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, elapsed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Aggregate stats
	fmt.Println()
	stats, err := store.GetGridStats(flagScoresGrid)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Best: %d  Avg: %.0f  Best tile: %d\n",
			stats.GamesCount, stats.BestScore, stats.AvgScore, stats.BestTile)
	}
}
