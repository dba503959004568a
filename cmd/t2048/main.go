// t2048 is a terminal sliding-tile puzzle game.
//
// Usage:
//
//	t2048 play                - Play the game
//	t2048 scores              - Show recorded results
//	t2048 achievements        - Show achievements
//	t2048 serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.t2048/t2048.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is a terminal rendition of the 2048 sliding-tile puzzle.
Slide tiles with the arrow keys; equal tiles merge and double. Build
the winning tile before the board deadlocks.

Available commands:
  play          - Play the game
  scores        - View recorded results
  achievements  - View achievements
  serve         - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --preset big
  t2048 play --grid 5 --target 4096
  t2048 scores --grid 4
  t2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(serveCmd)
}
