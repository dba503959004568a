package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagConfig string
	flagPreset string
	flagGrid   int
	flagTarget int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a new game in the terminal.

Controls:
  Arrows/WASD/HJKL - Move tiles
  P/Esc            - Pause
  C/Enter          - Keep going after reaching the target
  R                - Restart
  Q/Ctrl+C         - Quit

Board presets:
  mini     - 3x3 board, target 256
  classic  - 4x4 board, target 2048
  big      - 5x5 board, target 4096
  huge     - 6x6 board, target 8192

Examples:
  t2048 play
  t2048 play --preset big
  t2048 play --grid 5 --target 4096
  t2048 play --config ./my-t2048.yaml
  t2048 play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: "+strings.Join(config.PresetNames(), ", "))
	playCmd.Flags().IntVar(&flagGrid, "grid", 0, "Board size (3-6, overrides config)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Winning tile value (overrides config)")
}

// loadSettings resolves the effective settings from config file, preset and
// explicit flags, in increasing order of precedence.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}

	if flagPreset != "" {
		config.ApplyPreset(&settings, config.BoardPreset(flagPreset))
	}
	if flagGrid != 0 {
		settings.Game.GridSize = flagGrid
	}
	if flagTarget != 0 {
		settings.Game.WinningValue = flagTarget
	}
	if flagDBPath != "" {
		settings.Storage.Path = flagDBPath
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open results storage
	store, err := storage.Open(settings.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(settings, store, flagSeed, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
