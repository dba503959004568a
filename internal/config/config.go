// Package config provides YAML-based settings loading and board presets.
package config

import "fmt"

// Settings holds everything tunable about the game. GridSize and
// WinningValue are fixed for a session's lifetime once it starts.
type Settings struct {
	Game    GameSettings    `yaml:"game"`
	Storage StorageSettings `yaml:"storage"`
}

// GameSettings defines the board parameters.
type GameSettings struct {
	GridSize        int     `yaml:"grid_size"`         // 3..6
	WinningValue    int     `yaml:"winning_value"`     // power of two, default 2048
	SpawnFourChance float64 `yaml:"spawn_four_chance"` // probability of spawning 4 instead of 2
}

// StorageSettings defines where persistent state lives.
type StorageSettings struct {
	Path string `yaml:"path"` // sqlite database path
}

// Validate checks the settings for values the engine cannot honor.
func (s Settings) Validate() error {
	if s.Game.GridSize < 3 || s.Game.GridSize > 6 {
		return fmt.Errorf("config: grid_size %d out of range [3,6]", s.Game.GridSize)
	}
	if s.Game.WinningValue < 8 || !isPowerOfTwo(s.Game.WinningValue) {
		return fmt.Errorf("config: winning_value %d must be a power of two >= 8", s.Game.WinningValue)
	}
	if s.Game.SpawnFourChance < 0 || s.Game.SpawnFourChance > 1 {
		return fmt.Errorf("config: spawn_four_chance %.2f out of range [0,1]", s.Game.SpawnFourChance)
	}
	if s.Storage.Path == "" {
		return fmt.Errorf("config: storage path must not be empty")
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// BoardPreset names a ready-made board configuration.
type BoardPreset string

const (
	PresetMini    BoardPreset = "mini"    // 3x3, quick games
	PresetClassic BoardPreset = "classic" // 4x4, the standard game
	PresetBig     BoardPreset = "big"     // 5x5
	PresetHuge    BoardPreset = "huge"    // 6x6
)

// ApplyPreset modifies the settings for a named preset. Unknown names are
// left untouched so a typo falls back to the configured defaults.
func ApplyPreset(s *Settings, preset BoardPreset) {
	switch preset {
	case PresetMini:
		s.Game.GridSize = 3
		s.Game.WinningValue = 256
	case PresetClassic:
		s.Game.GridSize = 4
		s.Game.WinningValue = 2048
	case PresetBig:
		s.Game.GridSize = 5
		s.Game.WinningValue = 4096
	case PresetHuge:
		s.Game.GridSize = 6
		s.Game.WinningValue = 8192
	}
}

// PresetNames returns the known preset names for help text.
func PresetNames() []string {
	return []string{
		string(PresetMini),
		string(PresetClassic),
		string(PresetBig),
		string(PresetHuge),
	}
}
