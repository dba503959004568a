package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultSettings returns the hardcoded defaults: the classic 4x4 game
// targeting 2048, with the database under the user's home directory.
func DefaultSettings() Settings {
	return Settings{
		Game: GameSettings{
			GridSize:        4,
			WinningValue:    2048,
			SpawnFourChance: 0.10,
		},
		Storage: StorageSettings{
			Path: "~/.t2048/t2048.db",
		},
	}
}
