package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	want := DefaultSettings()
	if cfg.Game != want.Game {
		t.Errorf("embedded defaults = %+v, want %+v", cfg.Game, want.Game)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "defaults ok", mutate: func(*Settings) {}},
		{name: "grid too small", mutate: func(s *Settings) { s.Game.GridSize = 2 }, wantErr: true},
		{name: "grid too large", mutate: func(s *Settings) { s.Game.GridSize = 7 }, wantErr: true},
		{name: "winning value not a power of two", mutate: func(s *Settings) { s.Game.WinningValue = 1000 }, wantErr: true},
		{name: "winning value too small", mutate: func(s *Settings) { s.Game.WinningValue = 4 }, wantErr: true},
		{name: "negative spawn chance", mutate: func(s *Settings) { s.Game.SpawnFourChance = -0.1 }, wantErr: true},
		{name: "spawn chance above one", mutate: func(s *Settings) { s.Game.SpawnFourChance = 1.5 }, wantErr: true},
		{name: "empty storage path", mutate: func(s *Settings) { s.Storage.Path = "" }, wantErr: true},
		{name: "6x6 targeting 8192", mutate: func(s *Settings) {
			s.Game.GridSize = 6
			s.Game.WinningValue = 8192
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSettings()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte("game:\n  grid_size: 5\n  winning_value: 4096\n  spawn_four_chance: 0.15\nstorage:\n  path: /tmp/test.db\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Game.GridSize != 5 || cfg.Game.WinningValue != 4096 {
		t.Errorf("loaded settings = %+v, want 5x5 / 4096", cfg.Game)
	}
}

func TestLoadPartialConfigDefaultsStoragePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	// Only a game section; the storage path must fall back to the default.
	content := []byte("game:\n  grid_size: 5\n  winning_value: 4096\n  spawn_four_chance: 0.1\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Game.GridSize != 5 {
		t.Errorf("loaded grid size = %d, want 5", cfg.Game.GridSize)
	}
	if want := DefaultSettings().Storage.Path; cfg.Storage.Path != want {
		t.Errorf("storage path = %q, want default %q", cfg.Storage.Path, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("partial config should validate after defaulting: %v", err)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("an explicit missing config path should be an error")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	content := []byte("game:\n  grid_size: 9\n  winning_value: 2048\n  spawn_four_chance: 0.1\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("out-of-range grid size should fail validation")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset BoardPreset
		size   int
		target int
	}{
		{PresetMini, 3, 256},
		{PresetClassic, 4, 2048},
		{PresetBig, 5, 4096},
		{PresetHuge, 6, 8192},
	}

	for _, tt := range tests {
		cfg := DefaultSettings()
		ApplyPreset(&cfg, tt.preset)

		if cfg.Game.GridSize != tt.size || cfg.Game.WinningValue != tt.target {
			t.Errorf("preset %s: got %dx%d/%d, want %dx%d/%d",
				tt.preset, cfg.Game.GridSize, cfg.Game.GridSize, cfg.Game.WinningValue,
				tt.size, tt.size, tt.target)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced invalid settings: %v", tt.preset, err)
		}
	}
}

func TestApplyUnknownPresetNoChange(t *testing.T) {
	cfg := DefaultSettings()
	ApplyPreset(&cfg, BoardPreset("colossal"))

	if cfg != DefaultSettings() {
		t.Error("unknown preset should leave settings untouched")
	}
}
