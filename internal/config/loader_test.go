package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML RobotsConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultRobotsConfig() {
		t.Errorf("embedded defaults differ from DefaultRobotsConfig():\nyaml: %+v\ncode: %+v", fromYAML, DefaultRobotsConfig())
	}
}

func TestLoadRobotsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robots.yaml")
	data := []byte("grid:\n  width: 12\n  height: 10\nobstacles:\n  block_player: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRobots(path)
	if err != nil {
		t.Fatalf("LoadRobots() failed: %v", err)
	}
	if cfg.Grid.Width != 12 || cfg.Grid.Height != 10 {
		t.Errorf("grid = %dx%d, expected 12x10", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Obstacles.BlockPlayer {
		t.Error("block_player should be overridden to false")
	}
	// Fields absent from the file keep their defaults
	if cfg.Spawn.Base != 11 || !cfg.Obstacles.Enabled {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadRobotsMissingCustomPath(t *testing.T) {
	_, err := LoadRobots(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadRobotsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRobots(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSpawnCount(t *testing.T) {
	s := SpawnConfig{Base: 11, PerLevel: 5, Min: 1}

	tests := []struct {
		name     string
		level    int
		w, h     int
		expected int
	}{
		{"first level", 1, 36, 36, 16},
		{"fifth level", 5, 36, 36, 36},
		{"capped by quarter of grid", 100, 36, 36, 324},
		{"small grid capacity", 1, 6, 6, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Count(tc.level, tc.w, tc.h); got != tc.expected {
				t.Errorf("Count(%d) = %d, expected %d", tc.level, got, tc.expected)
			}
		})
	}

	low := SpawnConfig{Base: 0, PerLevel: 0, Min: 3}
	if got := low.Count(1, 36, 36); got != 3 {
		t.Errorf("Min should raise the count to 3, got %d", got)
	}

	capped := SpawnConfig{Base: 50, Max: 20}
	if got := capped.Count(1, 36, 36); got != 20 {
		t.Errorf("explicit Max should cap the count at 20, got %d", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRobotsConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Spawn.PerLevel != 0 {
		t.Error("fixed preset should disable per-level growth")
	}

	cfg = DefaultRobotsConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Energy.Regen != 1.0 || cfg.Spawn.Base != 6 {
		t.Errorf("easy preset not applied: %+v", cfg)
	}

	if ParsePreset("bogus") != DifficultyNormal {
		t.Error("unknown preset should map to normal")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed should parse as fixed")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	if got := EnvInt64(EnvSeed, 0); got != 42 {
		t.Errorf("EnvInt64 = %d, expected 42", got)
	}
	t.Setenv(EnvSeed, "not-a-number")
	if got := EnvInt64(EnvSeed, 7); got != 7 {
		t.Errorf("malformed value should fall back, got %d", got)
	}
	t.Setenv(EnvDBPath, "")
	if got := EnvString(EnvDBPath, "fallback.db"); got != "fallback.db" {
		t.Errorf("EnvString = %q, expected fallback", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ROBOTS_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if got := os.Getenv(EnvLogLevel); got != "debug" {
		t.Errorf("ROBOTS_LOG_LEVEL = %q, expected debug", got)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should not be an error: %v", err)
	}
}

func TestEncodeDecodeRules(t *testing.T) {
	cfg := DefaultRobotsConfig()
	ApplyPreset(&cfg, DifficultyHard)
	cfg.Grid = GridConfig{Width: 17, Height: 9}
	cfg.Energy.Regen = 0.35

	doc, err := EncodeRules(cfg)
	if err != nil {
		t.Fatalf("EncodeRules() failed: %v", err)
	}
	got, err := DecodeRules(doc)
	if err != nil {
		t.Fatalf("DecodeRules() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("rules changed on the way through:\ngot:  %+v\nwant: %+v", got, cfg)
	}

	if _, err := DecodeRules("grid: [unterminated"); err == nil {
		t.Error("expected decode error")
	}
}
