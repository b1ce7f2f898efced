// Package config provides YAML-based configuration loading and difficulty
// presets for the robots simulation.
package config

// RobotsConfig contains all tunable rules of a robots session.
type RobotsConfig struct {
	Grid      GridConfig     `yaml:"grid"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Energy    EnergyConfig   `yaml:"energy"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Cannon    CannonConfig   `yaml:"cannon"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines how many pursuers a level starts with.
// Count = clamp(Min, Base + level*PerLevel, Max). Max 0 means a quarter of the grid.
type SpawnConfig struct {
	Base     int `yaml:"base"`
	PerLevel int `yaml:"per_level"`
	Min      int `yaml:"min"`
	Max      int `yaml:"max"`
	Buffer   int `yaml:"buffer"` // Chebyshev radius around the player kept free at spawn
}

// EnergyConfig defines the teleport energy economy.
type EnergyConfig struct {
	Enabled      bool    `yaml:"enabled"` // false: teleport is free and unlimited
	Max          float64 `yaml:"max"`
	Regen        float64 `yaml:"regen"` // Added every playing tick
	TeleportCost float64 `yaml:"teleport_cost"`
}

// ObstacleConfig selects the obstacle policy.
type ObstacleConfig struct {
	Enabled     bool `yaml:"enabled"`      // false: collisions leave no debris
	BlockPlayer bool `yaml:"block_player"` // true: the player cannot step onto debris
}

// CannonConfig places the optional rotating cannon.
type CannonConfig struct {
	Enabled bool `yaml:"enabled"`
	X       int  `yaml:"x"`
	Y       int  `yaml:"y"`
	Period  int  `yaml:"period"` // Playing ticks between rotations (each rotation fires)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values map to normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
