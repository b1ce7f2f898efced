package config

import (
	_ "embed"
)

//go:embed defaults/robots.yaml
var defaultRobotsYAML []byte

// DefaultRobotsConfig returns the built-in rules, matching defaults/robots.yaml.
func DefaultRobotsConfig() RobotsConfig {
	return RobotsConfig{
		Grid: GridConfig{
			Width:  36,
			Height: 36,
		},
		Spawn: SpawnConfig{
			Base:     11,
			PerLevel: 5,
			Min:      1,
			Max:      0, // quarter of the grid
			Buffer:   1,
		},
		Energy: EnergyConfig{
			Enabled:      true,
			Max:          100,
			Regen:        0.5,
			TeleportCost: 25,
		},
		Obstacles: ObstacleConfig{
			Enabled:     true,
			BlockPlayer: true,
		},
		Cannon: CannonConfig{
			Enabled: false,
			X:       0,
			Y:       0,
			Period:  8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRobotsYAML
}
