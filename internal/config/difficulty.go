package config

// Capacity returns the hard ceiling on pursuers for a w×h grid.
// A quarter of the cells keeps rejection sampling cheap at any level.
func Capacity(w, h int) int {
	return w * h / 4
}

// MaxCount resolves the configured maximum against the grid capacity.
func (s SpawnConfig) MaxCount(w, h int) int {
	capacity := Capacity(w, h)
	if s.Max <= 0 || s.Max > capacity {
		return capacity
	}
	return s.Max
}

// Count returns the number of pursuers spawned on the given level (1-based).
func (s SpawnConfig) Count(level, w, h int) int {
	n := s.Base + level*s.PerLevel
	maxCount := s.MaxCount(w, h)
	if n > maxCount {
		n = maxCount
	}
	if n < s.Min {
		n = s.Min
	}
	if n > maxCount {
		n = maxCount // Min never overrides capacity
	}
	return n
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RobotsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Base = 6
		cfg.Spawn.PerLevel = 3
		cfg.Energy.Regen *= 2
		cfg.Energy.TeleportCost = 20
	case DifficultyHard:
		cfg.Spawn.Base = 16
		cfg.Spawn.PerLevel = 7
		cfg.Spawn.Buffer = 1
		cfg.Energy.TeleportCost = 50
	case DifficultyFixed:
		cfg.Spawn.PerLevel = 0
	}
}
