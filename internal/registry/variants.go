package registry

import "github.com/vovakirdan/tui-robots/internal/config"

func init() {
	Register(VariantInfo{
		ID:          DefaultVariant,
		Title:       "Robots",
		Description: "Pile-ups leave debris, teleports cost energy",
	}, nil)

	Register(VariantInfo{
		ID:          "classic",
		Title:       "Classic",
		Description: "No debris and unlimited teleports",
	}, func(cfg *config.RobotsConfig) {
		cfg.Obstacles.Enabled = false
		cfg.Energy.Enabled = false
	})

	Register(VariantInfo{
		ID:          "hardcore",
		Title:       "Hardcore",
		Description: "Debris blocks you, more robots, pricier teleports",
	}, func(cfg *config.RobotsConfig) {
		cfg.Obstacles.Enabled = true
		cfg.Obstacles.BlockPlayer = true
		cfg.Cannon.Enabled = false
		cfg.Spawn.Base += 5
		cfg.Spawn.PerLevel += 2
		cfg.Energy.Enabled = true
		cfg.Energy.TeleportCost *= 2
	})

	Register(VariantInfo{
		ID:          "cannon",
		Title:       "Cannon",
		Description: "A rotating cannon in the corner shoots robots",
	}, func(cfg *config.RobotsConfig) {
		cfg.Cannon.Enabled = true
		cfg.Cannon.X = 0
		cfg.Cannon.Y = 0
		if cfg.Cannon.Period < 1 {
			cfg.Cannon.Period = 8
		}
	})
}
