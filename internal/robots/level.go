package robots

import (
	"fmt"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/core"
)

// minGridSide is the smallest playable grid edge.
const minGridSide = 3

// validate rejects rules under which a level could not be built.
func validate(cfg config.RobotsConfig) error {
	w, h := cfg.Grid.Width, cfg.Grid.Height
	if w < minGridSide || h < minGridSide {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, w, h, minGridSide, minGridSide)
	}

	s := cfg.Spawn
	if s.Base < 0 || s.PerLevel < 0 || s.Min < 0 || s.Max < 0 || s.Buffer < 0 {
		return fmt.Errorf("%w: spawn values must not be negative", ErrInvalidConfig)
	}

	if cfg.Energy.Enabled {
		if cfg.Energy.Max <= 0 {
			return fmt.Errorf("%w: energy max must be positive", ErrInvalidConfig)
		}
		if cfg.Energy.Regen < 0 || cfg.Energy.TeleportCost < 0 {
			return fmt.Errorf("%w: energy regen and teleport cost must not be negative", ErrInvalidConfig)
		}
	}

	start := startPosition(w, h)
	reserved := 0
	if cfg.Cannon.Enabled {
		c := core.Pt(cfg.Cannon.X, cfg.Cannon.Y)
		if !c.In(w, h) {
			return fmt.Errorf("%w: cannon (%d,%d) is outside the grid", ErrInvalidConfig, c.X, c.Y)
		}
		if c == start {
			return fmt.Errorf("%w: cannon cannot sit on the player start", ErrInvalidConfig)
		}
		if cfg.Cannon.Period < 1 {
			return fmt.Errorf("%w: cannon period must be at least 1", ErrInvalidConfig)
		}
		if c.Chebyshev(start) > s.Buffer {
			reserved = 1
		}
	}

	free := w*h - bufferArea(start, s.Buffer, w, h) - reserved
	if maxCount := s.MaxCount(w, h); maxCount > free {
		return fmt.Errorf("%w: up to %d pursuers requested but only %d cells can hold them", ErrInvalidConfig, maxCount, free)
	}
	return nil
}

// bufferArea counts the grid cells within radius of center.
func bufferArea(center core.Point, radius, w, h int) int {
	n := 0
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if core.Pt(x, y).In(w, h) {
				n++
			}
		}
	}
	return n
}

func startPosition(w, h int) core.Point {
	return core.Pt(w/2, h/2)
}

// startLevel clears debris, centers the player and spawns the level's pursuers.
func (e *Engine) startLevel(level int) {
	e.level = level
	e.state = StatePlaying
	e.grid.reset()

	w, h := e.grid.Width(), e.grid.Height()
	e.player.Pos = startPosition(w, h)
	if e.cfg.Energy.Enabled {
		e.player.Energy = e.cfg.Energy.Max
	}
	if e.cannon != nil {
		e.cannon.Facing = 0
		e.cannon.ticks = 0
	}

	e.initialCount = e.cfg.Spawn.Count(level, w, h)
	e.spawnPursuers(e.initialCount)

	e.logger.Debug("level started", "level", level, "pursuers", len(e.pursuers))
}

// spawnPursuers places n pursuers by rejection sampling. validate guarantees
// enough free cells, so the loop terminates.
func (e *Engine) spawnPursuers(n int) {
	w, h := e.grid.Width(), e.grid.Height()
	e.pursuers = make([]Pursuer, 0, n)
	taken := make(map[core.Point]bool, n)

	for len(e.pursuers) < n {
		p := e.rng.Point(w, h)
		if p.Chebyshev(e.player.Pos) <= e.cfg.Spawn.Buffer {
			continue
		}
		if taken[p] || e.isCannon(p) {
			continue
		}
		taken[p] = true
		e.pursuers = append(e.pursuers, Pursuer{Pos: p, Alive: true})
	}
}

func (e *Engine) advanceLevel() {
	e.startLevel(e.level + 1)
	e.emit(EventLevel)
}
