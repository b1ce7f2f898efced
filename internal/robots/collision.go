package robots

import "github.com/vovakirdan/tui-robots/internal/core"

// movePursuers steps every live pursuer one cell toward the player on each
// axis independently, so diagonal moves are as fast as straight ones.
func (e *Engine) movePursuers() {
	target := e.player.Pos
	maxX, maxY := e.grid.Width()-1, e.grid.Height()-1
	for i := range e.pursuers {
		p := &e.pursuers[i]
		if !p.Alive {
			continue
		}
		p.Pos.X = core.Clamp(p.Pos.X+core.Sign(target.X-p.Pos.X), 0, maxX)
		p.Pos.Y = core.Clamp(p.Pos.Y+core.Sign(target.Y-p.Pos.Y), 0, maxY)
	}
}

// checkGameOver runs before collision resolution so that pursuers which reach
// the player together still count, even though they also destroy each other.
func (e *Engine) checkGameOver() {
	for _, p := range e.pursuers {
		if p.Pos == e.player.Pos {
			e.state = StateGameOver
			e.emit(EventCrash)
			e.logger.Debug("player caught", "tick", e.tick, "level", e.level)
			return
		}
	}
}

// resolveCollisions destroys pursuers on debris and pursuers sharing a cell.
// All coincidences are evaluated against the same post-move positions; a
// pile-up leaves exactly one debris cell no matter how many pursuers joined it.
func (e *Engine) resolveCollisions() {
	groups := make(map[core.Point][]int, len(e.pursuers))
	order := make([]core.Point, 0, len(e.pursuers))
	for i, p := range e.pursuers {
		if !p.Alive {
			continue
		}
		if _, seen := groups[p.Pos]; !seen {
			order = append(order, p.Pos)
		}
		groups[p.Pos] = append(groups[p.Pos], i)
	}

	for _, cell := range order {
		members := groups[cell]

		if e.grid.IsObstacle(cell) || e.isCannon(cell) {
			for _, i := range members {
				e.kill(i)
				e.emit(EventHit)
			}
			continue
		}

		if len(members) < 2 {
			continue
		}
		for _, i := range members {
			e.kill(i)
		}
		if e.cfg.Obstacles.Enabled {
			e.grid.place(cell)
		}
		e.emit(EventHit)
	}
}

func (e *Engine) kill(i int) {
	if !e.pursuers[i].Alive {
		return
	}
	e.pursuers[i].Alive = false
	e.destroyed++
}

// fireCannon rotates the cannon every period ticks and shoots the first live
// pursuer along its new heading. Debris and the grid edge stop the shot.
func (e *Engine) fireCannon() {
	c := e.cannon
	if c == nil {
		return
	}
	c.ticks++
	if c.ticks%c.period != 0 {
		return
	}
	c.Facing = (c.Facing + 1) % len(cannonFacings)

	step := c.Heading()
	for p := c.Pos.Add(step); e.grid.In(p) && !e.grid.IsObstacle(p); p = p.Add(step) {
		for i := range e.pursuers {
			if e.pursuers[i].Alive && e.pursuers[i].Pos == p {
				e.kill(i)
				e.emit(EventZap)
				return
			}
		}
	}
}

func (e *Engine) checkClear() {
	if e.state == StateGameOver {
		return
	}
	for _, p := range e.pursuers {
		if p.Alive {
			return
		}
	}
	e.state = StateLevelClear
	e.emit(EventWin)
	e.logger.Debug("level cleared", "tick", e.tick, "level", e.level, "destroyed", e.destroyed)
}

// compact drops dead pursuers in place, preserving order.
func (e *Engine) compact() {
	live := e.pursuers[:0]
	for _, p := range e.pursuers {
		if p.Alive {
			live = append(live, p)
		}
	}
	e.pursuers = live
}

// LivePursuers returns the number of pursuers still in play.
func (e *Engine) LivePursuers() int {
	n := 0
	for _, p := range e.pursuers {
		if p.Alive {
			n++
		}
	}
	return n
}
