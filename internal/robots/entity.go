package robots

import "github.com/vovakirdan/tui-robots/internal/core"

// Player is the single controllable entity.
type Player struct {
	Pos    core.Point
	Energy float64
}

// Pursuer chases the player. Dead pursuers are dropped at the end of the tick.
type Pursuer struct {
	Pos   core.Point
	Alive bool
}

// cannonFacings lists the eight headings clockwise from up.
var cannonFacings = [...]core.Point{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// Cannon is a fixed, rotating hazard that shoots pursuers.
type Cannon struct {
	Pos    core.Point
	Facing int // index into cannonFacings
	period int
	ticks  int
}

// Heading returns the unit step the cannon currently faces.
func (c *Cannon) Heading() core.Point {
	return cannonFacings[c.Facing]
}
