package robots

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-robots/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs after a tick.
type Snapshot struct {
	Tick         uint64
	Level        int
	State        State
	Width        int
	Height       int
	Player       core.Point
	Energy       float64
	EnergyMax    float64
	EnergyOn     bool
	Pursuers     []core.Point
	Obstacles    []core.Point
	Destroyed    int
	InitialCount int
	Cannon       *CannonView
	Replaying    bool
	LastCommand  Command
}

// CannonView is the renderable part of the cannon.
type CannonView struct {
	Pos     core.Point
	Heading core.Point
}

// Over reports whether the player was caught.
func (s Snapshot) Over() bool { return s.State == StateGameOver }

// Clear reports whether every pursuer of the level is gone.
func (s Snapshot) Clear() bool { return s.State == StateLevelClear }

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	pursuers := make([]core.Point, 0, len(e.pursuers))
	for _, p := range e.pursuers {
		if p.Alive {
			pursuers = append(pursuers, p.Pos)
		}
	}

	snap := Snapshot{
		Tick:         e.tick,
		Level:        e.level,
		State:        e.state,
		Width:        e.grid.Width(),
		Height:       e.grid.Height(),
		Player:       e.player.Pos,
		Energy:       e.player.Energy,
		EnergyMax:    e.cfg.Energy.Max,
		EnergyOn:     e.cfg.Energy.Enabled,
		Pursuers:     pursuers,
		Obstacles:    e.grid.Obstacles(),
		Destroyed:    e.destroyed,
		InitialCount: e.initialCount,
		Replaying:    e.replaying,
		LastCommand:  e.lastCommand,
	}
	if e.cannon != nil {
		snap.Cannon = &CannonView{Pos: e.cannon.Pos, Heading: e.cannon.Heading()}
	}
	return snap
}

// DebugState returns a multi-line description of the snapshot.
func (s Snapshot) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Level: %d, State: %s\n", s.Tick, s.Level, s.State))
	b.WriteString(fmt.Sprintf("Player: (%d, %d), Energy: %.1f/%.1f\n", s.Player.X, s.Player.Y, s.Energy, s.EnergyMax))
	b.WriteString(fmt.Sprintf("Pursuers: %d/%d, Destroyed: %d, Debris: %d\n", len(s.Pursuers), s.InitialCount, s.Destroyed, len(s.Obstacles)))
	return b.String()
}
