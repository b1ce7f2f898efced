// Package robots implements the turn-based grid chase: a player, pursuers
// that step toward the player every turn, and debris left by pursuer
// pile-ups. The engine is pure and deterministic for a given seed and
// command sequence; rendering, audio and input live in the platform layer.
package robots

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/core"
)

// ErrInvalidConfig is returned by New for rules that cannot produce a playable level.
var ErrInvalidConfig = errors.New("robots: invalid config")

// State is the coarse state of the current level.
type State string

const (
	StatePlaying    State = "playing"
	StateLevelClear State = "level_clear"
	StateGameOver   State = "game_over"
)

// Sink receives every command applied during a live run.
type Sink interface {
	Record(cmd Command) error
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithReplay makes the engine take its commands from cmds instead of live input
// while the tick index is within cmds. A nil slice leaves replay disabled.
func WithReplay(cmds []Command) Option {
	return func(e *Engine) {
		if cmds == nil {
			return
		}
		e.replay = cmds
		e.replaying = true
	}
}

// WithRecorder appends every applied command to sink when not replaying.
func WithRecorder(sink Sink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithLogger sets the logger used for level and replay diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine owns the whole simulation state. It is not safe for concurrent use.
type Engine struct {
	cfg    config.RobotsConfig
	rng    *Source
	logger *log.Logger

	grid     *Grid
	player   Player
	pursuers []Pursuer
	cannon   *Cannon

	state        State
	tick         uint64
	level        int
	destroyed    int
	initialCount int
	lastCommand  Command
	events       []Event

	replay    []Command
	replaying bool
	sink      Sink
	sinkErr   error
}

// New validates cfg, seeds the RNG and starts level 1.
func New(cfg config.RobotsConfig, seed int64, opts ...Option) (*Engine, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		rng:    NewSource(seed),
		logger: log.New(io.Discard),
		grid:   NewGrid(cfg.Grid.Width, cfg.Grid.Height),
	}
	if cfg.Cannon.Enabled {
		e.cannon = &Cannon{
			Pos:    core.Pt(cfg.Cannon.X, cfg.Cannon.Y),
			period: cfg.Cannon.Period,
		}
	}
	for _, opt := range opts {
		opt(e)
	}

	e.startLevel(1)
	return e, nil
}

// Update advances the simulation by exactly one tick.
func (e *Engine) Update(cmd Command) {
	index := e.tick
	e.tick++

	if e.replaying {
		switch {
		case index < uint64(len(e.replay)):
			cmd = e.replay[index]
		case index == uint64(len(e.replay)):
			e.logger.Info("replay exhausted, live input resumes", "tick", e.tick)
		}
	} else {
		e.record(cmd)
	}
	e.lastCommand = cmd

	switch e.state {
	case StateGameOver:
		return
	case StateLevelClear:
		if cmd == CmdNextLevel {
			e.advanceLevel()
		}
		return
	}

	e.regenerate()

	switch cmd {
	case CmdNone, CmdNextLevel:
		// No input this frame: pursuers hold still.
		return
	case CmdTeleport:
		e.teleport()
	case CmdWait:
	default:
		if d, ok := cmd.Direction(); ok {
			e.movePlayer(d)
		}
	}

	e.movePursuers()
	e.checkGameOver()
	e.resolveCollisions()
	e.fireCannon()
	e.checkClear()
	e.compact()
}

func (e *Engine) record(cmd Command) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Record(cmd); err != nil {
		e.sinkErr = err
		e.sink = nil
		e.logger.Warn("command log disabled", "tick", e.tick, "error", err)
	}
}

func (e *Engine) regenerate() {
	if !e.cfg.Energy.Enabled {
		return
	}
	e.player.Energy = core.ClampF(e.player.Energy+e.cfg.Energy.Regen, 0, e.cfg.Energy.Max)
}

// movePlayer steps the player by d, rejecting off-grid and blocked cells.
func (e *Engine) movePlayer(d core.Point) {
	dst := e.player.Pos.Add(d)
	if !e.grid.In(dst) || e.isCannon(dst) {
		e.emit(EventInvalid)
		return
	}
	if e.cfg.Obstacles.BlockPlayer && e.grid.IsObstacle(dst) {
		e.emit(EventInvalid)
		return
	}
	e.player.Pos = dst
}

// teleport relocates the player to any cell, paying energy when the economy is on.
func (e *Engine) teleport() {
	if e.cfg.Energy.Enabled {
		if e.player.Energy < e.cfg.Energy.TeleportCost {
			e.emit(EventInvalid)
			return
		}
		e.player.Energy -= e.cfg.Energy.TeleportCost
	}
	e.player.Pos = e.rng.Point(e.grid.Width(), e.grid.Height())
	e.emit(EventTeleport)
}

func (e *Engine) isCannon(p core.Point) bool {
	return e.cannon != nil && e.cannon.Pos == p
}

// Tick returns the number of ticks processed so far.
func (e *Engine) Tick() uint64 { return e.tick }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// State returns the current level state.
func (e *Engine) State() State { return e.state }

// Destroyed returns the number of pursuers destroyed across all levels.
func (e *Engine) Destroyed() int { return e.destroyed }

// Replaying reports whether commands come from a replay log.
func (e *Engine) Replaying() bool { return e.replaying }

// ReplayRemaining returns how many logged commands are still to be applied.
func (e *Engine) ReplayRemaining() int {
	if !e.replaying || e.tick >= uint64(len(e.replay)) {
		return 0
	}
	return len(e.replay) - int(e.tick)
}

// LastCommand returns the command applied on the most recent tick.
func (e *Engine) LastCommand() Command { return e.lastCommand }

// RecordErr returns the error that disabled the command log, if any.
func (e *Engine) RecordErr() error { return e.sinkErr }

// Config returns the rules the engine was built with.
func (e *Engine) Config() config.RobotsConfig { return e.cfg }
