package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/registry"
	"github.com/vovakirdan/tui-robots/internal/replay"
	"github.com/vovakirdan/tui-robots/internal/robots"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

// SessionOptions configures one player's sequence of games.
type SessionOptions struct {
	Variant string
	Config  config.RobotsConfig
	Seed    int64            // 0 picks a time-based seed
	Replay  []robots.Command // replayed by the first game only
	Record  robots.Sink      // file log for the first game; nil disables
	Store   *storage.Store   // nil disables run persistence
	Logger  *log.Logger
}

// Session owns the engine of the current game and persists finished runs.
// A restart replaces the engine with a fresh one on a new seed.
type Session struct {
	opts   SessionOptions
	engine *robots.Engine
	memory *replay.MemoryRecorder
	seed   int64
	saved  bool
	lastID string
}

// NewSession starts the first game.
func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Variant == "" {
		opts.Variant = registry.DefaultVariant
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{opts: opts}
	if err := s.start(seed, opts.Replay, opts.Record); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) start(seed int64, cmds []robots.Command, file robots.Sink) error {
	s.memory = &replay.MemoryRecorder{}
	sinks := []robots.Sink{s.memory}
	if file != nil {
		sinks = append(sinks, file)
	}

	e, err := robots.New(s.opts.Config, seed,
		robots.WithReplay(cmds),
		robots.WithRecorder(replay.NewMultiSink(sinks...)),
		robots.WithLogger(s.opts.Logger),
	)
	if err != nil {
		return err
	}

	s.engine = e
	s.seed = seed
	s.saved = false
	s.opts.Logger.Info("game started", "variant", s.opts.Variant, "seed", seed, "replay", e.Replaying())
	return nil
}

// Step applies one command and returns the events it produced.
// The run is saved the first time the player is caught.
func (s *Session) Step(cmd robots.Command) []robots.Event {
	s.engine.Update(cmd)
	events := s.engine.DrainEvents()
	if s.engine.State() == robots.StateGameOver {
		s.save()
	}
	return events
}

// Restart saves the current run if needed and starts a live game on a new seed.
func (s *Session) Restart() error {
	s.save()
	return s.start(time.Now().UnixNano(), nil, nil)
}

// Finish saves the current run if it was not saved yet. Call it on quit.
func (s *Session) Finish() {
	s.save()
}

func (s *Session) save() {
	if s.saved {
		return
	}
	s.saved = true

	e := s.engine
	if s.opts.Store == nil || e.Replaying() || e.Tick() == 0 {
		return
	}

	outcome := string(e.State())
	if e.State() == robots.StatePlaying {
		outcome = "quit"
	}
	cfg := e.Config()
	rules, err := config.EncodeRules(cfg)
	if err != nil {
		s.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	id, err := s.opts.Store.SaveRun(storage.Run{
		Variant:   s.opts.Variant,
		Seed:      s.seed,
		Width:     cfg.Grid.Width,
		Height:    cfg.Grid.Height,
		Level:     e.Level(),
		Destroyed: e.Destroyed(),
		Ticks:     e.Tick(),
		Outcome:   outcome,
		Commands:  s.memory.String(),
		Rules:     rules,
	})
	if err != nil {
		s.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	s.lastID = id
	s.opts.Logger.Info("run saved", "run", id, "destroyed", e.Destroyed(), "level", e.Level())
}

// Snapshot returns the current game's state.
func (s *Session) Snapshot() robots.Snapshot { return s.engine.Snapshot() }

// State returns the current level state.
func (s *Session) State() robots.State { return s.engine.State() }

// Seed returns the seed of the current game.
func (s *Session) Seed() int64 { return s.seed }

// Variant returns the variant being played.
func (s *Session) Variant() string { return s.opts.Variant }

// LastRunID returns the ID of the most recently saved run.
func (s *Session) LastRunID() string { return s.lastID }

// Commands returns the commands applied in the current game.
func (s *Session) Commands() []robots.Command { return s.memory.Commands() }
