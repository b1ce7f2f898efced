package robots

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/core"
)

// testConfig returns a small 10×10 ruleset with no energy regeneration,
// so energy assertions are exact.
func testConfig() config.RobotsConfig {
	cfg := config.DefaultRobotsConfig()
	cfg.Grid = config.GridConfig{Width: 10, Height: 10}
	cfg.Spawn = config.SpawnConfig{Base: 3, PerLevel: 1, Min: 1, Buffer: 1}
	cfg.Energy.Regen = 0
	return cfg
}

// newTestEngine builds an engine and replaces the spawned pursuers with ps.
func newTestEngine(t *testing.T, cfg config.RobotsConfig, ps ...core.Point) *Engine {
	t.Helper()
	e, err := New(cfg, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.pursuers = e.pursuers[:0]
	for _, p := range ps {
		e.pursuers = append(e.pursuers, Pursuer{Pos: p, Alive: true})
	}
	e.initialCount = len(ps)
	return e
}

func countEvent(events []Event, want Event) int {
	n := 0
	for _, ev := range events {
		if ev == want {
			n++
		}
	}
	return n
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultRobotsConfig()

	e1, err := New(cfg, 12345)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e2, err := New(cfg, 12345)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cmds := []Command{CmdLeft, CmdWait, CmdTeleport, CmdUpRight, CmdNone, CmdDown, CmdWait, CmdNextLevel}
	for i := 0; i < 200; i++ {
		cmd := cmds[i%len(cmds)]
		e1.Update(cmd)
		e2.Update(cmd)

		s1, s2 := e1.Snapshot(), e2.Snapshot()
		if !reflect.DeepEqual(s1, s2) {
			t.Fatalf("tick %d: snapshots differ\n%s\nvs\n%s", i, s1.DebugState(), s2.DebugState())
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	cfg := config.DefaultRobotsConfig()
	e1, _ := New(cfg, 1)
	e2, _ := New(cfg, 2)

	if reflect.DeepEqual(e1.Snapshot().Pursuers, e2.Snapshot().Pursuers) {
		t.Error("Expected different spawn layouts for different seeds")
	}
}

func TestPursuerReachesPlayer(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(5, 7))

	if e.player.Pos != core.Pt(5, 5) {
		t.Fatalf("Expected player at grid center (5,5), got %v", e.player.Pos)
	}

	e.Update(CmdWait)
	if got := e.pursuers[0].Pos; got != core.Pt(5, 6) {
		t.Fatalf("After first Wait pursuer should be at (5,6), got %v", got)
	}
	if e.State() != StatePlaying {
		t.Fatalf("Expected Playing after first tick, got %s", e.State())
	}
	e.DrainEvents()

	e.Update(CmdWait)
	if got := e.pursuers[0].Pos; got != core.Pt(5, 5) {
		t.Fatalf("After second Wait pursuer should be at (5,5), got %v", got)
	}
	if e.State() != StateGameOver {
		t.Fatalf("Expected GameOver, got %s", e.State())
	}
	if got := countEvent(e.DrainEvents(), EventCrash); got != 1 {
		t.Errorf("Expected one crash event, got %d", got)
	}
}

func TestMoveIntoObstacleRejected(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(0, 0))
	e.grid.place(core.Pt(6, 5))

	e.Update(CmdRight)

	if e.player.Pos != core.Pt(5, 5) {
		t.Errorf("Player should not move onto debris, got %v", e.player.Pos)
	}
	if got := countEvent(e.DrainEvents(), EventInvalid); got != 1 {
		t.Errorf("Expected exactly one invalid event, got %d", got)
	}
}

func TestMoveOntoObstacleWhenNotBlocking(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.BlockPlayer = false
	e := newTestEngine(t, cfg, core.Pt(0, 0))
	e.grid.place(core.Pt(6, 5))

	e.Update(CmdRight)

	if e.player.Pos != core.Pt(6, 5) {
		t.Errorf("Player should walk onto debris, got %v", e.player.Pos)
	}
	if got := countEvent(e.DrainEvents(), EventInvalid); got != 0 {
		t.Errorf("Expected no invalid event, got %d", got)
	}
}

func TestMoveOutOfBoundsRejected(t *testing.T) {
	tests := []struct {
		name  string
		start core.Point
		cmd   Command
	}{
		{"left edge", core.Pt(0, 5), CmdLeft},
		{"right edge", core.Pt(9, 5), CmdRight},
		{"top edge", core.Pt(5, 0), CmdUp},
		{"bottom edge", core.Pt(5, 9), CmdDown},
		{"corner diagonal", core.Pt(0, 0), CmdUpLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, testConfig(), core.Pt(9, 9))
			e.player.Pos = tt.start

			e.Update(tt.cmd)

			if e.player.Pos != tt.start {
				t.Errorf("Player moved off-grid to %v", e.player.Pos)
			}
			if got := countEvent(e.DrainEvents(), EventInvalid); got != 1 {
				t.Errorf("Expected one invalid event, got %d", got)
			}
		})
	}
}

func TestTeleportWithoutEnergy(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(0, 0))
	e.player.Energy = 0

	e.Update(CmdTeleport)

	if e.player.Pos != core.Pt(5, 5) {
		t.Errorf("Player should stay at (5,5), got %v", e.player.Pos)
	}
	if e.player.Energy != 0 {
		t.Errorf("Energy should stay 0, got %v", e.player.Energy)
	}
	events := e.DrainEvents()
	if got := countEvent(events, EventInvalid); got != 1 {
		t.Errorf("Expected one invalid event, got %d", got)
	}
	if got := countEvent(events, EventTeleport); got != 0 {
		t.Errorf("Expected no teleport event, got %d", got)
	}
}

func TestTeleportSpendsEnergy(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(0, 0))

	e.Update(CmdTeleport)

	if e.player.Energy != 75 {
		t.Errorf("Expected energy 75 after teleport, got %v", e.player.Energy)
	}
	if got := countEvent(e.DrainEvents(), EventTeleport); got != 1 {
		t.Errorf("Expected one teleport event, got %d", got)
	}
	if !e.grid.In(e.player.Pos) {
		t.Errorf("Teleport left the grid: %v", e.player.Pos)
	}
}

func TestTeleportFreeWithoutEnergyEconomy(t *testing.T) {
	cfg := testConfig()
	cfg.Energy.Enabled = false
	e := newTestEngine(t, cfg, core.Pt(0, 0))

	for i := 0; i < 5 && e.State() == StatePlaying; i++ {
		e.Update(CmdTeleport)
		if got := countEvent(e.DrainEvents(), EventInvalid); got != 0 {
			t.Fatalf("Teleport %d rejected without energy economy", i)
		}
	}
}

func TestEnergyRegenerationSaturates(t *testing.T) {
	cfg := testConfig()
	cfg.Energy.Regen = 10
	e := newTestEngine(t, cfg, core.Pt(0, 0))
	e.player.Energy = 95

	e.Update(CmdNone)
	if e.player.Energy != 100 {
		t.Errorf("Expected energy capped at 100, got %v", e.player.Energy)
	}
}

func TestNoneHoldsPursuers(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(0, 0))

	e.Update(CmdNone)

	if e.pursuers[0].Pos != core.Pt(0, 0) {
		t.Errorf("Pursuer moved on an empty frame: %v", e.pursuers[0].Pos)
	}
	if e.Tick() != 1 {
		t.Errorf("Expected tick 1, got %d", e.Tick())
	}
}

func TestPileUpLeavesOneObstacle(t *testing.T) {
	tests := []struct {
		name     string
		pursuers []core.Point
	}{
		{"two pursuers", []core.Point{core.Pt(3, 5), core.Pt(3, 4)}},
		{"three pursuers", []core.Point{core.Pt(3, 5), core.Pt(3, 4), core.Pt(3, 6)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, testConfig(), tt.pursuers...)

			e.Update(CmdWait)

			if got := e.grid.ObstacleCount(); got != 1 {
				t.Fatalf("Expected exactly one obstacle, got %d", got)
			}
			if !e.grid.IsObstacle(core.Pt(4, 5)) {
				t.Errorf("Expected obstacle at (4,5), got %v", e.grid.Obstacles())
			}
			if got := e.LivePursuers(); got != 0 {
				t.Errorf("Expected all pursuers destroyed, %d alive", got)
			}
			if got := e.Destroyed(); got != len(tt.pursuers) {
				t.Errorf("Expected %d destroyed, got %d", len(tt.pursuers), got)
			}
			events := e.DrainEvents()
			if got := countEvent(events, EventHit); got != 1 {
				t.Errorf("Expected one hit per colliding cell, got %d", got)
			}
			if e.State() != StateLevelClear || countEvent(events, EventWin) != 1 {
				t.Errorf("Expected LevelClear with a win event, state %s events %v", e.State(), events)
			}
		})
	}
}

func TestPileUpWithoutDebris(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.Enabled = false
	e := newTestEngine(t, cfg, core.Pt(3, 5), core.Pt(3, 4))

	e.Update(CmdWait)

	if e.grid.ObstacleCount() != 0 {
		t.Errorf("Expected no debris when obstacles are disabled")
	}
	if e.LivePursuers() != 0 {
		t.Errorf("Colliding pursuers should still be destroyed")
	}
}

func TestPursuerIntoObstacle(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(3, 5), core.Pt(0, 0))
	e.grid.place(core.Pt(4, 5))

	e.Update(CmdWait)

	if got := e.LivePursuers(); got != 1 {
		t.Fatalf("Expected one survivor, got %d", got)
	}
	if got := e.grid.ObstacleCount(); got != 1 {
		t.Errorf("Debris count should not change, got %d", got)
	}
	if got := countEvent(e.DrainEvents(), EventHit); got != 1 {
		t.Errorf("Expected one hit event, got %d", got)
	}
	if len(e.pursuers) != 1 || e.pursuers[0].Pos != core.Pt(1, 1) {
		t.Errorf("Dead pursuer should be compacted away, got %v", e.pursuers)
	}
}

func TestSimultaneousContactStillLoses(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(4, 4), core.Pt(6, 6))

	e.Update(CmdWait)

	if e.State() != StateGameOver {
		t.Fatalf("Expected GameOver when two pursuers reach the player together, got %s", e.State())
	}
	events := e.DrainEvents()
	if countEvent(events, EventCrash) != 1 {
		t.Errorf("Expected one crash event, got %v", events)
	}
	if countEvent(events, EventWin) != 0 {
		t.Errorf("A lost level must not also clear, got %v", events)
	}
}

func TestIdempotentWhenOver(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(5, 6), core.Pt(0, 0))
	e.Update(CmdWait)
	if e.State() != StateGameOver {
		t.Fatalf("Setup: expected GameOver, got %s", e.State())
	}
	e.DrainEvents()

	before := e.Snapshot()
	for _, cmd := range []Command{CmdNone, CmdRight, CmdTeleport, CmdNextLevel} {
		e.Update(cmd)
	}
	after := e.Snapshot()

	if !sameWorld(before, after) {
		t.Errorf("GameOver state mutated:\n%s\nvs\n%s", before.DebugState(), after.DebugState())
	}
	if ev := e.DrainEvents(); len(ev) != 0 {
		t.Errorf("Expected no events after GameOver, got %v", ev)
	}
}

func TestIdempotentWhenClear(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(3, 5), core.Pt(3, 4))
	e.Update(CmdWait)
	if e.State() != StateLevelClear {
		t.Fatalf("Setup: expected LevelClear, got %s", e.State())
	}

	before := e.Snapshot()
	for _, cmd := range []Command{CmdNone, CmdWait, CmdLeft, CmdTeleport} {
		e.Update(cmd)
	}
	if after := e.Snapshot(); !sameWorld(before, after) {
		t.Errorf("LevelClear state mutated without NextLevel")
	}
}

func sameWorld(a, b Snapshot) bool {
	return a.Level == b.Level &&
		a.State == b.State &&
		a.Player == b.Player &&
		a.Energy == b.Energy &&
		a.Destroyed == b.Destroyed &&
		reflect.DeepEqual(a.Pursuers, b.Pursuers) &&
		reflect.DeepEqual(a.Obstacles, b.Obstacles)
}

func TestAdvanceLevel(t *testing.T) {
	cfg := testConfig()
	e := newTestEngine(t, cfg, core.Pt(3, 5), core.Pt(3, 4))
	e.Update(CmdWait)
	e.DrainEvents()

	e.Update(CmdNextLevel)

	if e.Level() != 2 {
		t.Fatalf("Expected level 2, got %d", e.Level())
	}
	if e.State() != StatePlaying {
		t.Errorf("Expected Playing, got %s", e.State())
	}
	if e.grid.ObstacleCount() != 0 {
		t.Errorf("Debris should be cleared on a new level")
	}
	if e.player.Pos != core.Pt(5, 5) {
		t.Errorf("Player should restart at center, got %v", e.player.Pos)
	}
	if e.player.Energy != cfg.Energy.Max {
		t.Errorf("Energy should refill, got %v", e.player.Energy)
	}
	want := cfg.Spawn.Count(2, 10, 10)
	if got := e.LivePursuers(); got != want {
		t.Errorf("Expected %d pursuers on level 2, got %d", want, got)
	}
	if got := countEvent(e.DrainEvents(), EventLevel); got != 1 {
		t.Errorf("Expected one level event, got %d", got)
	}
}

func TestNextLevelIgnoredWhilePlaying(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(0, 0))

	e.Update(CmdNextLevel)

	if e.Level() != 1 {
		t.Errorf("NextLevel should not advance while playing, level %d", e.Level())
	}
	if e.pursuers[0].Pos != core.Pt(0, 0) {
		t.Errorf("NextLevel should leave pursuers still while playing, pursuer at %v", e.pursuers[0].Pos)
	}
	if e.State() != StatePlaying {
		t.Errorf("state = %s, want playing", e.State())
	}
}

func TestSpawnRespectsBuffer(t *testing.T) {
	cfg := config.DefaultRobotsConfig()
	for seed := int64(0); seed < 20; seed++ {
		e, err := New(cfg, seed)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got, want := len(e.pursuers), cfg.Spawn.Count(1, 36, 36); got != want {
			t.Fatalf("seed %d: expected %d pursuers, got %d", seed, want, got)
		}
		seen := make(map[core.Point]bool)
		for _, p := range e.pursuers {
			if p.Pos.Chebyshev(e.player.Pos) <= cfg.Spawn.Buffer {
				t.Errorf("seed %d: pursuer %v spawned inside the buffer", seed, p.Pos)
			}
			if seen[p.Pos] {
				t.Errorf("seed %d: two pursuers spawned at %v", seed, p.Pos)
			}
			seen[p.Pos] = true
		}
	}
}

func TestSpawnAtCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn = config.SpawnConfig{Base: 1000, Buffer: 1}

	e, err := New(cfg, 7)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := len(e.pursuers); got != config.Capacity(10, 10) {
		t.Errorf("Expected spawn capped at %d, got %d", config.Capacity(10, 10), got)
	}
}

func TestPositionsStayInBounds(t *testing.T) {
	cfg := config.DefaultRobotsConfig()
	cfg.Grid = config.GridConfig{Width: 20, Height: 12}
	cmds := Commands()

	for seed := int64(1); seed <= 5; seed++ {
		e, err := New(cfg, seed)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		rng := NewSource(seed * 31)
		for i := 0; i < 400; i++ {
			switch e.State() {
			case StateGameOver:
				e, _ = New(cfg, seed+int64(i))
			case StateLevelClear:
				e.Update(CmdNextLevel)
			default:
				e.Update(cmds[rng.Intn(0, len(cmds))])
			}

			s := e.Snapshot()
			if !s.Player.In(s.Width, s.Height) {
				t.Fatalf("seed %d tick %d: player out of bounds at %v", seed, i, s.Player)
			}
			for _, p := range s.Pursuers {
				if !p.In(s.Width, s.Height) {
					t.Fatalf("seed %d tick %d: pursuer out of bounds at %v", seed, i, p)
				}
			}
		}
	}
}

type sliceSink struct {
	cmds []Command
	err  error
}

func (s *sliceSink) Record(cmd Command) error {
	if s.err != nil {
		return s.err
	}
	s.cmds = append(s.cmds, cmd)
	return nil
}

func TestRecordReplayRoundTrip(t *testing.T) {
	cfg := config.DefaultRobotsConfig()
	cfg.Grid = config.GridConfig{Width: 16, Height: 16}
	const seed = 99

	sink := &sliceSink{}
	live, err := New(cfg, seed, WithRecorder(sink))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pattern := []Command{CmdUp, CmdWait, CmdLeft, CmdNone, CmdDownRight, CmdTeleport, CmdWait}
	for i := 0; i < 300 && live.State() == StatePlaying; i++ {
		live.Update(pattern[i%len(pattern)])
	}
	if len(sink.cmds) != int(live.Tick()) {
		t.Fatalf("Recorded %d commands over %d ticks", len(sink.cmds), live.Tick())
	}

	replaySink := &sliceSink{}
	replayed, err := New(cfg, seed, WithReplay(sink.cmds), WithRecorder(replaySink))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for range sink.cmds {
		replayed.Update(CmdRight) // live input must be ignored
	}

	a, b := live.Snapshot(), replayed.Snapshot()
	a.Replaying, a.LastCommand = false, 0
	b.Replaying, b.LastCommand = false, 0
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Replay diverged:\n%s\nvs\n%s", a.DebugState(), b.DebugState())
	}
	if len(replaySink.cmds) != 0 {
		t.Errorf("Replay must not record, got %d commands", len(replaySink.cmds))
	}
	if replayed.ReplayRemaining() != 0 {
		t.Errorf("Expected replay exhausted, %d remaining", replayed.ReplayRemaining())
	}
}

func TestReplayHandsOverToLiveInput(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(0, 0))
	e.replay = []Command{CmdWait}
	e.replaying = true

	e.Update(CmdNone)
	if e.LastCommand() != CmdWait {
		t.Fatalf("Expected logged Wait, got %s", e.LastCommand())
	}
	e.Update(CmdLeft)
	if e.LastCommand() != CmdLeft {
		t.Errorf("Expected live Left after the log ends, got %s", e.LastCommand())
	}
}

func TestRecorderErrorDisablesLogging(t *testing.T) {
	sink := &sliceSink{err: errors.New("disk full")}
	e, err := New(testConfig(), 3, WithRecorder(sink))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	e.Update(CmdWait)
	if e.RecordErr() == nil {
		t.Fatal("Expected RecordErr after a failing sink")
	}
	sink.err = nil
	e.Update(CmdWait)
	if len(sink.cmds) != 0 {
		t.Errorf("Sink should be detached after an error, got %d commands", len(sink.cmds))
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.RobotsConfig)
	}{
		{"tiny grid", func(c *config.RobotsConfig) { c.Grid = config.GridConfig{Width: 2, Height: 2} }},
		{"negative spawn", func(c *config.RobotsConfig) { c.Spawn.Base = -1 }},
		{"zero energy max", func(c *config.RobotsConfig) { c.Energy.Max = 0 }},
		{"negative cost", func(c *config.RobotsConfig) { c.Energy.TeleportCost = -5 }},
		{"no room for pursuers", func(c *config.RobotsConfig) {
			c.Grid = config.GridConfig{Width: 3, Height: 3}
			c.Spawn.Buffer = 1
		}},
		{"cannon off grid", func(c *config.RobotsConfig) {
			c.Cannon = config.CannonConfig{Enabled: true, X: 10, Y: 0, Period: 4}
		}},
		{"cannon on start", func(c *config.RobotsConfig) {
			c.Cannon = config.CannonConfig{Enabled: true, X: 5, Y: 5, Period: 4}
		}},
		{"cannon zero period", func(c *config.RobotsConfig) {
			c.Cannon = config.CannonConfig{Enabled: true, X: 0, Y: 0, Period: 0}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg, 1); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDrainEvents(t *testing.T) {
	e := newTestEngine(t, testConfig(), core.Pt(0, 0))
	e.player.Pos = core.Pt(0, 5)
	e.Update(CmdLeft)

	if got := e.PendingEvents(); len(got) != 1 {
		t.Fatalf("Expected one pending event, got %v", got)
	}
	if got := e.DrainEvents(); len(got) != 1 || got[0] != EventInvalid {
		t.Errorf("Expected [invalid], got %v", got)
	}
	if got := e.DrainEvents(); got != nil {
		t.Errorf("Second drain should be empty, got %v", got)
	}
}
