package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/robots"
)

func newTestModel(t *testing.T, cfg config.RobotsConfig) Model {
	t.Helper()
	s, err := NewSession(SessionOptions{Config: cfg, Seed: 11})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return NewModel(s, nil, core.DefaultConfig())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelTickAppliesPendingCommand(t *testing.T) {
	m := newTestModel(t, config.DefaultRobotsConfig())

	m = update(t, m, runeKey('.'))
	if m.session.Snapshot().Tick != 0 {
		t.Fatal("keys should wait for the next tick outside step mode")
	}

	m = update(t, m, TickMsg{})
	if got := m.session.Snapshot().LastCommand; got != robots.CmdWait {
		t.Errorf("last command = %v, want Wait", got)
	}

	m = update(t, m, TickMsg{})
	if got := m.session.Snapshot().LastCommand; got != robots.CmdNone {
		t.Errorf("idle tick applied %v, want None", got)
	}
	if got := m.session.Snapshot().Tick; got != 2 {
		t.Errorf("tick = %d, want 2", got)
	}
}

func TestModelStepMode(t *testing.T) {
	m := newTestModel(t, config.DefaultRobotsConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	m = update(t, m, TickMsg{})
	if got := m.session.Snapshot().Tick; got != 0 {
		t.Fatalf("ticks should not advance the engine in step mode, tick = %d", got)
	}

	m = update(t, m, runeKey('.'))
	if got := m.session.Snapshot().Tick; got != 1 {
		t.Errorf("a key in step mode should step once, tick = %d", got)
	}
}

func TestModelEnterRestartsAfterGameOver(t *testing.T) {
	m := newTestModel(t, caughtConfig())

	m = update(t, m, runeKey('.'))
	m = update(t, m, TickMsg{})
	if m.session.State() != robots.StateGameOver {
		t.Fatalf("state = %s, want game over", m.session.State())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	snap := m.session.Snapshot()
	if snap.State != robots.StatePlaying || snap.Tick != 0 {
		t.Errorf("after enter: state %s, tick %d", snap.State, snap.Tick)
	}
}

func TestModelEnterRestartsWhilePlaying(t *testing.T) {
	m := newTestModel(t, config.DefaultRobotsConfig())
	seed := m.session.Seed()

	m = update(t, m, runeKey('.'))
	m = update(t, m, TickMsg{})
	if m.session.State() != robots.StatePlaying || m.session.Snapshot().Tick != 1 {
		t.Fatalf("state %s, tick %d; want playing at tick 1", m.session.State(), m.session.Snapshot().Tick)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	snap := m.session.Snapshot()
	if snap.State != robots.StatePlaying || snap.Tick != 0 || snap.Level != 1 {
		t.Errorf("after enter: state %s, tick %d, level %d", snap.State, snap.Tick, snap.Level)
	}
	if m.session.Seed() == seed {
		t.Error("enter should restart on a fresh seed")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t, config.DefaultRobotsConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("esc should be ignored without a menu to return to")
	}

	m.canBack = true
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.View() != "" {
		t.Error("esc should return to the menu")
	}

	m = newTestModel(t, config.DefaultRobotsConfig())
	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, config.DefaultRobotsConfig())
	if m.View() == "" {
		t.Error("expected a rendered board")
	}
}

func TestMenuSelectsVariant(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if got := m.items[m.cursor].Variant; got != "robots" {
		t.Fatalf("menu starts on %q, want robots", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil || sel.Variant != "hardcore" {
		t.Errorf("selected %+v, want hardcore", sel)
	}
}

func TestSessionModelMenuToGameAndBack(t *testing.T) {
	cfg := core.DefaultConfig()
	m := NewSessionModel(nil, config.DefaultRobotsConfig(), cfg, log.New(io.Discard))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if !m.InGame() {
		t.Fatal("enter should start the selected variant")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.InGame() {
		t.Error("esc should return to the menu")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	if m.InGame() || m.quitting {
		t.Error("tab should keep the connection in the menu")
	}
}
