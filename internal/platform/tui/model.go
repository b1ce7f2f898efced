package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/platform/audio"
	"github.com/vovakirdan/tui-robots/internal/robots"
)

// Model is the Bubble Tea model for one robots session.
type Model struct {
	session  *Session
	screen   *core.Screen
	audio    *audio.Player
	keys     GameKeyMap
	help     help.Model
	config   core.RuntimeConfig
	pending  robots.Command
	stepMode bool
	canBack  bool // esc returns to the variant menu
	quitting bool
	back     bool
}

// NewModel creates a model around an existing session. player may be nil.
func NewModel(session *Session, player *audio.Player, cfg core.RuntimeConfig) Model {
	snap := session.Snapshot()
	w, h := BoardSize(snap.Width, snap.Height)

	return Model{
		session: session,
		screen:  core.NewScreen(core.Max(w, cfg.ScreenW), h),
		audio:   player,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		config:  cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		snap := m.session.Snapshot()
		w, h := BoardSize(snap.Width, snap.Height)
		m.screen.Resize(core.Max(w, msg.Width), h)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.canBack {
			m.session.Finish()
			m.back = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Step):
		m.stepMode = !m.stepMode
		return m, nil

	case key.Matches(msg, m.keys.Mute):
		if m.audio != nil {
			m.audio.SetMuted(!m.audio.Muted())
		}
		return m, nil

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.session.State() != robots.StateLevelClear {
			//nolint:errcheck // The config was valid for the first game
			m.session.Restart()
			m.pending = robots.CmdNone
			return m, nil
		}
		m.pending = robots.CmdNextLevel

	default:
		cmd, ok := m.keys.Command(msg)
		if !ok {
			return m, nil
		}
		m.pending = cmd
	}

	if m.stepMode {
		m.step()
	}
	return m, nil
}

// handleTick feeds the pending command, or CmdNone, to the engine.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}
	if !m.stepMode {
		m.step()
	}
	if m.audio != nil {
		m.audio.Tick()
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) step() {
	events := m.session.Step(m.pending)
	m.pending = robots.CmdNone
	if m.audio != nil {
		m.audio.Enqueue(events)
	}
}

// saveScreenshot saves the current board to a text file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".robots", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Variant(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m *Model) draw() {
	m.screen.Clear()
	muted := m.audio == nil || m.audio.Muted()
	DrawBoard(m.screen, m.session.Snapshot(), HUD{
		Variant:  m.session.Variant(),
		Seed:     m.session.Seed(),
		StepMode: m.stepMode,
		Muted:    muted,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool { return m.back }

// Session returns the session driven by the model.
func (m Model) Session() *Session { return m.session }

// Run plays a session in the local terminal. With canBack set, esc ends the
// program and back reports it so the caller can return to its menu.
func Run(session *Session, player *audio.Player, cfg core.RuntimeConfig, canBack bool) (back bool, err error) {
	model := NewModel(session, player, cfg)
	model.canBack = canBack

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
