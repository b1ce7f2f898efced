package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-robots/internal/registry"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

const maxRuns = 100 // Max runs to load per variant

// BoardKeyMap defines the key bindings for the runs board.
type BoardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Replay      key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.Replay, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Replay, k.Back, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay run"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel lists stored runs per variant, best first.
type BoardModel struct {
	variants  []registry.VariantInfo
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	table     table.Model
	help      help.Model
	keys      BoardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	selected  string // run ID chosen for replay
}

// NewBoardModel creates a new runs board.
func NewBoardModel(store *storage.Store, width, height int) BoardModel {
	h := help.New()
	h.ShowAll = false

	m := BoardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultBoardKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	for i, v := range m.variants {
		if v.ID == registry.DefaultVariant {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	if len(m.variants) > 0 {
		m.loadScores(m.variants[m.cursor].ID)
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Destroyed", Width: 10},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 14},
		{Title: "Run", Width: 10},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads the best runs of the given variant.
func (m *BoardModel) loadScores(variant string) {
	m.scores = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(variant, maxRuns); err == nil {
			m.scores = scores
		}
	}
	m.updateTableRows()
}

func (m *BoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
			shortID(s.RunID),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the board model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if i := m.table.Cursor(); i >= 0 && i < len(m.scores) {
				m.selected = m.scores[i].RunID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor + 1) % len(m.variants)
				m.loadScores(m.variants[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor - 1 + len(m.variants)) % len(m.variants)
				m.loadScores(m.variants[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting || m.goingBack || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUNS"
	if len(m.variants) > 0 {
		title = fmt.Sprintf("RUNS - %s", m.variants[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No runs recorded yet.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m BoardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting returns true if user wants to quit entirely.
func (m BoardModel) IsQuitting() bool { return m.quitting }

// SelectedRun returns the run ID picked for replay, or "".
func (m BoardModel) SelectedRun() string { return m.selected }

// RunBoard shows the runs board and returns the run ID picked for replay.
func RunBoard(store *storage.Store, width, height int) (string, error) {
	p := tea.NewProgram(
		NewBoardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(BoardModel)
	if !ok {
		return "", nil
	}
	return m.SelectedRun(), nil
}
