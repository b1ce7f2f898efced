package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-robots/internal/robots"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	UpLeft    key.Binding
	UpRight   key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Teleport  key.Binding
	Wait      key.Binding
	Enter     key.Binding
	Step      key.Binding
	Mute      key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Teleport, k.Wait, k.Enter, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight},
		{k.Teleport, k.Wait, k.Enter},
		{k.Step, k.Mute, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the roguelike (hjklyubn) and arrow key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		UpLeft: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "up-left"),
		),
		UpRight: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "up-right"),
		),
		DownLeft: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "down-left"),
		),
		DownRight: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "down-right"),
		),
		Teleport: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "teleport"),
		),
		Wait: key.NewBinding(
			key.WithKeys(".", " "),
			key.WithHelp("./space", "wait"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next level/restart"),
		),
		Step: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "step mode"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command maps a key to the engine command it issues.
// Keys that are not moves or actions map to CmdNone, false.
func (k GameKeyMap) Command(msg tea.KeyMsg) (robots.Command, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return robots.CmdLeft, true
	case key.Matches(msg, k.Right):
		return robots.CmdRight, true
	case key.Matches(msg, k.Up):
		return robots.CmdUp, true
	case key.Matches(msg, k.Down):
		return robots.CmdDown, true
	case key.Matches(msg, k.UpLeft):
		return robots.CmdUpLeft, true
	case key.Matches(msg, k.UpRight):
		return robots.CmdUpRight, true
	case key.Matches(msg, k.DownLeft):
		return robots.CmdDownLeft, true
	case key.Matches(msg, k.DownRight):
		return robots.CmdDownRight, true
	case key.Matches(msg, k.Teleport):
		return robots.CmdTeleport, true
	case key.Matches(msg, k.Wait):
		return robots.CmdWait, true
	}
	return robots.CmdNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionBoard
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	case "tab":
		return MenuActionBoard
	}

	return MenuActionNone
}
