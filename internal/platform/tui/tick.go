package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 30

// TickMsg is sent once per frame. Frames without input feed CmdNone.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
