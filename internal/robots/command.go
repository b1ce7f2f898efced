package robots

import (
	"strings"

	"github.com/vovakirdan/tui-robots/internal/core"
)

// Command is the single input consumed by one tick.
type Command int

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdUpLeft
	CmdUpRight
	CmdDownLeft
	CmdDownRight
	CmdTeleport
	CmdWait
	CmdNextLevel
)

var commandNames = [...]string{
	CmdNone:      "None",
	CmdLeft:      "Left",
	CmdRight:     "Right",
	CmdUp:        "Up",
	CmdDown:      "Down",
	CmdUpLeft:    "UpLeft",
	CmdUpRight:   "UpRight",
	CmdDownLeft:  "DownLeft",
	CmdDownRight: "DownRight",
	CmdTeleport:  "Teleport",
	CmdWait:      "Wait",
	CmdNextLevel: "NextLevel",
}

// commandsByName is the textual log vocabulary. Anything else parses as CmdNone.
var commandsByName = map[string]Command{
	"None":         CmdNone,
	"Left":         CmdLeft,
	"Right":        CmdRight,
	"Up":           CmdUp,
	"Down":         CmdDown,
	"UpLeft":       CmdUpLeft,
	"UpRight":      CmdUpRight,
	"DownLeft":     CmdDownLeft,
	"DownRight":    CmdDownRight,
	"Teleport":     CmdTeleport,
	"Wait":         CmdWait,
	"NextLevel":    CmdNextLevel,
	"AdvanceLevel": CmdNextLevel,
}

// y grows downward, matching the screen.
var commandDirections = map[Command]core.Point{
	CmdLeft:      {X: -1, Y: 0},
	CmdRight:     {X: 1, Y: 0},
	CmdUp:        {X: 0, Y: -1},
	CmdDown:      {X: 0, Y: 1},
	CmdUpLeft:    {X: -1, Y: -1},
	CmdUpRight:   {X: 1, Y: -1},
	CmdDownLeft:  {X: -1, Y: 1},
	CmdDownRight: {X: 1, Y: 1},
}

// ParseCommand maps a log line to a Command. Unknown text is CmdNone.
func ParseCommand(s string) Command {
	if c, ok := commandsByName[strings.TrimSpace(s)]; ok {
		return c
	}
	return CmdNone
}

// String returns the log name of the command.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "None"
	}
	return commandNames[c]
}

// Direction returns the one-cell offset of a move command.
func (c Command) Direction() (core.Point, bool) {
	d, ok := commandDirections[c]
	return d, ok
}

// Commands returns every command in declaration order.
func Commands() []Command {
	out := make([]Command, len(commandNames))
	for i := range commandNames {
		out[i] = Command(i)
	}
	return out
}
