// Package replay reads and writes newline-delimited command logs.
//
// A log is a plain-text file with one command name per line, in tick order.
// Unknown or blank lines replay as None so a damaged log still loads.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robots/internal/robots"
)

// Parse reads a command log. Lines that do not name a command become CmdNone.
func Parse(r io.Reader) ([]robots.Command, error) {
	var cmds []robots.Command
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		cmds = append(cmds, robots.ParseCommand(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: read log: %w", err)
	}
	if cmds == nil {
		cmds = []robots.Command{}
	}
	return cmds, nil
}

// ParseString parses a log held in memory, such as one stored in the database.
func ParseString(s string) []robots.Command {
	cmds, _ := Parse(strings.NewReader(s)) // strings.Reader never fails
	return cmds
}

// Load reads the log at path. A missing or unreadable file disables replay:
// it returns (nil, false) and logs a warning instead of failing the run.
func Load(path string, logger *log.Logger) ([]robots.Command, bool) {
	f, err := os.Open(path)
	if err != nil {
		warn(logger, "replay disabled", "path", path, "error", err)
		return nil, false
	}
	defer f.Close()

	cmds, err := Parse(f)
	if err != nil {
		warn(logger, "replay disabled", "path", path, "error", err)
		return nil, false
	}
	return cmds, true
}

// Format renders commands in log form, one per line.
func Format(cmds []robots.Command) string {
	var b strings.Builder
	for _, c := range cmds {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func warn(logger *log.Logger, msg string, kv ...interface{}) {
	if logger != nil {
		logger.Warn(msg, kv...)
	}
}
