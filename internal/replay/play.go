package replay

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/robots"
)

// Result is the outcome of a headless replay.
type Result struct {
	Final  robots.Snapshot
	Events map[robots.Event]int
}

// Play runs cmds against a fresh engine without a front-end and returns the
// state after the last logged command.
func Play(cfg config.RobotsConfig, seed int64, cmds []robots.Command, logger *log.Logger) (Result, error) {
	if cmds == nil {
		cmds = []robots.Command{}
	}
	e, err := robots.New(cfg, seed, robots.WithReplay(cmds), robots.WithLogger(logger))
	if err != nil {
		return Result{}, err
	}

	res := Result{Events: make(map[robots.Event]int)}
	for range cmds {
		e.Update(robots.CmdNone)
		for _, ev := range e.DrainEvents() {
			res.Events[ev]++
		}
	}
	res.Final = e.Snapshot()
	return res, nil
}
