package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/platform/tui"
	"github.com/vovakirdan/tui-robots/internal/replay"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse stored runs",
	Long: `Browse the best runs of every variant in a table.

Controls:
  Up/Down         - Scroll
  Tab/Left/Right  - Switch variant
  Enter           - Watch the selected run
  Esc/B           - Back
  Q               - Quit`,
	Args: cobra.NoArgs,
	Run:  runBoardCmd,
}

func runBoardCmd(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	cfg := runtimeConfig()
	if err := browseRuns(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// browseRuns shows the runs board and plays back the run picked on it.
func browseRuns(store *storage.Store, width, height int) error {
	id, err := tui.RunBoard(store, width, height)
	if err != nil || id == "" {
		return err
	}

	run, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %s disappeared", id)
	}

	rules, err := runRules(run)
	if err != nil {
		return err
	}
	watchReplay(run.Variant, rules, run.Seed, replay.ParseString(run.Commands))
	return nil
}
