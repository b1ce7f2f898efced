package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/platform/tui"
	"github.com/vovakirdan/tui-robots/internal/registry"
	"github.com/vovakirdan/tui-robots/internal/replay"
	"github.com/vovakirdan/tui-robots/internal/robots"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

var (
	flagRunID         string
	flagWatch         bool
	flagReplayVariant string
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Re-run a command log",
	Long: `Re-run a command log against a fresh game and print the final state.

A log file needs the seed and variant it was recorded with. A stored run
(--run) carries both, along with the rules it was played under.

Examples:
  robots replay run.log --seed 42
  robots replay run.log --seed 42 --variant classic --watch
  robots replay --run 3f2a9c1e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagRunID, "run", "", "Replay a stored run by ID")
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Watch the replay in the TUI instead of printing a summary")
	replayCmd.Flags().StringVar(&flagReplayVariant, "variant", registry.DefaultVariant, "Variant the log was recorded with")
}

func runReplay(cmd *cobra.Command, args []string) {
	var (
		variant = flagReplayVariant
		seed    = flagSeed
		cmds    []robots.Command
		rules   config.RobotsConfig
		err     error
	)

	switch {
	case flagRunID != "":
		run := loadStoredRun(flagRunID)
		variant, seed = run.Variant, run.Seed
		cmds = replay.ParseString(run.Commands)
		rules, err = runRules(run)

	case len(args) == 1:
		if !registry.Exists(variant) {
			exitUnknownVariant(variant)
		}
		loaded, ok := replay.Load(args[0], logger)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: could not read %s\n", args[0])
			os.Exit(1)
		}
		cmds = loaded
		rules, err = loadRules(variant)

	default:
		fmt.Fprintln(os.Stderr, "Error: give a log file or --run <id>")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagWatch {
		watchReplay(variant, rules, seed, cmds)
		return
	}

	res, err := replay.Play(rules, seed, cmds, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printReplay(variant, seed, len(cmds), res)
}

// loadStoredRun fetches a run or exits.
func loadStoredRun(id string) *storage.Run {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run %q\n", id)
		os.Exit(1)
	}
	return run
}

// runRules returns the rules a stored run was played with. Runs saved before
// rules were kept fall back to the current rules file on the stored grid.
func runRules(run *storage.Run) (config.RobotsConfig, error) {
	if !registry.Exists(run.Variant) {
		return config.RobotsConfig{}, fmt.Errorf("run %s uses unknown variant %q", run.RunID, run.Variant)
	}
	if run.Rules != "" {
		return config.DecodeRules(run.Rules)
	}

	logger.Warn("run has no stored rules, using the current ones", "run", run.RunID)
	rules, err := loadRules(run.Variant)
	if err != nil {
		return rules, err
	}
	rules.Grid = config.GridConfig{Width: run.Width, Height: run.Height}
	return rules, nil
}

// watchReplay plays the log in the TUI. Live input takes over when it runs out.
func watchReplay(variant string, rules config.RobotsConfig, seed int64, cmds []robots.Command) {
	if seed == 0 {
		fmt.Fprintln(os.Stderr, "Warning: replaying with a random seed; pass the recorded --seed")
	}
	session, err := tui.NewSession(tui.SessionOptions{
		Variant: variant,
		Config:  rules,
		Seed:    seed,
		Replay:  cmds,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player := newAudio()
	defer player.Close()

	if _, err := tui.Run(session, player, runtimeConfig(), false); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}

func printReplay(variant string, seed int64, n int, res replay.Result) {
	s := res.Final
	fmt.Printf("Replay - %s, seed %d, %d commands\n", variant, seed, n)
	fmt.Println()
	fmt.Printf("  State:     %s\n", s.State)
	fmt.Printf("  Tick:      %d\n", s.Tick)
	fmt.Printf("  Level:     %d\n", s.Level)
	fmt.Printf("  Destroyed: %d\n", s.Destroyed)
	fmt.Printf("  Robots:    %d/%d\n", len(s.Pursuers), s.InitialCount)
	fmt.Printf("  Debris:    %d\n", len(s.Obstacles))
	fmt.Printf("  Player:    (%d,%d)", s.Player.X, s.Player.Y)
	if s.EnergyOn {
		fmt.Printf("  energy %.0f/%.0f", s.Energy, s.EnergyMax)
	}
	fmt.Println()

	if len(res.Events) == 0 {
		return
	}
	events := make([]string, 0, len(res.Events))
	for ev := range res.Events {
		events = append(events, string(ev))
	}
	sort.Strings(events)

	fmt.Println()
	fmt.Println("  Events:")
	for _, ev := range events {
		fmt.Printf("    %-9s %d\n", ev, res.Events[robots.Event(ev)])
	}
}
