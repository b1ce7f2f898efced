package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/platform/audio"
	"github.com/vovakirdan/tui-robots/internal/platform/tui"
	"github.com/vovakirdan/tui-robots/internal/registry"
	"github.com/vovakirdan/tui-robots/internal/replay"
	"github.com/vovakirdan/tui-robots/internal/robots"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

var (
	flagVariant    string
	flagReplayPath string
	flagRecordPath string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a variant",
	Long: `Start playing the selected variant.

Controls:
  h/j/k/l, arrows  - Move
  y/u/b/n          - Move diagonally
  t                - Teleport
  . / Space        - Wait a turn
  Enter            - Next level / new game
  F1               - Step mode (the robots move only when you do)
  m                - Mute
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Replay options:
  --replay <file>  - Drive the first game from a command log
  --record <file>  - Write every command of the first game to a log

Examples:
  robots play
  robots play --variant hardcore --difficulty hard
  robots play --seed 42 --record run.log
  robots play --seed 42 --replay run.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", registry.DefaultVariant, "Variant to play (see 'robots list')")
	playCmd.Flags().StringVar(&flagReplayPath, "replay", "", "Command log to replay")
	playCmd.Flags().StringVar(&flagRecordPath, "record", "", "File to record the command log to")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagVariant) {
		exitUnknownVariant(flagVariant)
	}

	rules, err := loadRules(flagVariant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cmds []robots.Command
	if flagReplayPath != "" {
		if loaded, ok := replay.Load(flagReplayPath, logger); ok {
			cmds = loaded
		}
	}

	var sink robots.Sink
	var recorder *replay.FileRecorder
	if flagRecordPath != "" {
		recorder, err = replay.Create(flagRecordPath)
		if err != nil {
			logger.Warn("recording disabled", "error", err)
		} else {
			sink = recorder
		}
	}

	store := openStore()

	session, err := tui.NewSession(tui.SessionOptions{
		Variant: flagVariant,
		Config:  rules,
		Seed:    flagSeed,
		Replay:  cmds,
		Record:  sink,
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		closeAll(recorder, store, nil)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("robots %s  seed %d\n", flagVariant, session.Seed())

	player := newAudio()

	_, runErr := tui.Run(session, player, runtimeConfig(), false)

	closeAll(recorder, store, player)

	if id := session.LastRunID(); id != "" {
		fmt.Printf("Run saved: %s (replay with 'robots replay --run %s')\n", id, id)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// newAudio starts the speaker unless --mute was given. A failed speaker
// leaves the player silent.
func newAudio() *audio.Player {
	player := audio.NewPlayer(logger)
	if flagMute {
		player.SetMuted(true)
		return player
	}
	//nolint:errcheck // Init logs its own failure and stays silent
	player.Init()
	return player
}

func closeAll(recorder *replay.FileRecorder, store *storage.Store, player *audio.Player) {
	if recorder != nil {
		if err := recorder.Close(); err != nil {
			logger.Warn("could not close command log", "path", recorder.Path(), "error", err)
		}
	}
	if store != nil {
		store.Close()
	}
	if player != nil {
		player.Close()
	}
}
