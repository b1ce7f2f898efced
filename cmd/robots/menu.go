package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start robots with a variant picker menu",
	Long: `Start robots in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, Tab to
browse stored runs. Esc during a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Runs board
  Q            - Quit

Examples:
  robots menu
  robots menu --fps 20
  robots menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	player := newAudio()
	defer player.Close()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			if store == nil {
				continue
			}
			if err := browseRuns(store, cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		if menuResult.Variant == "" {
			return
		}

		rules, err := loadRules(menuResult.Variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		session, err := tui.NewSession(tui.SessionOptions{
			Variant: menuResult.Variant,
			Config:  rules,
			Seed:    flagSeed,
			Store:   store,
			Logger:  logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		back, err := tui.Run(session, player, cfg, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
		// Loop back to menu
	}
}
