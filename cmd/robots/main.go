// robots is a terminal robots chase: dodge the pursuers, make them crash into
// each other, teleport when cornered.
//
// Usage:
//
//	robots list                - List available variants
//	robots play [--variant id] - Play a variant
//	robots menu                - Pick variants interactively
//	robots replay <file>       - Re-run a command log headlessly
//	robots runs                - List recently stored runs
//	robots scores [variant]    - Show best runs of a variant
//	robots board               - Browse stored runs in a table
//	robots serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.robots/runs.db)
//	--config <path>       - Custom rules YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/registry"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "robots",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "robots",
	Short: "Robots - a grid chase in your terminal",
	Long: `Robots is a turn-based chase on a grid. Every move you make, the
robots step toward you. Lure them into each other to turn them into
debris, and teleport when there is nowhere left to go.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  replay   - Re-run a command log or a stored run
  runs     - Recently stored runs
  scores   - Best runs of a variant
  board    - Browse stored runs
  serve    - Start SSH server for remote play

Examples:
  robots play
  robots play --variant classic --seed 42 --record run.log
  robots replay run.log --seed 42
  robots serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// .env values become flag defaults; real environment variables win
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", config.EnvInt64(config.EnvSeed, 0), "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.EnvString(config.EnvDBPath, "~/.robots/runs.db"), "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.EnvString(config.EnvConfigPath, ""), "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.EnvString(config.EnvLogLevel, "warn"), "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadBase loads the rules file and applies the difficulty preset.
func loadBase() (config.RobotsConfig, error) {
	cfg, err := config.LoadRobots(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg, nil
}

// loadRules returns the rules of a variant on top of the base rules.
func loadRules(variant string) (config.RobotsConfig, error) {
	base, err := loadBase()
	if err != nil {
		return base, err
	}
	return registry.Create(variant, base)
}

// openStore opens the runs database. Failure is a warning: games still work.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

func exitUnknownVariant(id string) {
	fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'robots list' to see available variants.")
	os.Exit(1)
}
