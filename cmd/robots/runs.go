package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recently stored runs",
	Long: `Display the most recent runs saved in the database, newest first.
Any run can be replayed with 'robots replay --run <id>'.

Examples:
  robots runs
  robots runs --limit 5`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'robots play' to record the first one!")
		return
	}

	fmt.Printf("  %-36s  %-9s  %-11s  %5s  %9s  %6s  %-20s  %s\n",
		"Run", "Variant", "Outcome", "Level", "Destroyed", "Ticks", "Seed", "Date")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-9s  %-11s  %5d  %9d  %6d  %-20d  %s\n",
			r.RunID, r.Variant, r.Outcome, r.Level, r.Destroyed, r.Ticks, r.Seed,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
