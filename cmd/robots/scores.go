package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/registry"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

var (
	flagClearScores bool
	flagStats       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best runs of a variant",
	Long: `Display the top 10 runs of the variant, ranked by robots destroyed.

Examples:
  robots scores
  robots scores classic
  robots scores --stats
  robots scores hardcore --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the variant's scores")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-variant statistics instead")
}

func runScores(cmd *cobra.Command, args []string) {
	variant := registry.DefaultVariant
	if len(args) == 1 {
		variant = args[0]
	}

	info, ok := registry.Lookup(variant)
	if !ok && !flagStats {
		exitUnknownVariant(variant)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagStats:
		printStats(store)
		return
	case flagClearScores:
		if err := store.ClearScores(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Scores of %s cleared.\n", info.Title)
		return
	}

	scores, err := store.TopScores(variant, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'robots play --variant %s' to set the first score!\n", variant)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-5s  %-16s  %s\n", "Rank", "Destroyed", "Level", "Date", "Run")
	fmt.Printf("  %-4s  %-9s  %-5s  %-16s  %s\n", "----", "---------", "-----", "----", "---")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-9d  %-5d  %-16s  %s\n", i+1, entry.Score, entry.Level, dateStr, entry.RunID)
	}

	fmt.Println()
	if highScore, err := store.HighScore(variant); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.AllVariantStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-9s  %4s  %4s  %5s  %6s  %s\n", "Variant", "Runs", "Best", "Level", "Avg", "Last played")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-9s  %4d  %4d  %5d  %6.1f  %s\n",
			s.Variant, s.RunsCount, s.HighScore, s.BestLevel, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
