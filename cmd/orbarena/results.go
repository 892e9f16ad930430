package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbarena/internal/storage"
)

var (
	flagLimit   int
	flagWinsFor string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded match results",
	Long: `Print recent match results from the local database.

Examples:
  orbarena results                 # Last 10 matches
  orbarena results --limit 25      # Last 25 matches
  orbarena results --wins "Orb Arena"  # Win tally for a match title`,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent results to show")
	resultsCmd.Flags().StringVar(&flagWinsFor, "wins", "", "Show win counts for the given match title instead")
}

func runResults(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagWinsFor != "" {
		return printWinnerCounts(store, flagWinsFor)
	}

	entries, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No results recorded yet. Run a match first: orbarena run")
		return nil
	}

	fmt.Printf("%-5s %-20s %-12s %-8s %-10s %s\n", "ID", "TITLE", "WINNER", "TICKS", "DURATION", "PLAYED")
	for _, e := range entries {
		winner := e.Winner
		if winner == "" {
			winner = "(no winner)"
		}
		fmt.Printf("%-5d %-20s %-12s %-8d %-10s %s\n",
			e.ID, e.Title, winner, e.Ticks,
			fmt.Sprintf("%.1fs", e.Duration),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printWinnerCounts(store *storage.Store, title string) error {
	counts, err := store.WinnerCounts(title)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Printf("No results recorded for %q\n", title)
		return nil
	}

	fmt.Printf("Win counts for %q:\n", title)
	for _, c := range counts {
		winner := c.Winner
		if winner == "" {
			winner = "(no winner)"
		}
		fmt.Printf("  %-12s %d\n", winner, c.Wins)
	}
	return nil
}
