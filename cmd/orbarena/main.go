// orbarena runs timed, physics-driven elimination matches between mobile
// agents in a bounded arena.
//
// Usage:
//
//	orbarena run               - Run one match headless and print the result
//	orbarena batch -n 100      - Run many seeded matches and report statistics
//	orbarena watch             - Spectate a live match in the terminal
//	orbarena serve             - Spectate over SSH
//	orbarena results           - Show stored match results
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible matches (0 = time-based)
//	--config <path>  - Path to a custom match config YAML
//	--db <path>      - Result database path (default: ~/.orbarena/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbarena",
	Short: "Orb Arena - physics-driven elimination matches",
	Long: `Orb Arena simulates timed elimination contests between bouncing
agents in a bounded arena. An adaptive director paces each match with
heal, weapon, shield, and bomb pickups so it finishes inside the target
duration window.

Available commands:
  run      - Run one match headless
  batch    - Run many seeded matches and aggregate statistics
  watch    - Spectate a live match in the terminal
  serve    - Serve live matches over SSH
  results  - View stored match results

Examples:
  orbarena run --seed 42
  orbarena batch -n 200
  orbarena watch
  orbarena serve --ssh :23234
  orbarena results --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.orbarena/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}
