package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbarena/internal/config"
	"github.com/vovakirdan/orbarena/internal/match"
	"github.com/vovakirdan/orbarena/internal/storage"
)

var flagBatchCount int

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run many seeded matches and aggregate statistics",
	Long: `Run N matches headless with consecutive seeds and report the winner
distribution and timing statistics. Useful for tuning the duration window.

Examples:
  orbarena batch -n 100
  orbarena batch -n 500 --seed 1000`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&flagBatchCount, "count", "n", 50, "Number of matches to run")
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		return err
	}
	if flagBatchCount <= 0 {
		return fmt.Errorf("count must be positive, got %d", flagBatchCount)
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "batch"})
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	wins := make(map[string]int)
	var totalDuration, minDuration, maxDuration float64
	inWindow := 0

	for i := range flagBatchCount {
		seed := baseSeed + int64(i)
		m, err := match.New(cfg, seed, match.Events{})
		if err != nil {
			return err
		}
		r := m.Run()

		wins[r.Winner]++
		totalDuration += r.Duration
		if i == 0 || r.Duration < minDuration {
			minDuration = r.Duration
		}
		if r.Duration > maxDuration {
			maxDuration = r.Duration
		}
		if r.Duration >= cfg.Timing.MinDuration && r.Duration <= cfg.Timing.MaxDuration {
			inWindow++
		}

		if store != nil {
			if _, err := store.SaveResult(storage.ResultEntry{
				Title:    r.Title,
				Seed:     r.Seed,
				Winner:   r.Winner,
				Ticks:    r.Ticks,
				Duration: r.Duration,
				Agents:   len(cfg.Agents),
			}); err != nil {
				logger.Warn("could not save result", "seed", seed, "error", err)
			}
		}
	}

	fmt.Printf("Matches: %d (seeds %d..%d)\n", flagBatchCount, baseSeed, baseSeed+int64(flagBatchCount-1))
	fmt.Printf("Duration: avg %.1fs  min %.1fs  max %.1fs\n",
		totalDuration/float64(flagBatchCount), minDuration, maxDuration)
	fmt.Printf("In window [%.0fs, %.0fs]: %d/%d\n",
		cfg.Timing.MinDuration, cfg.Timing.MaxDuration, inWindow, flagBatchCount)

	names := make([]string, 0, len(wins))
	for name := range wins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return wins[names[i]] > wins[names[j]] })
	fmt.Println("Winners:")
	for _, name := range names {
		label := name
		if label == "" {
			label = "(no winner)"
		}
		fmt.Printf("  %-12s %d\n", label, wins[name])
	}
	return nil
}
