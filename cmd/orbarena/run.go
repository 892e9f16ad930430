package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbarena/internal/config"
	"github.com/vovakirdan/orbarena/internal/core"
	"github.com/vovakirdan/orbarena/internal/match"
	"github.com/vovakirdan/orbarena/internal/storage"
)

var flagQuiet bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one match headless",
	Long: `Run a full match without rendering and print the outcome.

Effect events are logged as they happen unless --quiet is set. The result
is stored in the results database when one is reachable.

Examples:
  orbarena run
  orbarena run --seed 42
  orbarena run --config ./my-match.yaml --quiet`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress per-event logging")
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match",
	})
	if flagQuiet {
		logger.SetLevel(log.ErrorLevel)
	}

	m, err := match.New(cfg, seed, loggingEvents(logger))
	if err != nil {
		return err
	}

	result := m.Run()
	printResult(result)
	saveResult(logger, result, len(cfg.Agents))
	return nil
}

// loggingEvents adapts the core's presentation callbacks to structured logs.
func loggingEvents(logger *log.Logger) match.Events {
	return match.Events{
		OnAgentDamaged: func(agent string, amount, hp int) {
			logger.Info("damage", "agent", agent, "amount", amount, "hp", hp)
		},
		OnAgentHealed: func(agent string, amount, hp int) {
			logger.Info("heal", "agent", agent, "amount", amount, "hp", hp)
		},
		OnShieldBroken: func(agent string) {
			logger.Info("shield broken", "agent", agent)
		},
		OnWeaponEquipped: func(agent string) {
			logger.Info("weapon equipped", "agent", agent)
		},
		OnBombExploded: func(pos core.Vec2, hit []string) {
			logger.Info("bomb", "x", pos.X, "y", pos.Y, "hit", hit)
		},
		OnWallBounce: func(agent string) {
			logger.Debug("wall bounce", "agent", agent)
		},
		OnMatchWon: func(winner string, tick int) {
			logger.Info("match won", "winner", winner, "tick", tick)
		},
	}
}

func printResult(r match.Result) {
	if r.Winner != "" {
		fmt.Printf("Winner: %s after %.1fs (%d ticks, seed %d)\n", r.Winner, r.Duration, r.Ticks, r.Seed)
	} else {
		fmt.Printf("No winner: time limit reached at %.1fs (%d ticks, seed %d)\n", r.Duration, r.Ticks, r.Seed)
	}
	for name, hp := range r.FinalHP {
		fmt.Printf("  %-12s %d HP, armed for %.1fs\n", name, hp, r.Aggression[name])
	}
}

// saveResult persists the outcome; storage trouble is logged, not fatal.
func saveResult(logger *log.Logger, r match.Result, agents int) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return
	}
	defer store.Close()

	_, err = store.SaveResult(storage.ResultEntry{
		Title:    r.Title,
		Seed:     r.Seed,
		Winner:   r.Winner,
		Ticks:    r.Ticks,
		Duration: r.Duration,
		Agents:   agents,
	})
	if err != nil {
		logger.Warn("could not save result", "error", err)
	}
}
