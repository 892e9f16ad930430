package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/orbarena/internal/config"
	"github.com/vovakirdan/orbarena/internal/platform/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Spectate a live match in the terminal",
	Long: `Run a match and render it live in the terminal.

Controls:
  Q/Esc/Ctrl+C - Quit

Examples:
  orbarena watch
  orbarena watch --seed 42
  orbarena watch --config ./my-match.yaml`,
	RunE: runWatch,
}

func runWatch(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model, err := tui.NewModel(cfg, seed, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running match view: %w", err)
	}
	return nil
}
