package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// outlineStyles maps agent outline color names to lipgloss styles.
var outlineStyles = map[string]lipgloss.Style{
	"":        lipgloss.NewStyle(),
	"red":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"magenta": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"cyan":    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"white":   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	"orange":  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"gray":    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// fillColors maps outline color names to hex fills for HP progress bars.
var fillColors = map[string]string{
	"red":     "#e05252",
	"green":   "#52e07a",
	"yellow":  "#e0d152",
	"blue":    "#527ae0",
	"magenta": "#c452e0",
	"cyan":    "#52d6e0",
	"white":   "#e8e8e8",
	"orange":  "#e09552",
	"gray":    "#9a9a9a",
}

// styleFor returns the style for an outline color name.
func styleFor(color string) lipgloss.Style {
	if s, ok := outlineStyles[color]; ok {
		return s
	}
	return outlineStyles[""]
}

// fillFor returns the progress-bar fill for an outline color name.
func fillFor(color string) string {
	if c, ok := fillColors[color]; ok {
		return c
	}
	return "#e8e8e8"
}

// RenderCanvas converts the canvas to a styled string. Adjacent cells with
// the same color are grouped to minimize ANSI escape sequences.
func RenderCanvas(c *Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Cols()*c.Rows()*2 + c.Rows())

	for row := 0; row < c.Rows(); row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		col := 0
		for col < c.Cols() {
			start := c.cellAt(col, row)

			var run strings.Builder
			for col < c.Cols() {
				cur := c.cellAt(col, row)
				if cur.color != start.color {
					break
				}
				run.WriteRune(cur.r)
				col++
			}

			if start.color == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(start.color).Render(run.String()))
			}
		}
	}
	return sb.String()
}
